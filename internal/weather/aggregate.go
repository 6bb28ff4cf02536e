package weather

import "strings"

// dayKey extracts the calendar-day grouping key from a row timestamp:
// the prefix before "T", the whole string when it has no "T" past index
// zero, or "Unknown" for blank input.
func dayKey(t string) string {
	if strings.TrimSpace(t) == "" {
		return "Unknown"
	}
	if idx := strings.Index(t, "T"); idx > 0 {
		return t[:idx]
	}
	return t
}

// AggregateDays groups normalized rows by calendar day and computes per-day
// temperature min/max and average rainfall. Groups appear in order of first
// occurrence. Min/max/average only consider rows where the value is present;
// a group with no present values gets nil for that statistic, never zero.
func AggregateDays(rows []HourlyRow) []DayStats {
	days := make([]DayStats, 0)
	index := make(map[string]int)
	rainSum := make([]float64, 0)
	rainN := make([]int, 0)

	for _, row := range rows {
		key := dayKey(row.Time)
		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			days = append(days, DayStats{DateText: key})
			rainSum = append(rainSum, 0)
			rainN = append(rainN, 0)
		}
		d := &days[i]
		d.Count++

		if row.Temperature2m != nil {
			t := *row.Temperature2m
			if d.TempMin == nil || t < *d.TempMin {
				d.TempMin = ptr(t)
			}
			if d.TempMax == nil || t > *d.TempMax {
				d.TempMax = ptr(t)
			}
		}
		if row.Rain != nil {
			rainSum[i] += *row.Rain
			rainN[i]++
		}
	}

	// Absent rain rows do not dilute the mean: divide by the count of
	// present values, not the group size.
	for i := range days {
		if rainN[i] > 0 {
			days[i].RainAvg = ptr(rainSum[i] / float64(rainN[i]))
		}
	}

	return days
}

func ptr[T any](v T) *T {
	return &v
}
