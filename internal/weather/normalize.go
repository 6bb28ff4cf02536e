package weather

// NormalizeRows aligns the parallel hourly arrays into per-hour rows.
//
// The row count is the minimum of the nonzero array lengths: an empty
// secondary array is ignored (its field is nil on every row) while a short
// but nonzero one clamps the whole row set. Each secondary field is still
// bounds-checked against its own array, so unequal nonzero lengths produce
// nil tails instead of truncating below the row's own index.
func NormalizeRows(h *HourlyData) []HourlyRow {
	rows := make([]HourlyRow, 0)
	if h == nil || len(h.Time) == 0 {
		return rows
	}

	count := len(h.Time)
	for _, n := range []int{len(h.Temperature2m), len(h.WeatherCode), len(h.Rain), len(h.WindDirection10m)} {
		if n > 0 && n < count {
			count = n
		}
	}

	for i := 0; i < count; i++ {
		row := HourlyRow{Time: h.Time[i]}
		if i < len(h.Temperature2m) {
			row.Temperature2m = h.Temperature2m[i]
		}
		if i < len(h.WeatherCode) {
			row.WeatherCode = h.WeatherCode[i]
		}
		if i < len(h.Rain) {
			row.Rain = h.Rain[i]
		}
		if i < len(h.WindDirection10m) {
			row.WindDirection10m = h.WindDirection10m[i]
		}
		rows = append(rows, row)
	}

	return rows
}
