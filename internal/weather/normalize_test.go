package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtrs(vs ...float64) []*float64 {
	out := make([]*float64, len(vs))
	for i := range vs {
		out[i] = &vs[i]
	}
	return out
}

func intPtrs(vs ...int) []*int {
	out := make([]*int, len(vs))
	for i := range vs {
		out[i] = &vs[i]
	}
	return out
}

func TestNormalizeRows_EqualLengths(t *testing.T) {
	h := &HourlyData{
		Time:             []string{"2024-06-01T00:00", "2024-06-01T01:00", "2024-06-01T02:00"},
		Temperature2m:    floatPtrs(10, 11, 12),
		WeatherCode:      intPtrs(0, 1, 2),
		Rain:             floatPtrs(0, 0.2, 0.4),
		WindDirection10m: floatPtrs(90, 180, 270),
	}

	rows := NormalizeRows(h)

	assert.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, h.Time[i], row.Time)
		assert.NotNil(t, row.Temperature2m)
		assert.NotNil(t, row.WeatherCode)
		assert.NotNil(t, row.Rain)
		assert.NotNil(t, row.WindDirection10m)
	}
	assert.Equal(t, 11.0, *rows[1].Temperature2m)
	assert.Equal(t, 2, *rows[2].WeatherCode)
}

func TestNormalizeRows_EmptySecondaryArrayIsIgnored(t *testing.T) {
	// A zero-length array must not shrink the row count; its field is just
	// nil on every row.
	h := &HourlyData{
		Time:             []string{"2024-06-01T00:00", "2024-06-01T01:00", "2024-06-01T02:00"},
		Temperature2m:    floatPtrs(10, 11, 12),
		WeatherCode:      intPtrs(0, 1, 2),
		Rain:             []*float64{},
		WindDirection10m: floatPtrs(90, 180, 270),
	}

	rows := NormalizeRows(h)

	assert.Len(t, rows, 3)
	for _, row := range rows {
		assert.Nil(t, row.Rain)
		assert.NotNil(t, row.Temperature2m)
	}
}

func TestNormalizeRows_ShortNonzeroArrayClamps(t *testing.T) {
	h := &HourlyData{
		Time:             []string{"2024-06-01T00:00", "2024-06-01T01:00", "2024-06-01T02:00", "2024-06-01T03:00"},
		Temperature2m:    floatPtrs(10, 11),
		WeatherCode:      intPtrs(0, 1, 2, 3),
		Rain:             floatPtrs(0, 0.2, 0.4, 0.6),
		WindDirection10m: floatPtrs(90, 180, 270, 0),
	}

	rows := NormalizeRows(h)

	assert.Len(t, rows, 2)
	assert.Equal(t, "2024-06-01T01:00", rows[1].Time)
}

func TestNormalizeRows_AllSecondariesEmpty(t *testing.T) {
	h := &HourlyData{
		Time: []string{"2024-06-01T00:00", "2024-06-01T01:00"},
	}

	rows := NormalizeRows(h)

	assert.Len(t, rows, 2)
	for _, row := range rows {
		assert.Nil(t, row.Temperature2m)
		assert.Nil(t, row.WeatherCode)
		assert.Nil(t, row.Rain)
		assert.Nil(t, row.WindDirection10m)
	}
}

func TestNormalizeRows_NilElementsSurviveAsNil(t *testing.T) {
	h := &HourlyData{
		Time:          []string{"2024-06-01T00:00", "2024-06-01T01:00"},
		Temperature2m: []*float64{nil, ptr(11.0)},
	}

	rows := NormalizeRows(h)

	assert.Len(t, rows, 2)
	assert.Nil(t, rows[0].Temperature2m)
	assert.Equal(t, 11.0, *rows[1].Temperature2m)
}

func TestNormalizeRows_NoTime(t *testing.T) {
	assert.Empty(t, NormalizeRows(nil))
	assert.Empty(t, NormalizeRows(&HourlyData{Temperature2m: floatPtrs(10)}))
}
