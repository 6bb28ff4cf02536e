package weather

import (
	"context"
	"time"
)

// HourlyData is the raw hourly block of an upstream forecast response.
// The arrays are parallel but not guaranteed to have equal lengths; element
// pointers are nil where the upstream emitted JSON null.
type HourlyData struct {
	Time             []string   `json:"time"`
	Temperature2m    []*float64 `json:"temperature_2m"`
	WeatherCode      []*int     `json:"weather_code"`
	Rain             []*float64 `json:"rain"`
	WindDirection10m []*float64 `json:"wind_direction_10m"`
}

// IPInfo is a best-effort geolocation of the caller's public IP.
type IPInfo struct {
	CountryName    *string
	CountryCapital *string
	City           *string
	Latitude       *float64
	Longitude      *float64
}

// Provider abstracts the upstream weather and geolocation sources.
// Implementations return an error on any failure; callers degrade to "no
// data" rather than propagating.
type Provider interface {
	FetchHourly(ctx context.Context, lat, lon float64, start, end time.Time) (*HourlyData, error)
	FetchIPInfo(ctx context.Context) (*IPInfo, error)
}
