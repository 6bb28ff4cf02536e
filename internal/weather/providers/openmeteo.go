package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/4Sight-Development/csir-demo/internal/weather"
)

// Client fetches hourly forecasts from Open-Meteo and caller geolocation
// from ip-api.com. It implements weather.Provider.
type Client struct {
	forecastURL string
	ipInfoURL   string
	httpCfg     HTTPClientConfig

	// One breaker per upstream so an Open-Meteo outage does not trip
	// the geolocation path and vice versa.
	forecastCircuit *gobreaker.CircuitBreaker
	ipCircuit       *gobreaker.CircuitBreaker
}

// NewClient creates a Client using the shared outbound HTTP client.
func NewClient(httpClient *http.Client) *Client {
	return &Client{
		forecastURL:     "https://api.open-meteo.com/v1/forecast",
		ipInfoURL:       "http://ip-api.com/json/",
		httpCfg:         defaultHTTPConfig(httpClient),
		forecastCircuit: newBreaker("openmeteo"),
		ipCircuit:       newBreaker("ipapi"),
	}
}

// openMeteoResponse mirrors the subset of the Open-Meteo forecast payload we
// consume. Pointer-typed elements keep upstream nulls distinguishable from
// zero values.
type openMeteoResponse struct {
	Hourly *weather.HourlyData `json:"hourly"`
}

// FetchHourly retrieves the hourly series for the coordinates and inclusive
// date range.
func (c *Client) FetchHourly(ctx context.Context, lat, lon float64, start, end time.Time) (*weather.HourlyData, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", lat))
		values.Set("longitude", fmt.Sprintf("%f", lon))
		values.Set("hourly", "temperature_2m,weather_code,rain,wind_direction_10m")
		values.Set("timezone", "auto")
		values.Set("start_date", start.Format("2006-01-02"))
		values.Set("end_date", end.Format("2006-01-02"))

		u := fmt.Sprintf("%s?%s", c.forecastURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, c.httpCfg, c.forecastCircuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return payload.Hourly, nil
}
