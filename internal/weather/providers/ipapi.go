package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/4Sight-Development/csir-demo/internal/weather"
)

// ipAPIResponse mirrors the ip-api.com JSON payload.
type ipAPIResponse struct {
	Status  string   `json:"status"`
	Country *string  `json:"country"`
	City    *string  `json:"city"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
}

// FetchIPInfo geolocates the server's public IP via ip-api.com. The payload
// carries no capital city, so CountryCapital stays nil.
func (c *Client) FetchIPInfo(ctx context.Context) (*weather.IPInfo, error) {
	buildRequest := func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, c.ipInfoURL, nil)
	}

	resp, err := doRequestWithResilience(ctx, c.httpCfg, c.ipCircuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	if payload.Status != "success" {
		return nil, fmt.Errorf("ip-api lookup status %q", payload.Status)
	}

	return &weather.IPInfo{
		CountryName: payload.Country,
		City:        payload.City,
		Latitude:    payload.Lat,
		Longitude:   payload.Lon,
	}, nil
}
