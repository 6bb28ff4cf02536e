package weather

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLocation_DefaultLocationBranch(t *testing.T) {
	provider := &stubProvider{}
	cache := newCountingCache()

	resolved := resolveLocation(context.Background(), provider, cache, LocationQuery{
		IsDefaultLocation: true,
	})

	assert.Equal(t, -25.75, resolved.Latitude)
	assert.Equal(t, 28.25, resolved.Longitude)
	assert.Equal(t, "South Africa", *resolved.CountryName)
	assert.Equal(t, "Pretoria", *resolved.CountryCapital)
	assert.Equal(t, "Pretoria", *resolved.City)
	assert.Equal(t, "Default Location, South Africa, Pretoria", resolved.Header)
	// The default branch never consults IP geolocation.
	assert.Equal(t, 0, provider.ipCalls)
}

func TestResolveLocation_ExplicitCoordinatesSkipIPLookup(t *testing.T) {
	provider := &stubProvider{}
	cache := newCountingCache()

	resolved := resolveLocation(context.Background(), provider, cache, LocationQuery{
		Lat: ptr(-33.9249),
		Lon: ptr(18.4241),
	})

	assert.Equal(t, 0, provider.ipCalls)
	assert.Equal(t, -33.9249, resolved.Latitude)
	assert.Equal(t, 18.4241, resolved.Longitude)
	assert.Equal(t, "Lat -33.9249, Lon 18.4241", resolved.Header)
	assert.Nil(t, resolved.CountryName)
}

func TestResolveLocation_HeaderCacheHitSkipsRecompute(t *testing.T) {
	provider := &stubProvider{}
	cache := newCountingCache()
	q := LocationQuery{Lat: ptr(-25.86), Lon: ptr(28.19)}

	first := resolveLocation(context.Background(), provider, cache, q)
	second := resolveLocation(context.Background(), provider, cache, q)

	assert.Equal(t, first.Header, second.Header)
	assert.Equal(t, 1, cache.puts)
}

func TestResolveLocation_ExplicitHeaderNeverCached(t *testing.T) {
	provider := &stubProvider{}
	cache := newCountingCache()

	resolved := resolveLocation(context.Background(), provider, cache, LocationQuery{
		Lat:    ptr(-25.86),
		Lon:    ptr(28.19),
		Header: "My Place",
	})

	assert.Equal(t, "My Place", resolved.Header)
	assert.Equal(t, 0, cache.puts)
}

func TestResolveLocation_IPLookupSuccess(t *testing.T) {
	provider := &stubProvider{
		ipInfo: &IPInfo{
			CountryName: ptr("France"),
			City:        ptr("Paris"),
			Latitude:    ptr(48.8566),
			Longitude:   ptr(2.3522),
		},
	}
	cache := newCountingCache()

	resolved := resolveLocation(context.Background(), provider, cache, LocationQuery{})

	assert.Equal(t, 1, provider.ipCalls)
	assert.Equal(t, 48.8566, resolved.Latitude)
	assert.Equal(t, 2.3522, resolved.Longitude)
	assert.Equal(t, "France", *resolved.CountryName)
	assert.Equal(t, "Paris", *resolved.City)
	assert.Nil(t, resolved.CountryCapital)
	assert.Equal(t, "Lat 48.8566, Lon 2.3522", resolved.Header)
}

func TestResolveLocation_IPLookupFailureFallsBackWithoutDescriptiveFields(t *testing.T) {
	provider := &stubProvider{ipErr: assert.AnError}
	cache := newCountingCache()

	resolved := resolveLocation(context.Background(), provider, cache, LocationQuery{})

	assert.Equal(t, -25.75, resolved.Latitude)
	assert.Equal(t, 28.25, resolved.Longitude)
	// Only the default-location branch fills the descriptive fields.
	assert.Nil(t, resolved.CountryName)
	assert.Nil(t, resolved.CountryCapital)
	assert.Nil(t, resolved.City)
	assert.Equal(t, "Lat -25.7500, Lon 28.2500", resolved.Header)
}

func TestHeaderCacheKeyPrecision(t *testing.T) {
	assert.Equal(t, "-25.7500:28.2500", headerCacheKey(-25.75, 28.25))
	assert.Equal(t, "-25.8600:28.1900", headerCacheKey(-25.86, 28.19))
}
