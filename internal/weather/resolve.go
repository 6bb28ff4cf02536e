package weather

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/4Sight-Development/csir-demo/internal/store"
)

// Default coordinates used when the caller supplies none and IP geolocation
// yields nothing. Roughly Pretoria.
const (
	defaultLatitude  = -25.75
	defaultLongitude = 28.25
)

const defaultLocationHeader = "Default Location, South Africa, Pretoria"

// ResolvedLocation is the effective location of one grid request.
// Descriptive fields are nil unless the default-location branch or a
// successful IP lookup filled them in.
type ResolvedLocation struct {
	Latitude       float64
	Longitude      float64
	Header         string
	CountryName    *string
	CountryCapital *string
	City           *string
}

// LocationQuery carries the caller-supplied location hints.
type LocationQuery struct {
	Lat               *float64
	Lon               *float64
	Header            string
	IsDefaultLocation bool
}

// headerCacheKey rounds coordinates to 4 decimal places (~11m); the
// precision matches the header text and is a tunable, not a contract.
func headerCacheKey(lat, lon float64) string {
	return fmt.Sprintf("%.4f:%.4f", lat, lon)
}

// resolveLocation determines the effective coordinates, descriptive fields,
// and display header for a grid request.
//
// Coordinates: explicit values win per axis; the default-location flag pins
// the fixed defaults; otherwise IP geolocation fills the gaps, falling back
// to the defaults when it fails. IP lookup failures are swallowed and only
// logged since the pipeline must still produce a grid.
//
// Headers: an explicit non-blank header is used verbatim and never cached.
// Otherwise the header is read through the cache, keyed by rounded
// coordinates, and computed and stored on a miss.
func resolveLocation(ctx context.Context, provider Provider, cache store.HeaderCache, q LocationQuery) ResolvedLocation {
	var ipInfo *IPInfo
	if (q.Lat == nil || q.Lon == nil) && !q.IsDefaultLocation {
		info, err := provider.FetchIPInfo(ctx)
		if err != nil {
			log.Printf("ip geolocation lookup failed, using default coordinates: %v", err)
		} else {
			ipInfo = info
		}
	}

	resolved := ResolvedLocation{
		Latitude:  coalesceCoord(q.Lat, q.IsDefaultLocation, ipLat(ipInfo), defaultLatitude),
		Longitude: coalesceCoord(q.Lon, q.IsDefaultLocation, ipLon(ipInfo), defaultLongitude),
	}

	if q.IsDefaultLocation {
		resolved.CountryName = ptr("South Africa")
		resolved.CountryCapital = ptr("Pretoria")
		resolved.City = ptr("Pretoria")
	} else if ipInfo != nil {
		resolved.CountryName = ipInfo.CountryName
		resolved.CountryCapital = ipInfo.CountryCapital
		resolved.City = ipInfo.City
	}

	if strings.TrimSpace(q.Header) != "" {
		resolved.Header = q.Header
		return resolved
	}

	key := headerCacheKey(resolved.Latitude, resolved.Longitude)
	if cached, ok := cache.Get(key); ok {
		resolved.Header = cached
		return resolved
	}

	if q.IsDefaultLocation {
		resolved.Header = defaultLocationHeader
	} else {
		resolved.Header = fmt.Sprintf("Lat %.4f, Lon %.4f", resolved.Latitude, resolved.Longitude)
	}
	cache.Put(key, resolved.Header)

	return resolved
}

func coalesceCoord(explicit *float64, isDefault bool, fromIP *float64, def float64) float64 {
	if explicit != nil {
		return *explicit
	}
	if isDefault {
		return def
	}
	if fromIP != nil {
		return *fromIP
	}
	return def
}

func ipLat(info *IPInfo) *float64 {
	if info == nil {
		return nil
	}
	return info.Latitude
}

func ipLon(info *IPInfo) *float64 {
	if info == nil {
		return nil
	}
	return info.Longitude
}
