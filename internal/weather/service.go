package weather

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/4Sight-Development/csir-demo/internal/store"
)

const dateLayout = "2006-01-02"

// defaultRangeDays is the inclusive width of the default date window.
const defaultRangeDays = 14

// Service orchestrates location resolution, upstream fetches, row
// normalization, and day aggregation for the grid endpoints.
type Service struct {
	provider Provider
	headers  store.HeaderCache
}

// NewService creates a new Service.
func NewService(provider Provider, headers store.HeaderCache) *Service {
	return &Service{
		provider: provider,
		headers:  headers,
	}
}

// GridQuery carries the caller-supplied parameters for a single-location grid.
type GridQuery struct {
	LocationQuery
	StartDate string
	EndDate   string
}

// resolveDateRange applies the default 14-day inclusive window ending at the
// current UTC date, overrides either bound with a parseable caller value, and
// swaps the bounds when they arrive inverted. Unparseable input keeps the
// default for that bound.
func resolveDateRange(startDate, endDate string, now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -(defaultRangeDays - 1))

	if t, err := time.Parse(dateLayout, startDate); err == nil {
		start = t
	}
	if t, err := time.Parse(dateLayout, endDate); err == nil {
		end = t
	}
	if start.After(end) {
		start, end = end, start
	}

	return start, end
}

// GetGrid builds the weather grid for one location. Upstream failures
// degrade to an empty grid; the location fields still reflect whatever the
// resolver could determine.
func (s *Service) GetGrid(ctx context.Context, q GridQuery) GridResult {
	resolved := resolveLocation(ctx, s.provider, s.headers, q.LocationQuery)
	start, end := resolveDateRange(q.StartDate, q.EndDate, time.Now())

	rows, days := s.fetchGrid(ctx, resolved.Latitude, resolved.Longitude, start, end)

	return GridResult{
		LocationHeader: resolved.Header,
		Rows:           rows,
		Days:           days,
		CountryName:    resolved.CountryName,
		CountryCapital: resolved.CountryCapital,
		City:           resolved.City,
	}
}

// GetGridMulti builds grids for the fixed named locations over one shared
// date range. Fetches run concurrently; the result preserves the table order
// and a failure for one location leaves the others intact.
func (s *Service) GetGridMulti(ctx context.Context, startDate, endDate string) MultiGridResult {
	start, end := resolveDateRange(startDate, endDate, time.Now())

	result := MultiGridResult{
		Locations: make([]LocationGrid, len(gridLocations)),
	}

	var wg sync.WaitGroup
	for i, loc := range gridLocations {
		wg.Add(1)
		go func(i int, loc NamedLocation) {
			defer wg.Done()

			rows, days := s.fetchGrid(ctx, loc.Latitude, loc.Longitude, start, end)
			result.Locations[i] = LocationGrid{
				Name:   loc.Name,
				Header: loc.Header,
				Rows:   rows,
				Days:   days,
			}
		}(i, loc)
	}
	wg.Wait()

	return result
}

// fetchGrid runs the fetch-normalize-aggregate chain for one coordinate
// pair. A fetch error means "no upstream data" and yields empty rows/days.
func (s *Service) fetchGrid(ctx context.Context, lat, lon float64, start, end time.Time) ([]HourlyRow, []DayStats) {
	hourly, err := s.provider.FetchHourly(ctx, lat, lon, start, end)
	if err != nil {
		log.Printf("hourly fetch failed for %.4f,%.4f: %v", lat, lon, err)
		hourly = nil
	}

	rows := NormalizeRows(hourly)
	return rows, AggregateDays(rows)
}
