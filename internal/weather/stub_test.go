package weather

import (
	"context"
	"sync"
	"time"

	"github.com/4Sight-Development/csir-demo/internal/store"
)

// stubProvider is a scriptable Provider for tests. hourlyFn, when set, picks
// the response per coordinate pair.
type stubProvider struct {
	mu sync.Mutex

	ipInfo  *IPInfo
	ipErr   error
	ipCalls int

	hourly      *HourlyData
	hourlyErr   error
	hourlyFn    func(lat, lon float64) (*HourlyData, error)
	hourlyCalls int
}

func (s *stubProvider) FetchIPInfo(ctx context.Context) (*IPInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ipCalls++
	return s.ipInfo, s.ipErr
}

func (s *stubProvider) FetchHourly(ctx context.Context, lat, lon float64, start, end time.Time) (*HourlyData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hourlyCalls++
	if s.hourlyFn != nil {
		return s.hourlyFn(lat, lon)
	}
	return s.hourly, s.hourlyErr
}

// countingCache wraps a HeaderCache and counts writes, to observe whether the
// resolver recomputed a header.
type countingCache struct {
	inner store.HeaderCache
	puts  int
}

func newCountingCache() *countingCache {
	return &countingCache{inner: store.NewMemoryHeaderCache()}
}

func (c *countingCache) Get(key string) (string, bool) {
	return c.inner.Get(key)
}

func (c *countingCache) Put(key, value string) {
	c.puts++
	c.inner.Put(key, value)
}
