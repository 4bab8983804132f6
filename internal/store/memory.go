package store

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/i474232898/weather-bot/internal/weather"
)

var (
	// ErrNotFound is returned when no report is available for a given location.
	ErrNotFound = errors.New("no weather report for location")
)

// MemoryStore is a concurrency-safe in-memory log of scheduled weather reports.
type MemoryStore struct {
	mu sync.RWMutex

	// normalized location -> reports, oldest first
	data map[string][]weather.Report

	// retention configuration
	maxHistory int           // max number of reports per location
	maxAge     time.Duration // optional max age for reports

	now func() time.Time
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxHistory is <= 0, it is treated as unlimited.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string][]weather.Report),
		maxHistory: maxHistory,
		maxAge:     maxAge,
		now:        time.Now,
	}
}

// key normalizes a location so that "London UK" and " london  uk" share a history.
func key(location string) string {
	return strings.ToLower(strings.Join(strings.Fields(location), " "))
}

// SaveReport appends a report for its location and enforces retention.
func (s *MemoryStore) SaveReport(report weather.Report) {
	k := key(report.Location)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[k] = s.trim(append(s.data[k], report))
}

// trim applies count and age retention. The newest report is always kept.
func (s *MemoryStore) trim(reports []weather.Report) []weather.Report {
	if s.maxHistory > 0 && len(reports) > s.maxHistory {
		reports = reports[len(reports)-s.maxHistory:]
	}
	if s.maxAge <= 0 {
		return reports
	}

	cutoff := s.now().Add(-s.maxAge)
	keep := sort.Search(len(reports)-1, func(i int) bool {
		return !reports[i].CreatedAt.Before(cutoff)
	})
	return reports[keep:]
}

// GetLatest returns the most recent report for a location.
func (s *MemoryStore) GetLatest(location string) (weather.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := s.data[key(location)]
	if len(reports) == 0 {
		return weather.Report{}, ErrNotFound
	}
	return reports[len(reports)-1], nil
}

// GetRange returns all reports for a location between from and to (inclusive).
func (s *MemoryStore) GetRange(location string, from, to time.Time) ([]weather.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []weather.Report
	for _, r := range s.data[key(location)] {
		if !r.CreatedAt.Before(from) && !r.CreatedAt.After(to) {
			result = append(result, r)
		}
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return result, nil
}
