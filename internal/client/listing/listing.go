// Package listing derives the user's file collection view from raw server
// records. Status is a pure function of (expiredAt, now) and is recomputed on
// every read, never stored: "now" moves on its own, so a cached status is a
// staleness bug waiting to happen. Only the raw records are cached, and that
// cache is invalidated after every mutation (upload, delete).
package listing

import (
	"context"
	"sync"
	"time"

	"github.com/samber/lo"

	"datashare/internal/client/api"
	"datashare/internal/client/expiry"
	"datashare/internal/client/models"
)

// Status partitions the collection for the dashboard tabs.
type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
)

// Filter selects which part of the collection to show.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterActive  Filter = "active"
	FilterExpired Filter = "expired"
)

// Item is one row of the collection view.
type Item struct {
	Record       models.FileRecord
	Status       Status
	ExpiresLabel string
}

// Counts carries the per-tab totals.
type Counts struct {
	All     int
	Active  int
	Expired int
}

// StatusOf derives the record status: expired as soon as expiredAt <= now.
func StatusOf(expiredAt, now time.Time) Status {
	if !expiredAt.After(now) {
		return StatusExpired
	}
	return StatusActive
}

// Service fetches and caches the raw records behind the collection view.
type Service struct {
	client api.Client

	mu     sync.Mutex
	cached []models.FileRecord
	valid  bool

	// now is a seam for tests
	now func() time.Time
}

func NewService(client api.Client) *Service {
	return &Service{client: client, now: time.Now}
}

// Invalidate drops the cached records; the next read refetches. Called after
// a successful upload or delete so the next render reflects the mutation.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.valid = false
	s.cached = nil
}

func (s *Service) records(ctx context.Context) ([]models.FileRecord, error) {
	s.mu.Lock()
	if s.valid {
		cached := s.cached
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	fetched, err := s.client.ListFiles(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = fetched
	s.valid = true
	s.mu.Unlock()

	return fetched, nil
}

// View returns the filtered items plus the tab counts. Statuses and labels
// are derived from the wall clock at call time.
func (s *Service) View(ctx context.Context, filter Filter) ([]Item, Counts, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, Counts{}, err
	}

	now := s.now()
	items := lo.Map(records, func(r models.FileRecord, _ int) Item {
		return Item{
			Record:       r,
			Status:       StatusOf(r.ExpiredAt, now),
			ExpiresLabel: expiry.Label(expiry.DaysUntil(r.ExpiredAt, now)),
		}
	})

	counts := Counts{
		All:     len(items),
		Active:  lo.CountBy(items, func(i Item) bool { return i.Status == StatusActive }),
		Expired: lo.CountBy(items, func(i Item) bool { return i.Status == StatusExpired }),
	}

	if filter != FilterAll {
		items = lo.Filter(items, func(i Item, _ int) bool {
			return string(i.Status) == string(filter)
		})
	}

	return items, counts, nil
}
