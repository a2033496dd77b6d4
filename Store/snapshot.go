package Store

import (
	"context"
	"sync"

	"Gudang/Backend"
	"Gudang/Models"
)

// InventoryStore is the single shared snapshot of the inventory collection.
// All views read through it; mutations call Invalidate so the next read
// refetches. Snapshots are replaced wholesale, never merged.
type InventoryStore struct {
	client *Backend.Client

	mu    sync.RWMutex
	items []Models.InventoryItem
	stale bool
}

func NewInventoryStore(client *Backend.Client) *InventoryStore {
	return &InventoryStore{client: client, stale: true}
}

// Refresh replaces the snapshot with a fresh fetch. A failed fetch still
// yields an empty snapshot for the current read, matching the inventory
// fetch contract, but leaves the store stale so the next read retries
// instead of serving the empty result until the next scheduled refresh.
func (s *InventoryStore) Refresh(ctx context.Context) {
	err := s.client.FetchInventoryData(ctx, func(items []Models.InventoryItem) {
		s.mu.Lock()
		s.items = items
		s.mu.Unlock()
	})
	if err != nil {
		return
	}
	s.mu.Lock()
	s.stale = false
	s.mu.Unlock()
}

// Get returns the current snapshot, refetching first when it was invalidated.
func (s *InventoryStore) Get(ctx context.Context) []Models.InventoryItem {
	s.mu.RLock()
	stale := s.stale
	s.mu.RUnlock()

	if stale {
		s.Refresh(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]Models.InventoryItem, len(s.items))
	copy(items, s.items)
	return items
}

// Invalidate marks the snapshot stale after a mutation.
func (s *InventoryStore) Invalidate() {
	s.mu.Lock()
	s.stale = true
	s.mu.Unlock()
}

// ReportStore is the shared snapshot of the daily report summaries. Report
// fetch failures propagate, so Get returns the error alongside the last
// known snapshot.
type ReportStore struct {
	client *Backend.Client

	mu      sync.RWMutex
	reports []Models.DailyReportsSummary
	stale   bool
}

func NewReportStore(client *Backend.Client) *ReportStore {
	return &ReportStore{client: client, stale: true}
}

// Refresh replaces the snapshot with a fresh fetch.
func (s *ReportStore) Refresh(ctx context.Context) error {
	reports, err := s.client.FetchAllDailyReports(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.reports = reports
	s.stale = false
	s.mu.Unlock()
	return nil
}

// Get returns the current snapshot, refetching first when it was invalidated.
func (s *ReportStore) Get(ctx context.Context) ([]Models.DailyReportsSummary, error) {
	s.mu.RLock()
	stale := s.stale
	s.mu.RUnlock()

	if stale {
		if err := s.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	reports := make([]Models.DailyReportsSummary, len(s.reports))
	copy(reports, s.reports)
	return reports, nil
}

// Invalidate marks the snapshot stale after a mutation.
func (s *ReportStore) Invalidate() {
	s.mu.Lock()
	s.stale = true
	s.mu.Unlock()
}
