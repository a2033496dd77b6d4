package CronJobs

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"Gudang/Store"
)

// SnapshotRefresher periodically refetches the shared inventory and report
// snapshots so the views never serve data older than the refresh interval.
type SnapshotRefresher struct {
	cronScheduler  *cron.Cron
	inventory      *Store.InventoryStore
	reports        *Store.ReportStore
	runImmediately bool
	jobID          cron.EntryID
}

// NewSnapshotRefresher creates a refresher for the given stores.
func NewSnapshotRefresher(inventory *Store.InventoryStore, reports *Store.ReportStore, runImmediately bool) *SnapshotRefresher {
	return &SnapshotRefresher{
		cronScheduler:  cron.New(cron.WithSeconds()),
		inventory:      inventory,
		reports:        reports,
		runImmediately: runImmediately,
	}
}

// Start schedules the refresh job. Format: "0 */15 * * * *" = every 15 minutes.
func (s *SnapshotRefresher) Start(schedule string) error {
	var err error
	s.jobID, err = s.cronScheduler.AddFunc(schedule, func() {
		log.Println("Running scheduled snapshot refresh")
		s.refresh()
	})
	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	s.cronScheduler.Start()

	if s.runImmediately {
		s.refresh()
	}
	return nil
}

// Stop terminates the refresher
func (s *SnapshotRefresher) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
		log.Println("Snapshot refresher stopped")
	}
}

// UpdateSchedule changes the refresh schedule.
func (s *SnapshotRefresher) UpdateSchedule(schedule string) error {
	s.cronScheduler.Remove(s.jobID)

	var err error
	s.jobID, err = s.cronScheduler.AddFunc(schedule, func() {
		log.Println("Running scheduled snapshot refresh")
		s.refresh()
	})
	if err != nil {
		return fmt.Errorf("error updating schedule: %w", err)
	}

	log.Printf("Snapshot refresh schedule updated to: %s\n", schedule)
	return nil
}

func (s *SnapshotRefresher) refresh() {
	ctx := context.Background()
	s.inventory.Refresh(ctx)
	if err := s.reports.Refresh(ctx); err != nil {
		log.Println("Failed to refresh report snapshot:", err)
	}
}
