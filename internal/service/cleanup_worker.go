package service

import (
	"context"
	"log"
	"time"

	"surgery-schedule-backend/internal/store"
)

// CleanupWorker lazily removes room assignments whose case has been deleted
// from the store. The mapping is a local annotation layer, so orphans are
// harmless until reaped; this keeps the local database from growing forever.
type CleanupWorker struct {
	store       *store.SurgeryStore
	assignments *AssignmentService
	interval    time.Duration
}

func NewCleanupWorker(store *store.SurgeryStore, assignments *AssignmentService) *CleanupWorker {
	return &CleanupWorker{
		store:       store,
		assignments: assignments,
		interval:    15 * time.Minute,
	}
}

// Start runs the cleanup loop until the context is cancelled
func (w *CleanupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Printf("Assignment cleanup worker started - running every %v", w.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Assignment cleanup worker stopped")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *CleanupWorker) sweep() {
	existing := make(map[string]bool)
	for _, s := range w.store.Snapshot() {
		existing[s.ID] = true
	}

	if removed := w.assignments.CleanupOrphans(existing); removed > 0 {
		log.Printf("Removed %d orphaned room assignments", removed)
	}
}
