package store

import (
	"errors"
	"log"
	"sort"
	"sync"

	"surgery-schedule-backend/internal/models"

	"github.com/google/uuid"
)

// SurgeryRepository is the persistence contract the store needs. Satisfied
// by repository.SurgeryRepository; tests supply an in-memory fake.
type SurgeryRepository interface {
	GetAll() ([]models.Surgery, error)
	GetByID(id string) (*models.Surgery, error)
	Create(surgery *models.Surgery) error
	Updates(id string, updates map[string]interface{}) error
	Delete(id string) error
}

// SurgeryStore is the reactive case store. Every successful mutation reloads
// the full collection and pushes the snapshot to all subscribers; consumers
// re-derive their views from each snapshot rather than patching
// incrementally.
type SurgeryStore struct {
	repo SurgeryRepository

	mu       sync.Mutex
	subs     map[int]func([]models.Surgery)
	nextSub  int
	snapshot []models.Surgery
}

func NewSurgeryStore(repo SurgeryRepository) *SurgeryStore {
	s := &SurgeryStore{
		repo: repo,
		subs: make(map[int]func([]models.Surgery)),
	}
	if err := s.refresh(); err != nil {
		log.Printf("Warning: failed to load initial surgery snapshot: %v", err)
	}
	return s
}

// Subscribe registers a snapshot callback and immediately delivers the
// current snapshot. The returned function releases the subscription; calling
// it more than once is a no-op.
func (s *SurgeryStore) Subscribe(fn func([]models.Surgery)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	current := cloneSurgeries(s.snapshot)
	s.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Snapshot returns a copy of the current full case collection
func (s *SurgeryStore) Snapshot() []models.Surgery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSurgeries(s.snapshot)
}

// GetByID fetches a single persisted surgery
func (s *SurgeryStore) GetByID(id string) (*models.Surgery, error) {
	return s.repo.GetByID(id)
}

// Add persists a new case. The store assigns the identifier; timestamps are
// set by the persistence layer. Write failures propagate, no retry.
func (s *SurgeryStore) Add(surgery *models.Surgery) error {
	if surgery.ID != "" {
		return errors.New("surgery already has an identifier")
	}
	surgery.ID = uuid.New().String()
	if err := s.repo.Create(surgery); err != nil {
		return err
	}
	s.broadcast()
	return nil
}

// Update applies a partial patch to an existing case
func (s *SurgeryStore) Update(id string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	if err := s.repo.Updates(id, updates); err != nil {
		return err
	}
	s.broadcast()
	return nil
}

// Delete removes a case
func (s *SurgeryStore) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.broadcast()
	return nil
}

func (s *SurgeryStore) refresh() error {
	surgeries, err := s.repo.GetAll()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.snapshot = surgeries
	s.mu.Unlock()
	return nil
}

// broadcast reloads the collection and pushes the full snapshot to every
// subscriber in registration order.
func (s *SurgeryStore) broadcast() {
	if err := s.refresh(); err != nil {
		log.Printf("Error refreshing surgery snapshot: %v", err)
		return
	}

	s.mu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	// map iteration order is random; deliver in registration order
	sort.Ints(ids)
	fns := make([]func([]models.Surgery), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	current := cloneSurgeries(s.snapshot)
	s.mu.Unlock()

	for _, fn := range fns {
		fn(cloneSurgeries(current))
	}
}

func cloneSurgeries(in []models.Surgery) []models.Surgery {
	out := make([]models.Surgery, len(in))
	copy(out, in)
	return out
}
