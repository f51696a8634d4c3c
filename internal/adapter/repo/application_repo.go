package repo

import (
	"context"
	"slices"
	"sync"
	"time"

	"ngoserver/internal/domain"
)

// ApplicationRepositoryMem implements ApplicationRepository in memory.
type ApplicationRepositoryMem struct {
	mu     sync.RWMutex
	items  []domain.Application
	nextID int64
	now    func() time.Time
}

func NewApplicationRepository(items []domain.Application) *ApplicationRepositoryMem {
	return &ApplicationRepositoryMem{
		items:  slices.Clone(items),
		nextID: nextID(items, func(a domain.Application) int64 { return a.ID }),
		now:    time.Now,
	}
}

// Create stores the application as pending and assigns its id.
func (r *ApplicationRepositoryMem) Create(_ context.Context, application *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	application.ID = r.nextID
	r.nextID++
	application.Status = domain.ApplicationPending
	application.AppliedAt = r.now().UTC()
	r.items = append(r.items, *application)
	return nil
}

func (r *ApplicationRepositoryMem) List(_ context.Context) ([]domain.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Application, len(r.items))
	copy(out, r.items)
	return out, nil
}
