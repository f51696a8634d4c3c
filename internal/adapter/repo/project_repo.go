package repo

import (
	"context"
	"fmt"
	"math"
	"slices"
	"sync"

	"ngoserver/internal/domain"
)

// ProjectRepositoryMem implements ProjectRepository in memory.
// raised_amount updates are serialized by mu.
type ProjectRepositoryMem struct {
	mu    sync.RWMutex
	items []domain.Project
}

func NewProjectRepository(items []domain.Project) *ProjectRepositoryMem {
	r := &ProjectRepositoryMem{items: make([]domain.Project, 0, len(items))}
	for _, p := range items {
		r.items = append(r.items, cloneProject(p))
	}
	return r
}

// List returns every project in insertion order.
func (r *ProjectRepositoryMem) List(_ context.Context) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Project, len(r.items))
	for i, p := range r.items {
		out[i] = cloneProject(p)
	}
	return out, nil
}

// GetByID returns the first project with the given id.
func (r *ProjectRepositoryMem) GetByID(_ context.Context, id int64) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.ID == id {
			cp := cloneProject(p)
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
}

// GetBySlug returns the first project whose slug matches exactly.
func (r *ProjectRepositoryMem) GetBySlug(_ context.Context, slug string) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.Slug == slug {
			cp := cloneProject(p)
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("project %q: %w", slug, domain.ErrNotFound)
}

// AddRaised increments the project's raised amount and returns the updated record.
func (r *ProjectRepositoryMem) AddRaised(_ context.Context, id int64, amount float64) (*domain.Project, error) {
	if amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAmount, amount)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			total := r.items[i].RaisedAmount + amount
			if math.IsInf(total, 0) || math.IsNaN(total) {
				return nil, fmt.Errorf("%w: project %d total overflows", domain.ErrInvalidAmount, id)
			}
			r.items[i].RaisedAmount = total
			cp := cloneProject(r.items[i])
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
}

func cloneProject(p domain.Project) domain.Project {
	p.Media = slices.Clone(p.Media)
	if p.Media == nil {
		p.Media = []domain.Media{}
	}
	return p
}
