package repo

import (
	"context"
	"slices"

	"ngoserver/internal/domain"
)

// NGORepositoryMem implements NGORepository over a fixed slice.
type NGORepositoryMem struct {
	items []domain.NGO
}

func NewNGORepository(items []domain.NGO) *NGORepositoryMem {
	return &NGORepositoryMem{items: slices.Clone(items)}
}

func (r *NGORepositoryMem) List(_ context.Context) ([]domain.NGO, error) {
	out := make([]domain.NGO, len(r.items))
	for i, n := range r.items {
		n.Reports = slices.Clone(n.Reports)
		out[i] = n
	}
	return out, nil
}
