package repo

import (
	"context"
	"fmt"
	"slices"

	"ngoserver/internal/domain"
)

// OpportunityRepositoryMem implements OpportunityRepository over a fixed slice.
type OpportunityRepositoryMem struct {
	items []domain.Opportunity
}

func NewOpportunityRepository(items []domain.Opportunity) *OpportunityRepositoryMem {
	return &OpportunityRepositoryMem{items: slices.Clone(items)}
}

func (r *OpportunityRepositoryMem) List(_ context.Context) ([]domain.Opportunity, error) {
	out := slices.Clone(r.items)
	if out == nil {
		out = []domain.Opportunity{}
	}
	return out, nil
}

func (r *OpportunityRepositoryMem) GetByID(_ context.Context, id int64) (*domain.Opportunity, error) {
	for _, o := range r.items {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, fmt.Errorf("opportunity %d: %w", id, domain.ErrNotFound)
}
