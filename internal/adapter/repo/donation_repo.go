package repo

import (
	"context"
	"slices"
	"sync"
	"time"

	"ngoserver/internal/domain"
)

// DonationRepositoryMem implements DonationRepository in memory.
type DonationRepositoryMem struct {
	mu     sync.RWMutex
	items  []domain.Donation
	nextID int64
	now    func() time.Time
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(items []domain.Donation) *DonationRepositoryMem {
	return &DonationRepositoryMem{
		items:  slices.Clone(items),
		nextID: nextID(items, func(d domain.Donation) int64 { return d.ID }),
		now:    time.Now,
	}
}

// Create stores the donation, assigning its id, status and timestamp.
func (r *DonationRepositoryMem) Create(_ context.Context, donation *domain.Donation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	donation.ID = r.nextID
	r.nextID++
	donation.Status = domain.DonationPaid
	donation.DonatedAt = r.now().UTC()
	stored := *donation
	if donation.ProjectID != nil {
		pid := *donation.ProjectID
		stored.ProjectID = &pid
	}
	r.items = append(r.items, stored)
	return nil
}

// List returns donations in the order they were recorded.
func (r *DonationRepositoryMem) List(_ context.Context) ([]domain.Donation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Donation, len(r.items))
	copy(out, r.items)
	return out, nil
}
