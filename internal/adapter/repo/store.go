package repo

import "ngoserver/internal/domain"

// Store groups the in-memory repositories. State lives for the process lifetime.
type Store struct {
	NGOs          *NGORepositoryMem
	Projects      *ProjectRepositoryMem
	Opportunities *OpportunityRepositoryMem
	Donations     *DonationRepositoryMem
	Applications  *ApplicationRepositoryMem
	Posts         *PostRepositoryMem
}

// Seed holds the initial contents of every collection.
type Seed struct {
	NGOs          []domain.NGO
	Projects      []domain.Project
	Opportunities []domain.Opportunity
	Donations     []domain.Donation
	Applications  []domain.Application
	Posts         []domain.Post
}

// NewStore builds the repositories from seed. The seed slices are copied.
func NewStore(seed Seed) *Store {
	return &Store{
		NGOs:          NewNGORepository(seed.NGOs),
		Projects:      NewProjectRepository(seed.Projects),
		Opportunities: NewOpportunityRepository(seed.Opportunities),
		Donations:     NewDonationRepository(seed.Donations),
		Applications:  NewApplicationRepository(seed.Applications),
		Posts:         NewPostRepository(seed.Posts),
	}
}

// nextID returns the id following the largest one in items.
func nextID[T any](items []T, id func(T) int64) int64 {
	var highest int64
	for _, it := range items {
		if v := id(it); v > highest {
			highest = v
		}
	}
	return highest + 1
}
