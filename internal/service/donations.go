package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"ngoserver/internal/domain"
	"ngoserver/internal/metrics"
)

// CheckoutInput is the raw donation form. Amount and ProjectID are untyped so
// that JSON numbers and form strings go through the same validation.
type CheckoutInput struct {
	Name      string
	Email     string
	Amount    any
	ProjectID any
}

// Donations records donations and credits them to projects.
type Donations struct {
	donations domain.DonationRepository
	projects  domain.ProjectRepository
	log       zerolog.Logger
}

func NewDonations(donations domain.DonationRepository, projects domain.ProjectRepository, log zerolog.Logger) *Donations {
	return &Donations{donations: donations, projects: projects, log: log}
}

// Checkout validates the amount, credits the referenced project and records a
// paid donation. An unknown project is not an error: the donation is still
// recorded and no project changes. A credit that would overflow the project
// total is rejected before anything is recorded.
func (s *Donations) Checkout(ctx context.Context, in CheckoutInput) (*domain.Donation, error) {
	amount, err := domain.ParseAmount(in.Amount)
	if err != nil {
		return nil, err
	}
	projectID, err := domain.ParseProjectRef(in.ProjectID)
	if err != nil {
		// Matches no project; recorded unattributed.
		s.log.Warn().Err(err).Msg("ignoring unparseable project reference")
		projectID = nil
	}

	attributed := false
	if projectID != nil {
		_, err := s.projects.AddRaised(ctx, *projectID, amount)
		switch {
		case err == nil:
			attributed = true
		case errors.Is(err, domain.ErrNotFound):
			s.log.Warn().Int64("project_id", *projectID).Msg("donation references unknown project")
		default:
			return nil, fmt.Errorf("credit project %d: %w", *projectID, err)
		}
	}

	donation := &domain.Donation{
		Name:      in.Name,
		Email:     in.Email,
		Amount:    amount,
		ProjectID: projectID,
	}
	if err := s.donations.Create(ctx, donation); err != nil {
		return nil, fmt.Errorf("create donation: %w", err)
	}
	metrics.RecordDonation(amount, attributed)

	s.log.Info().
		Int64("donation_id", donation.ID).
		Float64("amount", donation.Amount).
		Bool("attributed", attributed).
		Msg("donation recorded")
	return donation, nil
}

// List returns every recorded donation.
func (s *Donations) List(ctx context.Context) ([]domain.Donation, error) {
	return s.donations.List(ctx)
}
