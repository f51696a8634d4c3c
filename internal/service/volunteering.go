package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"ngoserver/internal/domain"
	"ngoserver/internal/metrics"
)

type ApplyInput struct {
	Name    string
	Email   string
	Message string
}

// Volunteering accepts applications to volunteer opportunities.
type Volunteering struct {
	opportunities domain.OpportunityRepository
	applications  domain.ApplicationRepository
	log           zerolog.Logger
}

func NewVolunteering(opportunities domain.OpportunityRepository, applications domain.ApplicationRepository, log zerolog.Logger) *Volunteering {
	return &Volunteering{opportunities: opportunities, applications: applications, log: log}
}

// Apply records a pending application. Slots are not consumed and repeated
// applications are accepted.
func (s *Volunteering) Apply(ctx context.Context, opportunityID int64, in ApplyInput) (*domain.Application, error) {
	if _, err := s.opportunities.GetByID(ctx, opportunityID); err != nil {
		return nil, err
	}

	application := &domain.Application{
		OpportunityID: opportunityID,
		Name:          in.Name,
		Email:         in.Email,
		Message:       in.Message,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	metrics.RecordApplication()

	s.log.Info().
		Int64("application_id", application.ID).
		Int64("opportunity_id", opportunityID).
		Msg("volunteer application received")
	return application, nil
}

func (s *Volunteering) Opportunities(ctx context.Context) ([]domain.Opportunity, error) {
	return s.opportunities.List(ctx)
}
