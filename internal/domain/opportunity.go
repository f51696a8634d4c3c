package domain

import "time"

// Opportunity is a volunteer role attached to a project. Slots is informational only.
type Opportunity struct {
	ID           int64  `json:"id"`
	ProjectID    int64  `json:"project_id"`
	Title        string `json:"title"`
	Requirements string `json:"requirements"`
	Slots        int    `json:"slots"`
	StartDate    string `json:"start_date"`
}

type ApplicationStatus string

const ApplicationPending ApplicationStatus = "pending"

// Application is a volunteer's submission against an opportunity.
type Application struct {
	ID            int64             `json:"id"`
	OpportunityID int64             `json:"opportunity_id"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Message       string            `json:"message"`
	AppliedAt     time.Time         `json:"applied_at"`
	Status        ApplicationStatus `json:"status"`
}
