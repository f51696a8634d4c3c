package domain

import "context"

// NGORepository exposes the read-only NGO directory.
type NGORepository interface {
	List(ctx context.Context) ([]NGO, error)
}

// ProjectRepository defines access methods for projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id int64) (*Project, error)
	GetBySlug(ctx context.Context, slug string) (*Project, error)
	AddRaised(ctx context.Context, id int64, amount float64) (*Project, error)
}

// OpportunityRepository defines access methods for volunteer opportunities.
type OpportunityRepository interface {
	List(ctx context.Context) ([]Opportunity, error)
	GetByID(ctx context.Context, id int64) (*Opportunity, error)
}

// DonationRepository handles donation persistence. Create assigns ID.
type DonationRepository interface {
	Create(ctx context.Context, donation *Donation) error
	List(ctx context.Context) ([]Donation, error)
}

// ApplicationRepository handles volunteer applications. Create assigns ID.
type ApplicationRepository interface {
	Create(ctx context.Context, application *Application) error
	List(ctx context.Context) ([]Application, error)
}

// PostRepository exposes published posts.
type PostRepository interface {
	List(ctx context.Context) ([]Post, error)
}
