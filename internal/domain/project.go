package domain

// Project is a fundraising initiative. RaisedAmount only grows, through donations.
type Project struct {
	ID           int64   `json:"id"`
	Slug         string  `json:"slug"`
	Title        string  `json:"title"`
	Summary      string  `json:"summary"`
	Description  string  `json:"description"`
	GoalAmount   float64 `json:"goal_amount"`
	RaisedAmount float64 `json:"raised_amount"`
	Category     string  `json:"category"`
	Media        []Media `json:"media"`
}

type Media struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Progress returns the raised share of the goal in percent, capped at 100.
func (p Project) Progress() float64 {
	if p.GoalAmount <= 0 {
		return 0
	}
	pct := p.RaisedAmount / p.GoalAmount * 100
	if pct > 100 {
		return 100
	}
	return pct
}
