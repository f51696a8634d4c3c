package handlers

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"ngoserver/internal/domain"
)

//go:embed templates/index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type indexProject struct {
	Slug     string
	Title    string
	Summary  string
	Category string
	Raised   string
	Goal     string
	Percent  string
}

type indexPage struct {
	Name          string
	Mission       string
	Vision        string
	Contact       *domain.Contact
	Projects      []indexProject
	Opportunities []domain.Opportunity
	Posts         []domain.Post
}

// Home renders the landing page from the current in-memory state.
func (a *App) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ngos, err := a.NGOs.List(ctx)
	if err != nil {
		a.internal(w, r, err)
		return
	}
	projects, err := a.Projects.List(ctx)
	if err != nil {
		a.internal(w, r, err)
		return
	}
	opportunities, err := a.Volunteering.Opportunities(ctx)
	if err != nil {
		a.internal(w, r, err)
		return
	}
	posts, err := a.Posts.List(ctx)
	if err != nil {
		a.internal(w, r, err)
		return
	}

	page := indexPage{Name: "ONG", Opportunities: opportunities, Posts: posts}
	if len(ngos) > 0 {
		page.Name = ngos[0].Name
		page.Mission = ngos[0].Mission
		page.Vision = ngos[0].Vision
		page.Contact = &ngos[0].Contact
	}
	money := message.NewPrinter(language.BrazilianPortuguese)
	for _, p := range projects {
		page.Projects = append(page.Projects, indexProject{
			Slug:     p.Slug,
			Title:    p.Title,
			Summary:  p.Summary,
			Category: p.Category,
			Raised:   money.Sprintf("R$ %.2f", p.RaisedAmount),
			Goal:     money.Sprintf("R$ %.2f", p.GoalAmount),
			Percent:  strconv.FormatFloat(p.Progress(), 'f', 1, 64),
		})
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, page); err != nil {
		a.internal(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
