package repo

import "ngoserver/internal/domain"

// DefaultSeed returns the demo dataset the API boots with.
func DefaultSeed() Seed {
	return Seed{
		NGOs: []domain.NGO{{
			ID:      1,
			Name:    "ONG Exemplo",
			Mission: "Promover bem-estar e acesso a água potável.",
			Vision:  "Comunidades saudáveis e sustentáveis.",
			Contact: domain.Contact{Email: "contato@ongexemplo.org", Phone: "+55 11 99999-0000"},
			Reports: []domain.Report{{ID: "r1", Title: "Relatório Anual 2024", URL: "#"}},
		}},
		Projects: []domain.Project{
			{
				ID:           1,
				Slug:         "agua-viva",
				Title:        "Projeto Água Viva",
				Summary:      "Fornecer água potável para comunidades rurais.",
				Description:  "Projeto de construção de poços e educação sanitária.",
				GoalAmount:   30000,
				RaisedAmount: 12500,
				Category:     "Saneamento",
				Media:        []domain.Media{{URL: "/assets/proj1-1.jpg", Alt: "Distribuição de água"}},
			},
			{
				ID:           2,
				Slug:         "educar-para-o-futuro",
				Title:        "Educar para o Futuro",
				Summary:      "Projetos educativos para crianças e jovens.",
				Description:  "Aulas, materiais e reforço escolar.",
				GoalAmount:   20000,
				RaisedAmount: 5200,
				Category:     "Educação",
				Media:        []domain.Media{},
			},
		},
		Opportunities: []domain.Opportunity{
			{ID: 1, ProjectID: 1, Title: "Voluntário para obras", Requirements: "Maior de 18 anos, disponibilidade 4h/semana", Slots: 10, StartDate: "2025-01-05"},
			{ID: 2, ProjectID: 2, Title: "Monitor de reforço escolar", Requirements: "Formação em pedagogia ou experiência com ensino", Slots: 5, StartDate: "2025-02-01"},
		},
		Posts: []domain.Post{
			{ID: 1, Title: "Inauguração do poço no Assentamento X", Slug: "inauguracao-poço", Excerpt: "Entrega de água potável...", Content: "Conteúdo do post..."},
		},
	}
}
