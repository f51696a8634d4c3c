package domain

// NGO is the organisation profile served by the platform.
type NGO struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Mission string   `json:"mission"`
	Vision  string   `json:"vision"`
	Contact Contact  `json:"contact"`
	Reports []Report `json:"reports"`
}

type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Report references a published transparency document.
type Report struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}
