package view

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer executes the embedded server-side views. Templates are parsed once
// at startup; a missing template is a programming error surfaced at boot.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) Render(w http.ResponseWriter, name string, data any) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return r.templates.ExecuteTemplate(w, name, data)
}

// LoginData feeds login.html.
type LoginData struct {
	Message string
}

// FormData feeds employee_kyc_detail.html.
type FormData struct {
	Message      string
	EmployeeCode string
	Name         string
}

// Row is a label/value pair on the user dashboard.
type Row struct {
	Label string
	Value string
}

// RowSection groups dashboard rows under a heading.
type RowSection struct {
	Title string
	Rows  []Row
}

// UserDashboardData feeds user-dashboard.html.
type UserDashboardData struct {
	Name         string
	EmployeeCode string
	Sections     []RowSection
}

// AdminRow is one employee line on the admin dashboard.
type AdminRow struct {
	EmployeeCode  string
	Name          string
	Department    string
	Designation   string
	PANNumber     string
	DateOfJoining string
	SubmittedAt   string
}

// AdminDashboardData feeds admin-dashboard.html.
type AdminDashboardData struct {
	Records []AdminRow
}

// ThankYouData feeds thank-you.html.
type ThankYouData struct {
	Message string
}
