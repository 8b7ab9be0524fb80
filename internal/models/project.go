package models

import (
	"time"
)

// ProjectCategory classifies how a project came about
type ProjectCategory string

const (
	CategoryAcademic     ProjectCategory = "academic"
	CategoryPersonal     ProjectCategory = "personal"
	CategoryProfessional ProjectCategory = "professional"
	CategoryOpenSource   ProjectCategory = "open_source"
)

// ValidProjectCategories defines allowed project categories
var ValidProjectCategories = map[ProjectCategory]bool{
	CategoryAcademic:     true,
	CategoryPersonal:     true,
	CategoryProfessional: true,
	CategoryOpenSource:   true,
}

// ProjectStatus tracks where a project is in its lifecycle
type ProjectStatus string

const (
	StatusCompleted  ProjectStatus = "completed"
	StatusInProgress ProjectStatus = "in_progress"
	StatusPlanned    ProjectStatus = "planned"
	StatusArchived   ProjectStatus = "archived"
)

// ValidProjectStatuses defines allowed project statuses
var ValidProjectStatuses = map[ProjectStatus]bool{
	StatusCompleted:  true,
	StatusInProgress: true,
	StatusPlanned:    true,
	StatusArchived:   true,
}

// Project represents a portfolio project
type Project struct {
	ID                  int64           `json:"id" db:"id"`
	Title               string          `json:"title" db:"title"`
	ShortDescription    string          `json:"short_description" db:"short_description"`
	DetailedDescription string          `json:"detailed_description" db:"detailed_description"`
	Category            ProjectCategory `json:"category" db:"category"`
	Status              ProjectStatus   `json:"status" db:"status"`
	Technologies        string          `json:"-" db:"technologies"` // comma-separated
	GitHubURL           string          `json:"github_url,omitempty" db:"github_url"`
	LiveDemoURL         string          `json:"live_demo_url,omitempty" db:"live_demo_url"`
	Image               string          `json:"image,omitempty" db:"image"`
	CreatedDate         time.Time       `json:"created_date" db:"created_date"`
	Featured            bool            `json:"featured" db:"featured"`
	DisplayOrder        int             `json:"display_order" db:"display_order"`
}

// ProjectView is a project with derived fields for rendering
type ProjectView struct {
	Project
	TechnologyList []string `json:"technologies"`
}
