package models

import (
	"time"
)

// Experience represents a work position
type Experience struct {
	ID             int64      `json:"id" db:"id"`
	Company        string     `json:"company" db:"company"`
	Position       string     `json:"position" db:"position"`
	Location       string     `json:"location,omitempty" db:"location"`
	StartDate      time.Time  `json:"start_date" db:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty" db:"end_date"`
	Description    string     `json:"description" db:"description"`
	Skills         string     `json:"-" db:"skills"` // comma-separated
	IsCurrent      bool       `json:"is_current" db:"is_current"`
	IsPrimaryFocus bool       `json:"is_primary_focus" db:"is_primary_focus"`
	DisplayOrder   int        `json:"display_order" db:"display_order"`
}

// ExperienceView is a work position with derived fields for rendering
type ExperienceView struct {
	Experience
	SkillList       []string `json:"skills"`
	DurationDisplay string   `json:"duration_display"`
}
