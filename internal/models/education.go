package models

import (
	"time"
)

// DegreeType categorizes an education record
type DegreeType string

const (
	DegreeMSc           DegreeType = "msc"
	DegreeBSc           DegreeType = "bsc"
	DegreeALevel        DegreeType = "a_level"
	DegreeGCSE          DegreeType = "gcse"
	DegreeCertification DegreeType = "certification"
	DegreeCourse        DegreeType = "course"
)

// ValidDegreeTypes defines allowed degree types
var ValidDegreeTypes = map[DegreeType]bool{
	DegreeMSc:           true,
	DegreeBSc:           true,
	DegreeALevel:        true,
	DegreeGCSE:          true,
	DegreeCertification: true,
	DegreeCourse:        true,
}

// Education represents an educational qualification
type Education struct {
	ID           int64      `json:"id" db:"id"`
	Institution  string     `json:"institution" db:"institution"`
	DegreeType   DegreeType `json:"degree_type" db:"degree_type"`
	Subject      string     `json:"subject" db:"subject"`
	Grade        string     `json:"grade,omitempty" db:"grade"`
	StartDate    time.Time  `json:"start_date" db:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty" db:"end_date"`
	Description  string     `json:"description" db:"description"`
	Technologies string     `json:"-" db:"technologies"` // comma-separated
	IsCurrent    bool       `json:"is_current" db:"is_current"`
	DisplayOrder int        `json:"display_order" db:"display_order"`
}

// EducationView is an education record with derived fields for rendering
type EducationView struct {
	Education
	TechnologyList []string `json:"technologies"`
	DurationYears  float64  `json:"duration_years"`
}
