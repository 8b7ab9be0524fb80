package models

// SkillCategory groups related skills
type SkillCategory string

const (
	SkillProgramming SkillCategory = "programming"
	SkillFramework   SkillCategory = "framework"
	SkillDatabase    SkillCategory = "database"
	SkillTool        SkillCategory = "tool"
	SkillSecurity    SkillCategory = "security"
	SkillSoft        SkillCategory = "soft_skill"
	SkillMethodology SkillCategory = "methodology"
)

// SkillCategoryOrder fixes the display order of skill categories
var SkillCategoryOrder = []SkillCategory{
	SkillProgramming,
	SkillFramework,
	SkillDatabase,
	SkillTool,
	SkillSecurity,
	SkillSoft,
	SkillMethodology,
}

// SkillCategoryNames maps categories to their display names
var SkillCategoryNames = map[SkillCategory]string{
	SkillProgramming: "Programming Languages",
	SkillFramework:   "Frameworks & Libraries",
	SkillDatabase:    "Databases",
	SkillTool:        "Tools & Technologies",
	SkillSecurity:    "Cybersecurity",
	SkillSoft:        "Soft Skills",
	SkillMethodology: "Methodologies",
}

// ValidSkillCategories defines allowed skill categories
var ValidSkillCategories = map[SkillCategory]bool{
	SkillProgramming: true,
	SkillFramework:   true,
	SkillDatabase:    true,
	SkillTool:        true,
	SkillSecurity:    true,
	SkillSoft:        true,
	SkillMethodology: true,
}

// ProficiencyLabels maps the 1-5 proficiency scale to text labels.
// Index 0 is unused so proficiency values index directly.
var ProficiencyLabels = [6]string{"", "Beginner", "Novice", "Intermediate", "Advanced", "Expert"}

// Skill represents a technical skill
type Skill struct {
	ID              int64         `json:"id" db:"id"`
	Name            string        `json:"name" db:"name"`
	Category        SkillCategory `json:"category" db:"category"`
	Proficiency     int           `json:"proficiency" db:"proficiency"` // 1-5
	YearsExperience float64       `json:"years_experience" db:"years_experience"`
	Description     string        `json:"description" db:"description"`
	IconClass       string        `json:"icon_class,omitempty" db:"icon_class"`
	Color           string        `json:"color,omitempty" db:"color"`
	DisplayOrder    int           `json:"display_order" db:"display_order"`
}

// SkillView is a skill with derived fields for rendering
type SkillView struct {
	Skill
	ProficiencyPercentage int    `json:"proficiency_percentage"`
	ProficiencyLabel      string `json:"proficiency_label"`
	CategoryKey           string `json:"category_key"`
}

// SkillCategoryView is one category grouping of skills for rendering
type SkillCategoryView struct {
	Name   string      `json:"name"`
	Key    string      `json:"key"`
	Skills []SkillView `json:"skills"`
}
