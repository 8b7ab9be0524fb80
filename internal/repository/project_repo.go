package repository

import (
	"context"

	"github.com/JemAndrew/JemAndrewWebsite/internal/database"
	"github.com/JemAndrew/JemAndrewWebsite/internal/models"
)

// projectRepo is the concrete implementation of ProjectStore
type projectRepo struct {
	db *database.DB
}

// NewProjectRepo creates a new project repository
func NewProjectRepo(db *database.DB) ProjectStore {
	return &projectRepo{db: db}
}

// List retrieves all project records
func (r *projectRepo) List(ctx context.Context) ([]models.Project, error) {
	query := `
		SELECT id, title, short_description, detailed_description, category, status,
		       technologies, github_url, live_demo_url, image, created_date, featured, display_order
		FROM projects
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Project
	for rows.Next() {
		var p models.Project
		err := rows.Scan(
			&p.ID, &p.Title, &p.ShortDescription, &p.DetailedDescription,
			&p.Category, &p.Status, &p.Technologies, &p.GitHubURL,
			&p.LiveDemoURL, &p.Image, &p.CreatedDate, &p.Featured, &p.DisplayOrder,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

// Create inserts a new project record
func (r *projectRepo) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (title, short_description, detailed_description, category, status,
		                      technologies, github_url, live_demo_url, image, created_date,
		                      featured, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		project.Title, project.ShortDescription, project.DetailedDescription,
		project.Category, project.Status, project.Technologies, project.GitHubURL,
		project.LiveDemoURL, project.Image, project.CreatedDate,
		project.Featured, project.DisplayOrder,
	).Scan(&project.ID)
}

// skillRepo is the concrete implementation of SkillStore
type skillRepo struct {
	db *database.DB
}

// NewSkillRepo creates a new skill repository
func NewSkillRepo(db *database.DB) SkillStore {
	return &skillRepo{db: db}
}

// List retrieves all skill records
func (r *skillRepo) List(ctx context.Context) ([]models.Skill, error) {
	query := `
		SELECT id, name, category, proficiency, years_experience, description,
		       icon_class, color, display_order
		FROM skills
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Skill
	for rows.Next() {
		var s models.Skill
		err := rows.Scan(
			&s.ID, &s.Name, &s.Category, &s.Proficiency, &s.YearsExperience,
			&s.Description, &s.IconClass, &s.Color, &s.DisplayOrder,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, s)
	}
	return records, rows.Err()
}

// Create inserts a new skill record
func (r *skillRepo) Create(ctx context.Context, skill *models.Skill) error {
	query := `
		INSERT INTO skills (name, category, proficiency, years_experience, description,
		                    icon_class, color, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		skill.Name, skill.Category, skill.Proficiency, skill.YearsExperience,
		skill.Description, skill.IconClass, skill.Color, skill.DisplayOrder,
	).Scan(&skill.ID)
}
