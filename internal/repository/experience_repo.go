package repository

import (
	"context"
	"database/sql"

	"github.com/JemAndrew/JemAndrewWebsite/internal/database"
	"github.com/JemAndrew/JemAndrewWebsite/internal/models"
)

// experienceRepo is the concrete implementation of ExperienceStore
type experienceRepo struct {
	db *database.DB
}

// NewExperienceRepo creates a new experience repository
func NewExperienceRepo(db *database.DB) ExperienceStore {
	return &experienceRepo{db: db}
}

// List retrieves all experience records
func (r *experienceRepo) List(ctx context.Context) ([]models.Experience, error) {
	query := `
		SELECT id, company, position, location, start_date, end_date, description,
		       skills, is_current, is_primary_focus, display_order
		FROM experience
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Experience
	for rows.Next() {
		var e models.Experience
		var endDate sql.NullTime

		err := rows.Scan(
			&e.ID, &e.Company, &e.Position, &e.Location, &e.StartDate, &endDate,
			&e.Description, &e.Skills, &e.IsCurrent, &e.IsPrimaryFocus, &e.DisplayOrder,
		)
		if err != nil {
			return nil, err
		}

		if endDate.Valid {
			e.EndDate = &endDate.Time
		}
		records = append(records, e)
	}
	return records, rows.Err()
}

// Create inserts a new experience record
func (r *experienceRepo) Create(ctx context.Context, experience *models.Experience) error {
	query := `
		INSERT INTO experience (company, position, location, start_date, end_date,
		                        description, skills, is_current, is_primary_focus, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		experience.Company, experience.Position, experience.Location,
		experience.StartDate, experience.EndDate, experience.Description,
		experience.Skills, experience.IsCurrent, experience.IsPrimaryFocus,
		experience.DisplayOrder,
	).Scan(&experience.ID)
}
