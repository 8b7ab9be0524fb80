package repository

import (
	"context"
	"database/sql"

	"github.com/JemAndrew/JemAndrewWebsite/internal/database"
	"github.com/JemAndrew/JemAndrewWebsite/internal/models"
)

// educationRepo is the concrete implementation of EducationStore
type educationRepo struct {
	db *database.DB
}

// NewEducationRepo creates a new education repository
func NewEducationRepo(db *database.DB) EducationStore {
	return &educationRepo{db: db}
}

// List retrieves all education records
func (r *educationRepo) List(ctx context.Context) ([]models.Education, error) {
	query := `
		SELECT id, institution, degree_type, subject, grade, start_date, end_date,
		       description, technologies, is_current, display_order
		FROM education
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Education
	for rows.Next() {
		var e models.Education
		var endDate sql.NullTime

		err := rows.Scan(
			&e.ID, &e.Institution, &e.DegreeType, &e.Subject, &e.Grade,
			&e.StartDate, &endDate, &e.Description, &e.Technologies,
			&e.IsCurrent, &e.DisplayOrder,
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

// Create inserts a new education record
func (r *educationRepo) Create(ctx context.Context, education *models.Education) error {
	query := `
		INSERT INTO education (institution, degree_type, subject, grade, start_date, end_date,
		                       description, technologies, is_current, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		education.Institution, education.DegreeType, education.Subject, education.Grade,
		education.StartDate, education.EndDate, education.Description,
		education.Technologies, education.IsCurrent, education.DisplayOrder,
	).Scan(&education.ID)
}
