package repository

import (
	"context"
	"database/sql"

	"github.com/JemAndrew/JemAndrewWebsite/internal/database"
	"github.com/JemAndrew/JemAndrewWebsite/internal/models"
)

// contactRepo is the concrete implementation of ContactStore
type contactRepo struct {
	db *database.DB
}

// NewContactRepo creates a new contact message repository
func NewContactRepo(db *database.DB) ContactStore {
	return &contactRepo{db: db}
}

// Create inserts a new contact message
func (r *contactRepo) Create(ctx context.Context, msg *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, created_at, is_read, replied)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message,
		msg.CreatedAt, msg.IsRead, msg.Replied,
	)
	return err
}

// List retrieves all contact messages, newest first
func (r *contactRepo) List(ctx context.Context) ([]models.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, created_at, is_read, replied
		FROM contact_messages ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.ContactMessage
	for rows.Next() {
		var m models.ContactMessage
		err := rows.Scan(
			&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message,
			&m.CreatedAt, &m.IsRead, &m.Replied,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// GetByID retrieves a contact message by ID
func (r *contactRepo) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, created_at, is_read, replied
		FROM contact_messages WHERE id = $1
	`

	var m models.ContactMessage
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message,
		&m.CreatedAt, &m.IsRead, &m.Replied,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// MarkRead sets the read flag; returns false when the message does not exist
func (r *contactRepo) MarkRead(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "UPDATE contact_messages SET is_read = TRUE WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

// MarkReplied sets the replied flag; returns false when the message does not exist
func (r *contactRepo) MarkReplied(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "UPDATE contact_messages SET replied = TRUE WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}
