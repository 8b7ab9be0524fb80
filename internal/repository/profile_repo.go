package repository

import (
	"context"
	"database/sql"

	"github.com/JemAndrew/JemAndrewWebsite/internal/database"
	"github.com/JemAndrew/JemAndrewWebsite/internal/models"
)

// profileRepo is the concrete implementation of ProfileStore
type profileRepo struct {
	db *database.DB
}

// NewProfileRepo creates a new profile repository
func NewProfileRepo(db *database.DB) ProfileStore {
	return &profileRepo{db: db}
}

// Get retrieves the profile singleton, or nil when none is stored
func (r *profileRepo) Get(ctx context.Context) (*models.Profile, error) {
	query := `
		SELECT id, name, title, email, phone, location, bio, extended_bio,
		       typing_texts, profile_image, cv_file, github_url, linkedin_url
		FROM profile LIMIT 1
	`

	var p models.Profile
	err := r.db.QueryRowContext(ctx, query).Scan(
		&p.ID, &p.Name, &p.Title, &p.Email, &p.Phone, &p.Location,
		&p.Bio, &p.ExtendedBio, &p.TypingTexts, &p.ProfileImage,
		&p.CVFile, &p.GitHubURL, &p.LinkedInURL,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Save inserts the profile, or updates the existing row when the ID is set.
// Inserting while a row already exists returns ErrSingletonExists.
func (r *profileRepo) Save(ctx context.Context, profile *models.Profile) error {
	if profile.ID == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM profile)").Scan(&exists); err != nil {
			return err
		}
		if exists {
			return ErrSingletonExists
		}

		query := `
			INSERT INTO profile (name, title, email, phone, location, bio, extended_bio,
			                     typing_texts, profile_image, cv_file, github_url, linkedin_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id
		`
		return r.db.QueryRowContext(ctx, query,
			profile.Name, profile.Title, profile.Email, profile.Phone, profile.Location,
			profile.Bio, profile.ExtendedBio, profile.TypingTexts, profile.ProfileImage,
			profile.CVFile, profile.GitHubURL, profile.LinkedInURL,
		).Scan(&profile.ID)
	}

	query := `
		UPDATE profile SET name = $1, title = $2, email = $3, phone = $4, location = $5,
		       bio = $6, extended_bio = $7, typing_texts = $8, profile_image = $9,
		       cv_file = $10, github_url = $11, linkedin_url = $12
		WHERE id = $13
	`
	_, err := r.db.ExecContext(ctx, query,
		profile.Name, profile.Title, profile.Email, profile.Phone, profile.Location,
		profile.Bio, profile.ExtendedBio, profile.TypingTexts, profile.ProfileImage,
		profile.CVFile, profile.GitHubURL, profile.LinkedInURL, profile.ID,
	)
	return err
}

// settingsRepo is the concrete implementation of SettingsStore
type settingsRepo struct {
	db *database.DB
}

// NewSettingsRepo creates a new site settings repository
func NewSettingsRepo(db *database.DB) SettingsStore {
	return &settingsRepo{db: db}
}

// Get retrieves the site settings singleton, or nil when none is stored
func (r *settingsRepo) Get(ctx context.Context) (*models.SiteSettings, error) {
	query := `
		SELECT id, site_title, site_description, theme_color, enable_dark_mode, analytics_id
		FROM site_settings LIMIT 1
	`

	var s models.SiteSettings
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.ID, &s.SiteTitle, &s.SiteDescription, &s.ThemeColor,
		&s.EnableDarkMode, &s.AnalyticsID,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Save inserts the settings, or updates the existing row when the ID is set.
// Inserting while a row already exists returns ErrSingletonExists.
func (r *settingsRepo) Save(ctx context.Context, settings *models.SiteSettings) error {
	if settings.ID == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM site_settings)").Scan(&exists); err != nil {
			return err
		}
		if exists {
			return ErrSingletonExists
		}

		query := `
			INSERT INTO site_settings (site_title, site_description, theme_color, enable_dark_mode, analytics_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		return r.db.QueryRowContext(ctx, query,
			settings.SiteTitle, settings.SiteDescription, settings.ThemeColor,
			settings.EnableDarkMode, settings.AnalyticsID,
		).Scan(&settings.ID)
	}

	query := `
		UPDATE site_settings SET site_title = $1, site_description = $2, theme_color = $3,
		       enable_dark_mode = $4, analytics_id = $5
		WHERE id = $6
	`
	_, err := r.db.ExecContext(ctx, query,
		settings.SiteTitle, settings.SiteDescription, settings.ThemeColor,
		settings.EnableDarkMode, settings.AnalyticsID, settings.ID,
	)
	return err
}
