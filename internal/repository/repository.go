package repository

import (
	"context"
	"errors"

	"github.com/JemAndrew/JemAndrewWebsite/internal/database"
	"github.com/JemAndrew/JemAndrewWebsite/internal/models"
)

// ErrSingletonExists is returned when a second insert is attempted on a
// singleton store (profile, site settings).
var ErrSingletonExists = errors.New("singleton record already exists")

// ProfileStore defines the interface for the profile singleton
type ProfileStore interface {
	Get(ctx context.Context) (*models.Profile, error)
	Save(ctx context.Context, profile *models.Profile) error
}

// SettingsStore defines the interface for the site settings singleton
type SettingsStore interface {
	Get(ctx context.Context) (*models.SiteSettings, error)
	Save(ctx context.Context, settings *models.SiteSettings) error
}

// EducationStore defines the interface for education records
type EducationStore interface {
	List(ctx context.Context) ([]models.Education, error)
	Create(ctx context.Context, education *models.Education) error
}

// ExperienceStore defines the interface for experience records
type ExperienceStore interface {
	List(ctx context.Context) ([]models.Experience, error)
	Create(ctx context.Context, experience *models.Experience) error
}

// ProjectStore defines the interface for project records
type ProjectStore interface {
	List(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, project *models.Project) error
}

// SkillStore defines the interface for skill records
type SkillStore interface {
	List(ctx context.Context) ([]models.Skill, error)
	Create(ctx context.Context, skill *models.Skill) error
}

// ContactStore defines the interface for contact messages.
// Sender-supplied fields are write-once: only the read/replied flags
// can change after Create.
type ContactStore interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	List(ctx context.Context) ([]models.ContactMessage, error)
	GetByID(ctx context.Context, id string) (*models.ContactMessage, error)
	MarkRead(ctx context.Context, id string) (bool, error)
	MarkReplied(ctx context.Context, id string) (bool, error)
}

// Stores holds all store interfaces
type Stores struct {
	Profile    ProfileStore
	Settings   SettingsStore
	Education  EducationStore
	Experience ExperienceStore
	Project    ProjectStore
	Skill      SkillStore
	Contact    ContactStore
}

// NewPostgres creates all stores backed by the given database connection
func NewPostgres(db *database.DB) *Stores {
	return &Stores{
		Profile:    NewProfileRepo(db),
		Settings:   NewSettingsRepo(db),
		Education:  NewEducationRepo(db),
		Experience: NewExperienceRepo(db),
		Project:    NewProjectRepo(db),
		Skill:      NewSkillRepo(db),
		Contact:    NewContactRepo(db),
	}
}
