package service

import (
	"context"

	"github.com/JemAndrew/JemAndrewWebsite/internal/config"
	"github.com/JemAndrew/JemAndrewWebsite/internal/models"
	"github.com/JemAndrew/JemAndrewWebsite/internal/repository"
	"github.com/rs/zerolog"
)

// ContentService builds render-ready view models from raw records.
// All operations are read-only over the record store.
type ContentService interface {
	BuildProfile(ctx context.Context) (*models.ProfileView, error)
	SiteConfig(ctx context.Context) (*models.SiteSettings, error)
	BuildEducationList(ctx context.Context) ([]models.EducationView, error)
	BuildExperienceList(ctx context.Context) ([]models.ExperienceView, error)
	CurrentExperience(ctx context.Context) ([]models.ExperienceView, error)
	CurrentPrimary(ctx context.Context) (*models.ExperienceView, error)
	BuildProjectList(ctx context.Context) ([]models.ProjectView, error)
	ProjectByID(ctx context.Context, id int64) (*models.ProjectView, error)
	FeaturedProjects(ctx context.Context, limit int) ([]models.ProjectView, error)
	ProjectsFiltered(ctx context.Context, category, status, search string) ([]models.ProjectView, error)
	BuildSkillsByCategory(ctx context.Context) ([]models.SkillCategoryView, error)
}

// ContactService handles contact form intake and the admin message flow.
// Submit returns a non-nil error only for internal failures; rejections
// (spam, validation) come back as an unsuccessful response with nil error.
type ContactService interface {
	Submit(ctx context.Context, req *models.ContactRequest) (*models.ContactResponse, error)
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
	MarkRead(ctx context.Context, id string) (bool, error)
	MarkReplied(ctx context.Context, id string) (bool, error)
}

// GitHubService mirrors GitHub activity through a time-expiring cache
type GitHubService interface {
	UserProfile(ctx context.Context) *models.GitHubProfile
	Repositories(ctx context.Context, limit int) []models.GitHubRepo
	CommitActivity(ctx context.Context, days int) map[string]int
	ContributionCalendar(ctx context.Context) []models.ContributionDay
	LanguageStats(ctx context.Context) map[string]float64
}

// Services holds all service interfaces
type Services struct {
	Content ContentService
	Contact ContactService
	GitHub  GitHubService
}

// NewServices creates all services over the given record stores
func NewServices(stores *repository.Stores, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Content: newContentService(stores, log),
		Contact: newContactService(stores.Contact, newSMTPMailer(&cfg.Contact, log), &cfg.Contact, log),
		GitHub:  newGitHubService(&cfg.GitHub, log),
	}
}
