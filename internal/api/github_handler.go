package api

import (
	"net/http"
	"strconv"

	"github.com/JemAndrew/JemAndrewWebsite/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// GitHubHandler serves the mirrored GitHub data. Responses always
// succeed; the service substitutes fallback payloads when the upstream
// API is unavailable.
type GitHubHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewGitHubHandler creates a new GitHubHandler
func NewGitHubHandler(services *service.Services, log zerolog.Logger) *GitHubHandler {
	return &GitHubHandler{
		services: services,
		log:      log.With().Str("handler", "github").Logger(),
	}
}

// Profile handles GET /v1/github/profile
func (h *GitHubHandler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.GitHub.UserProfile(c.Request.Context()))
}

// Repositories handles GET /v1/github/repos
func (h *GitHubHandler) Repositories(c *gin.Context) {
	limit := intQuery(c, "limit", 0)
	c.JSON(http.StatusOK, gin.H{
		"repositories": h.services.GitHub.Repositories(c.Request.Context(), limit),
	})
}

// Activity handles GET /v1/github/activity
func (h *GitHubHandler) Activity(c *gin.Context) {
	days := intQuery(c, "days", 30)
	c.JSON(http.StatusOK, gin.H{
		"activity": h.services.GitHub.CommitActivity(c.Request.Context(), days),
	})
}

// Calendar handles GET /v1/github/calendar
func (h *GitHubHandler) Calendar(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"calendar": h.services.GitHub.ContributionCalendar(c.Request.Context()),
	})
}

// Languages handles GET /v1/github/languages
func (h *GitHubHandler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"languages": h.services.GitHub.LanguageStats(c.Request.Context()),
	})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
