package api

import (
	"net/http"
	"strconv"

	"github.com/JemAndrew/JemAndrewWebsite/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ContentHandler serves the page payload and flat view endpoints
type ContentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(services *service.Services, log zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		services: services,
		log:      log.With().Str("handler", "content").Logger(),
	}
}

// HomePage handles GET /v1/pages/home
func (h *ContentHandler) HomePage(c *gin.Context) {
	ctx := c.Request.Context()
	content := h.services.Content

	profile, err := content.BuildProfile(ctx)
	if err != nil {
		h.fail(c, err, "Failed to build profile")
		return
	}
	settings, err := content.SiteConfig(ctx)
	if err != nil {
		h.fail(c, err, "Failed to load site settings")
		return
	}
	currentPositions, err := content.CurrentExperience(ctx)
	if err != nil {
		h.fail(c, err, "Failed to build current experience")
		return
	}
	currentPrimary, err := content.CurrentPrimary(ctx)
	if err != nil {
		h.fail(c, err, "Failed to select primary position")
		return
	}
	featured, err := content.FeaturedProjects(ctx, service.DefaultFeaturedLimit)
	if err != nil {
		h.fail(c, err, "Failed to build featured projects")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":           profile,
		"site_settings":     settings,
		"current_positions": currentPositions,
		"current_primary":   currentPrimary,
		"featured_projects": featured,
	})
}

// AboutPage handles GET /v1/pages/about
func (h *ContentHandler) AboutPage(c *gin.Context) {
	ctx := c.Request.Context()
	content := h.services.Content

	profile, err := content.BuildProfile(ctx)
	if err != nil {
		h.fail(c, err, "Failed to build profile")
		return
	}
	settings, err := content.SiteConfig(ctx)
	if err != nil {
		h.fail(c, err, "Failed to load site settings")
		return
	}
	currentPositions, err := content.CurrentExperience(ctx)
	if err != nil {
		h.fail(c, err, "Failed to build current experience")
		return
	}
	skills, err := content.BuildSkillsByCategory(ctx)
	if err != nil {
		h.fail(c, err, "Failed to build skills")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":           profile,
		"site_settings":     settings,
		"current_positions": currentPositions,
		"skills":            skills,
	})
}

// ExperiencePage handles GET /v1/pages/experience: the full work
// history, past positions included
func (h *ContentHandler) ExperiencePage(c *gin.Context) {
	experience, err := h.services.Content.BuildExperienceList(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to build experience list")
		return
	}
	c.JSON(http.StatusOK, gin.H{"experience": experience})
}

// EducationPage handles GET /v1/pages/education
func (h *ContentHandler) EducationPage(c *gin.Context) {
	education, err := h.services.Content.BuildEducationList(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to build education list")
		return
	}
	c.JSON(http.StatusOK, gin.H{"education": education})
}

// ProjectsPage handles GET /v1/pages/projects with optional
// category, status and search query parameters
func (h *ContentHandler) ProjectsPage(c *gin.Context) {
	projects, err := h.services.Content.ProjectsFiltered(
		c.Request.Context(),
		c.Query("category"),
		c.Query("status"),
		c.Query("search"),
	)
	if err != nil {
		h.fail(c, err, "Failed to build project list")
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// ProjectDetailPage handles GET /v1/pages/projects/:id
func (h *ContentHandler) ProjectDetailPage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	project, err := h.services.Content.ProjectByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to load project")
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

// SkillsPage handles GET /v1/pages/skills
func (h *ContentHandler) SkillsPage(c *gin.Context) {
	skills, err := h.services.Content.BuildSkillsByCategory(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to build skills")
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

// SkillsJSON handles GET /v1/skills: a flat array of skill view models
func (h *ContentHandler) SkillsJSON(c *gin.Context) {
	grouped, err := h.services.Content.BuildSkillsByCategory(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to build skills")
		return
	}

	flat := make([]gin.H, 0)
	for _, category := range grouped {
		for _, skill := range category.Skills {
			flat = append(flat, gin.H{
				"name":        skill.Name,
				"category":    category.Name,
				"proficiency": skill.ProficiencyPercentage,
				"experience":  skill.YearsExperience,
			})
		}
	}
	c.JSON(http.StatusOK, gin.H{"skills": flat})
}

// ProjectsJSON handles GET /v1/projects: a flat array of project view models
func (h *ContentHandler) ProjectsJSON(c *gin.Context) {
	projects, err := h.services.Content.BuildProjectList(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to build project list")
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *ContentHandler) fail(c *gin.Context, err error, msg string) {
	h.log.Error().Err(err).Msg(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load content"})
}
