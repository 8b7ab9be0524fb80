package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/JemAndrew/JemAndrewWebsite/internal/config"
	"github.com/JemAndrew/JemAndrewWebsite/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const defaultCVFilename = "Jem_Andrew_CV.pdf"

// dissertationFiles maps a degree type to its storage filename and the
// filename offered to the browser.
var dissertationFiles = map[string][2]string{
	"msc": {"msc_dissertation.pdf", "Jem_Andrew_MSc_Dissertation.pdf"},
	"bsc": {"bsc_dissertation.pdf", "Jem_Andrew_BSc_Dissertation.pdf"},
}

// FilesHandler serves document downloads from the configured documents
// directory.
type FilesHandler struct {
	services *service.Services
	cfg      *config.FilesConfig
	log      zerolog.Logger
}

// NewFilesHandler creates a new FilesHandler
func NewFilesHandler(services *service.Services, cfg *config.FilesConfig, log zerolog.Logger) *FilesHandler {
	return &FilesHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "files").Logger(),
	}
}

// CV handles GET /v1/files/cv. The stored filename comes from the
// profile when one is set, otherwise the default CV file is used.
func (h *FilesHandler) CV(c *gin.Context) {
	storageName := defaultCVFilename
	profile, err := h.services.Content.BuildProfile(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load profile for CV download")
	} else if profile.CVFile != "" {
		storageName = filepath.Base(profile.CVFile)
	}
	h.serveDocument(c, storageName, defaultCVFilename)
}

// Dissertation handles GET /v1/files/dissertation/:degree for the
// degree types that have a dissertation on file.
func (h *FilesHandler) Dissertation(c *gin.Context) {
	degree := c.Param("degree")
	files, ok := dissertationFiles[degree]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "invalid dissertation type"})
		return
	}
	h.serveDocument(c, files[0], files[1])
}

func (h *FilesHandler) serveDocument(c *gin.Context, storageName, downloadName string) {
	path := filepath.Join(h.cfg.DocumentsDir, filepath.Base(storageName))
	if _, err := os.Stat(path); err != nil {
		h.log.Warn().Str("path", path).Msg("Requested document not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "file not available"})
		return
	}
	c.FileAttachment(path, downloadName)
}
