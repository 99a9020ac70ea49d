package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/outreach/internal/audit"
	"github.com/avolkov/outreach/internal/database"
	"github.com/avolkov/outreach/internal/importers"
)

// RouterConfig receives all router dependencies, improving testability
// and reducing parameter count.
type RouterConfig struct {
	Database      *database.Database
	ContactStore  ContactStore
	CampaignStore CampaignStore
	Pipeline      *importers.Pipeline
	Audit         *audit.Service
	Version       string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	// Per-record import failures never reach here; recovery only
	// catches infrastructure-level faults escaping a handler.
	router.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}))
	router.Use(CORSMiddleware())

	// Unknown /api/ paths get the JSON 404 the API contract fixes.
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, apiPrefix) {
			respondNotFound(c)
			return
		}
		c.Status(http.StatusNotFound)
	})

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Import endpoints
	importController := NewImportController(cfg.Pipeline, cfg.Audit)
	router.POST("/api/contacts/import", importController.ImportJSON)
	router.POST("/api/contacts/import/file", importController.ImportFile)
	router.GET("/api/contacts/template", importController.Template)

	// Contact management endpoints
	if cfg.ContactStore != nil {
		contactsController := NewContactsController(cfg.ContactStore)
		router.GET("/api/contacts", contactsController.List)
		router.PUT("/api/contacts/:id", contactsController.Update)
		router.DELETE("/api/contacts", contactsController.Delete)
		router.POST("/api/contacts/:id/notes", contactsController.AddNote)
		router.POST("/api/contacts/bulk/tags", contactsController.BulkAddTags)
		router.POST("/api/contacts/bulk/segment", contactsController.BulkAssignSegment)
	}

	// Campaign endpoints
	if cfg.CampaignStore != nil {
		campaignsController := NewCampaignsController(cfg.CampaignStore)
		router.POST("/api/campaigns", campaignsController.Create)
		router.GET("/api/campaigns", campaignsController.List)
	}

	return router
}
