package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/outreach/internal/audit"
	"github.com/avolkov/outreach/internal/importers"
	"github.com/avolkov/outreach/internal/utils"
)

// ImportController serves the contact import endpoints: the JSON body
// path, the file upload path, and the template download.
type ImportController struct {
	pipeline *importers.Pipeline
	audit    *audit.Service
}

func NewImportController(pipeline *importers.Pipeline, auditService *audit.Service) *ImportController {
	return &ImportController{
		pipeline: pipeline,
		audit:    auditService,
	}
}

type importContactsRequest struct {
	UserID   string                    `json:"userId"`
	Contacts []importers.ContactRecord `json:"contacts"`
}

// ImportJSON handles POST /api/contacts/import: a userId plus a
// sequence of contact-shaped objects, already parsed by the caller.
// Rejects with 400 when userId is missing or contacts is not a
// sequence; otherwise delegates to the batch importer and returns the
// aggregate counters.
func (ctl *ImportController) ImportJSON(c *gin.Context) {
	var req importContactsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c)
		return
	}
	// A null or absent contacts field is not a sequence. An explicit
	// empty array is, and yields a zero/zero result.
	if req.UserID == "" || req.Contacts == nil {
		respondInvalidRequest(c)
		return
	}

	result := ctl.pipeline.Import(req.UserID, req.Contacts)

	if ctl.audit != nil {
		ctl.audit.LogImport(req.UserID, "json", "", result.Success, result.Failed, nil)
	}

	c.JSON(http.StatusOK, result)
}

// ImportFile handles POST /api/contacts/import/file: a multipart
// upload validated for extension and size before any parsing.
func (ctl *ImportController) ImportFile(c *gin.Context) {
	userID := c.PostForm("userId")
	if userID == "" {
		respondInvalidRequest(c)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondBadRequest(c, "No import file provided")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondInternalError(c, err, "open upload")
		return
	}
	defer file.Close()

	result, err := ctl.pipeline.ImportFile(userID, fileHeader.Filename, file, fileHeader.Size)
	source := strings.TrimPrefix(utils.ImportExtension(fileHeader.Filename), ".")
	if err != nil {
		if ctl.audit != nil {
			ctl.audit.LogImport(userID, source, fileHeader.Filename, 0, 0, err)
		}
		// Validation and parse failures are the caller's to fix; the
		// batch never started and zero records were attempted.
		respondBadRequest(c, err.Error())
		return
	}

	if ctl.audit != nil {
		ctl.audit.LogImport(userID, source, fileHeader.Filename, result.Success, result.Failed, nil)
	}

	c.JSON(http.StatusOK, result)
}

// Template handles GET /api/contacts/template: the downloadable import
// template whose sample row round-trips through the pipeline.
func (ctl *ImportController) Template(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="`+importers.TemplateFilename+`"`)
	c.Data(http.StatusOK, "text/csv", []byte(importers.TemplateCSV()))
}
