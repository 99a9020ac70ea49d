package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/outreach/internal/entities"
	"github.com/avolkov/outreach/internal/validation"
)

// CampaignStore is the persistence surface the campaign endpoints
// consume. Implemented by campaigns.Repository.
type CampaignStore interface {
	Create(userID, name, description string) (*entities.Campaign, error)
	List(userID string) ([]entities.Campaign, error)
}

type CampaignsController struct {
	store CampaignStore
}

func NewCampaignsController(store CampaignStore) *CampaignsController {
	return &CampaignsController{store: store}
}

type createCampaignRequest struct {
	UserID      string `json:"userId" validate:"required"`
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"max=500"`
}

// Create handles POST /api/campaigns. Constraint violations come back
// as a field-to-message map, not one aggregate error.
func (ctl *CampaignsController) Create(c *gin.Context) {
	var req createCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c)
		return
	}

	if problems := validation.Struct(req); len(problems) > 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Details: problems})
		return
	}

	campaign, err := ctl.store.Create(req.UserID, req.Name, req.Description)
	if err != nil {
		respondInternalError(c, err, "create campaign")
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

// List handles GET /api/campaigns?userId=...
func (ctl *CampaignsController) List(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		respondInvalidRequest(c)
		return
	}

	list, err := ctl.store.List(userID)
	if err != nil {
		respondInternalError(c, err, "list campaigns")
		return
	}
	c.JSON(http.StatusOK, list)
}
