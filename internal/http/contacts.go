package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/avolkov/outreach/internal/database/contacts"
	"github.com/avolkov/outreach/internal/entities"
)

// ContactStore is the owner-scoped persistence surface the contact
// endpoints consume. Implemented by contacts.Repository.
type ContactStore interface {
	List(userID string) ([]entities.Contact, error)
	Update(userID string, contactID uint, update contacts.ContactUpdate) (*entities.Contact, error)
	Delete(userID string, contactIDs []uint) (int64, error)
	AddNote(userID string, contactID uint, content string) (*entities.Note, error)
	AddTags(userID string, contactIDs []uint, tags []string) (int64, error)
	AssignSegment(userID string, contactIDs []uint, segment string) (int64, error)
}

type ContactsController struct {
	store ContactStore
}

func NewContactsController(store ContactStore) *ContactsController {
	return &ContactsController{store: store}
}

// List handles GET /api/contacts?userId=...
func (ctl *ContactsController) List(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		respondInvalidRequest(c)
		return
	}

	list, err := ctl.store.List(userID)
	if err != nil {
		respondInternalError(c, err, "list contacts")
		return
	}
	c.JSON(http.StatusOK, list)
}

type updateContactRequest struct {
	UserID string `json:"userId"`
	contacts.ContactUpdate
}

// Update handles PUT /api/contacts/:id with a partial field set.
func (ctl *ContactsController) Update(c *gin.Context) {
	contactID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		respondInvalidRequest(c)
		return
	}

	contact, err := ctl.store.Update(req.UserID, contactID, req.ContactUpdate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c)
			return
		}
		respondInternalError(c, err, "update contact")
		return
	}
	c.JSON(http.StatusOK, contact)
}

type deleteContactsRequest struct {
	UserID     string `json:"userId"`
	ContactIDs []uint `json:"contactIds"`
}

// Delete handles DELETE /api/contacts for bulk deletion.
func (ctl *ContactsController) Delete(c *gin.Context) {
	var req deleteContactsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.ContactIDs == nil {
		respondInvalidRequest(c)
		return
	}

	deleted, err := ctl.store.Delete(req.UserID, req.ContactIDs)
	if err != nil {
		respondInternalError(c, err, "delete contacts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

type addNoteRequest struct {
	UserID  string `json:"userId"`
	Content string `json:"content"`
}

// AddNote handles POST /api/contacts/:id/notes.
func (ctl *ContactsController) AddNote(c *gin.Context) {
	contactID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req addNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.Content == "" {
		respondInvalidRequest(c)
		return
	}

	note, err := ctl.store.AddNote(req.UserID, contactID, req.Content)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c)
			return
		}
		respondInternalError(c, err, "add note")
		return
	}
	c.JSON(http.StatusCreated, note)
}

type bulkTagsRequest struct {
	UserID     string   `json:"userId"`
	ContactIDs []uint   `json:"contactIds"`
	Tags       []string `json:"tags"`
}

// BulkAddTags handles POST /api/contacts/bulk/tags.
func (ctl *ContactsController) BulkAddTags(c *gin.Context) {
	var req bulkTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || len(req.Tags) == 0 {
		respondInvalidRequest(c)
		return
	}

	updated, err := ctl.store.AddTags(req.UserID, req.ContactIDs, req.Tags)
	if err != nil {
		respondInternalError(c, err, "bulk add tags")
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

type bulkSegmentRequest struct {
	UserID     string `json:"userId"`
	ContactIDs []uint `json:"contactIds"`
	Segment    string `json:"segment"`
}

// BulkAssignSegment handles POST /api/contacts/bulk/segment.
func (ctl *ContactsController) BulkAssignSegment(c *gin.Context) {
	var req bulkSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.Segment == "" {
		respondInvalidRequest(c)
		return
	}

	updated, err := ctl.store.AssignSegment(req.UserID, req.ContactIDs, req.Segment)
	if err != nil {
		respondInternalError(c, err, "bulk assign segment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
