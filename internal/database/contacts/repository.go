// Package contacts provides the owner-scoped contact store.
//
// Every operation requires the acting user's id; a contact cannot be
// addressed without supplying the correct owner. Cross-owner access
// fails with gorm.ErrRecordNotFound, never a permission leak.
package contacts

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/avolkov/outreach/internal/entities"
	"github.com/avolkov/outreach/internal/validation"
)

// Repository handles all contact database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new contacts repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// createConstraints are the store-level requirements for a new contact.
// The import transformer deliberately imposes none of these; rejection
// here is what the batch importer isolates per record.
type createConstraints struct {
	Email string `json:"email" validate:"required,email"`
}

// ValidationError reports which fields of a contact violated the
// store's create constraints.
type ValidationError struct {
	Problems validation.Problems
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Problems))
	for field, problem := range e.Problems {
		fields = append(fields, field+" "+problem)
	}
	sort.Strings(fields)
	return "invalid contact: " + strings.Join(fields, "; ")
}

// Create persists a single contact for the given owner. Tags and
// segments default to empty lists when unset. The write is atomic at
// single-record granularity.
func (r *Repository) Create(userID string, contact *entities.Contact) error {
	if userID == "" {
		return fmt.Errorf("owner id is required")
	}
	if problems := validation.Struct(createConstraints{Email: contact.Email}); len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}

	contact.UserID = userID
	if contact.Tags == nil {
		contact.Tags = entities.StringList{}
	}
	if contact.Segments == nil {
		contact.Segments = entities.StringList{}
	}

	return r.db.Create(contact).Error
}

// List returns the owner's contacts ordered by creation time
// descending, with notes preloaded.
func (r *Repository) List(userID string) ([]entities.Contact, error) {
	contacts := []entities.Contact{}
	err := r.db.
		Preload("Notes").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&contacts).Error
	return contacts, err
}

// ContactUpdate carries a partial update; nil fields are left untouched.
type ContactUpdate struct {
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Company   *string   `json:"company"`
	JobTitle  *string   `json:"jobTitle"`
	Tags      *[]string `json:"tags"`
	Segments  *[]string `json:"segments"`
}

// Update applies a partial update to one of the owner's contacts.
// Returns gorm.ErrRecordNotFound when the contact does not belong to
// the owner.
func (r *Repository) Update(userID string, contactID uint, update ContactUpdate) (*entities.Contact, error) {
	contact, err := r.getOwned(userID, contactID)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		contact.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		contact.LastName = *update.LastName
	}
	if update.Email != nil {
		contact.Email = *update.Email
	}
	if update.Phone != nil {
		contact.Phone = *update.Phone
	}
	if update.Company != nil {
		contact.Company = *update.Company
	}
	if update.JobTitle != nil {
		contact.JobTitle = *update.JobTitle
	}
	if update.Tags != nil {
		contact.Tags = entities.StringList(*update.Tags)
	}
	if update.Segments != nil {
		contact.Segments = entities.StringList(*update.Segments)
	}

	if err := r.db.Save(contact).Error; err != nil {
		return nil, err
	}
	return contact, nil
}

// Delete removes the listed contacts belonging to the owner and
// returns the number actually deleted. Ids owned by someone else are
// silently skipped.
func (r *Repository) Delete(userID string, contactIDs []uint) (int64, error) {
	if len(contactIDs) == 0 {
		return 0, nil
	}
	result := r.db.
		Where("user_id = ? AND id IN ?", userID, contactIDs).
		Delete(&entities.Contact{})
	return result.RowsAffected, result.Error
}

// AddNote attaches a free-text note to one of the owner's contacts.
// The acting user becomes the note's author.
func (r *Repository) AddNote(userID string, contactID uint, content string) (*entities.Note, error) {
	if _, err := r.getOwned(userID, contactID); err != nil {
		return nil, err
	}

	note := &entities.Note{
		ContactID: contactID,
		AuthorID:  userID,
		Content:   content,
	}
	if err := r.db.Create(note).Error; err != nil {
		return nil, err
	}
	return note, nil
}

// AddTags appends the given tags to each listed contact, skipping tags
// a contact already carries. Returns the number of contacts updated.
func (r *Repository) AddTags(userID string, contactIDs []uint, tags []string) (int64, error) {
	var updated int64
	err := r.forEachOwned(userID, contactIDs, func(contact *entities.Contact) error {
		changed := false
		for _, tag := range tags {
			if containsLabel(contact.Tags, tag) {
				continue
			}
			contact.Tags = append(contact.Tags, tag)
			changed = true
		}
		if !changed {
			return nil
		}
		if err := r.db.Save(contact).Error; err != nil {
			return err
		}
		updated++
		return nil
	})
	return updated, err
}

// AssignSegment adds the segment to each listed contact that does not
// already carry it. Returns the number of contacts updated.
func (r *Repository) AssignSegment(userID string, contactIDs []uint, segment string) (int64, error) {
	var updated int64
	err := r.forEachOwned(userID, contactIDs, func(contact *entities.Contact) error {
		if containsLabel(contact.Segments, segment) {
			return nil
		}
		contact.Segments = append(contact.Segments, segment)
		if err := r.db.Save(contact).Error; err != nil {
			return err
		}
		updated++
		return nil
	})
	return updated, err
}

func (r *Repository) getOwned(userID string, contactID uint) (*entities.Contact, error) {
	var contact entities.Contact
	err := r.db.
		Where("id = ? AND user_id = ?", contactID, userID).
		First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *Repository) forEachOwned(userID string, contactIDs []uint, fn func(*entities.Contact) error) error {
	contacts := []entities.Contact{}
	err := r.db.
		Where("user_id = ? AND id IN ?", userID, contactIDs).
		Find(&contacts).Error
	if err != nil {
		return err
	}
	for i := range contacts {
		if err := fn(&contacts[i]); err != nil {
			return err
		}
	}
	return nil
}

func containsLabel(labels entities.StringList, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
