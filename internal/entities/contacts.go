package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// StringList stores an ordered list of labels as a JSON text column.
// It always scans to a non-nil slice so tags and segments are never
// null at rest, even when an import supplied none.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize string list: %w", err)
	}
	return string(data), nil
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}

	if len(data) == 0 {
		*l = StringList{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("failed to deserialize string list: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}

type Contact struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    string         `gorm:"index;size:64" json:"user_id"`
	FirstName string         `gorm:"size:100" json:"first_name,omitempty"`
	LastName  string         `gorm:"size:100" json:"last_name,omitempty"`
	Email     string         `gorm:"index;size:255" json:"email,omitempty"`
	Phone     string         `gorm:"size:50" json:"phone,omitempty"`
	Company   string         `gorm:"size:256" json:"company,omitempty"`
	JobTitle  string         `gorm:"size:256" json:"job_title,omitempty"`
	Tags      StringList     `gorm:"type:text" json:"tags"`
	Segments  StringList     `gorm:"type:text" json:"segments"`
	Notes     []Note         `gorm:"foreignKey:ContactID" json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// Note is a free-text annotation on a contact, created independently
// of import.
type Note struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ContactID uint      `gorm:"index" json:"contact_id"`
	AuthorID  string    `gorm:"index;size:64" json:"author_id"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusActive    CampaignStatus = "active"
)

type Campaign struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      string         `gorm:"index;size:64" json:"user_id"`
	Name        string         `gorm:"size:50" json:"name"`
	Description string         `gorm:"size:500" json:"description,omitempty"`
	Status      CampaignStatus `gorm:"size:20;default:'draft'" json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ImportEvent records the outcome of a single batch import invocation.
type ImportEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;size:64" json:"user_id"`
	Source    string    `gorm:"size:20" json:"source"` // "csv", "xlsx", "json", "cli"
	Filename  string    `gorm:"size:512" json:"filename,omitempty"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	Detail    string    `gorm:"type:text" json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Contact) TableName() string {
	return "contacts"
}

func (Note) TableName() string {
	return "notes"
}

func (Campaign) TableName() string {
	return "campaigns"
}

func (ImportEvent) TableName() string {
	return "import_events"
}
