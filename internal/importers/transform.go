package importers

import (
	"strings"

	"github.com/avolkov/outreach/internal/entities"
)

// ContactRecord is one transformed import row, ready for a single
// persistence attempt. It is constructed once per parsed row and never
// mutated afterwards. The transformer imposes no required fields;
// validation is delegated to the store.
type ContactRecord struct {
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Email     string   `json:"email,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Company   string   `json:"company,omitempty"`
	JobTitle  string   `json:"jobTitle,omitempty"`
	Tags      []string `json:"tags"`
	Segments  []string `json:"segments"`
}

// RecordFromRow shapes a normalized row into a ContactRecord. Scalar
// fields are trimmed; tags and segments are comma-split with SplitList.
func RecordFromRow(row Row) ContactRecord {
	return ContactRecord{
		FirstName: strings.TrimSpace(row["firstName"]),
		LastName:  strings.TrimSpace(row["lastName"]),
		Email:     strings.TrimSpace(row["email"]),
		Phone:     strings.TrimSpace(row["phone"]),
		Company:   strings.TrimSpace(row["company"]),
		JobTitle:  strings.TrimSpace(row["jobTitle"]),
		Tags:      SplitList(row["tags"]),
		Segments:  SplitList(row["segments"]),
	}
}

// RecordsFromRows transforms all rows, preserving input order.
func RecordsFromRows(rows []Row) []ContactRecord {
	records := make([]ContactRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, RecordFromRow(row))
	}
	return records
}

// SplitList splits a comma-delimited field into ordered tokens. Each
// token is trimmed and empty tokens are dropped; duplicates are kept.
// An absent or empty field yields an empty, non-nil slice.
func SplitList(raw string) []string {
	tokens := []string{}
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// Contact converts the record into a persistable entity, defaulting
// tags and segments to empty lists when unset.
func (r ContactRecord) Contact() *entities.Contact {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	segments := r.Segments
	if segments == nil {
		segments = []string{}
	}
	return &entities.Contact{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Company:   r.Company,
		JobTitle:  r.JobTitle,
		Tags:      entities.StringList(tags),
		Segments:  entities.StringList(segments),
	}
}
