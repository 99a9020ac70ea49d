package importers

import (
	"fmt"
	"io"
	"log"

	"github.com/avolkov/outreach/internal/entities"
)

// ContactStore persists contacts one record at a time, scoped by the
// owning user. Each Create must be atomic at single-record granularity.
type ContactStore interface {
	Create(userID string, contact *entities.Contact) error
}

// Result contains the aggregate outcome of a batch import. Success
// plus Failed always equals the number of records attempted; rows
// dropped during parsing never reach either counter.
type Result struct {
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

// Pipeline handles the common import workflow:
// validate → parse → transform → persist per record.
type Pipeline struct {
	store ContactStore
}

// NewPipeline creates an import pipeline backed by the given store.
func NewPipeline(store ContactStore) *Pipeline {
	return &Pipeline{store: store}
}

// Import attempts to persist every record, in input order. A failed
// create is logged with enough context to identify the record and
// counted; it never aborts the batch, so a batch of N records with M
// failures still persists the N-M good ones.
func (p *Pipeline) Import(userID string, records []ContactRecord) Result {
	var result Result

	for i, record := range records {
		if err := p.store.Create(userID, record.Contact()); err != nil {
			log.Printf("Failed to import contact (row %d, email=%q): %v", i+1, record.Email, err)
			result.Failed++
			continue
		}
		result.Success++
	}

	return result
}

// ImportFile runs the full pipeline on an uploaded file: upload
// validation, extension-matched parsing, transformation, then a
// per-record persistence pass. Validation and parse failures return an
// error with zero records attempted.
func (p *Pipeline) ImportFile(userID, filename string, r io.Reader, size int64) (Result, error) {
	if err := ValidateUpload(filename, size); err != nil {
		return Result{}, err
	}

	rows, err := ParseUpload(filename, r)
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	return p.Import(userID, RecordsFromRows(rows)), nil
}
