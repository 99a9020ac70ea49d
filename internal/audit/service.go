// Package audit records the terminal outcome of every batch import.
//
// The service is a one-way channel: the core publishes an outcome and
// retains nothing. Failures to record are logged and never propagate
// back into the import path.
package audit

import (
	"log"

	"gorm.io/gorm"

	"github.com/avolkov/outreach/internal/entities"
)

// Service persists import outcomes as ImportEvent rows, optionally
// mirrored to JSON dump files.
type Service struct {
	db     *gorm.DB
	dumper *Dumper
}

// NewService creates an audit service. dumper may be nil to disable
// file dumps.
func NewService(db *gorm.DB, dumper *Dumper) *Service {
	return &Service{db: db, dumper: dumper}
}

// LogImport records one batch import outcome. detail carries the
// operator-facing cause when the batch itself failed (validation or
// parse error); per-record failures are already aggregated in failed.
func (s *Service) LogImport(userID, source, filename string, succeeded, failed int, batchErr error) {
	event := &entities.ImportEvent{
		UserID:    userID,
		Source:    source,
		Filename:  filename,
		Succeeded: succeeded,
		Failed:    failed,
	}
	if batchErr != nil {
		event.Detail = truncate(batchErr.Error(), 500)
	}

	if err := s.db.Create(event).Error; err != nil {
		log.Printf("Failed to record import event: %v", err)
	}

	if s.dumper != nil {
		if _, err := s.dumper.SaveJSON(event); err != nil {
			log.Printf("Failed to dump import event: %v", err)
		}
	}
}

// RecentEvents returns the owner's most recent import events.
func (s *Service) RecentEvents(userID string, limit int) ([]entities.ImportEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	events := []entities.ImportEvent{}
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
