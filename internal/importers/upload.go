package importers

import (
	"errors"
	"fmt"
	"io"

	"github.com/avolkov/outreach/internal/utils"
)

// MaxUploadBytes is the upper bound on an uploaded import file.
// A file of exactly this size is accepted; one byte over is rejected
// before any parsing happens.
const MaxUploadBytes = 5 * 1024 * 1024

var (
	// ErrUnsupportedFileType is returned when the uploaded file name
	// does not end in .csv, .xlsx or .xls.
	ErrUnsupportedFileType = errors.New("unsupported file type: expected .csv, .xlsx or .xls")

	// ErrFileTooLarge is returned when the upload exceeds MaxUploadBytes.
	ErrFileTooLarge = errors.New("file too large: maximum size is 5 MiB")
)

// ValidateUpload enforces the upload constraints before parsing.
// Violations are validation failures: the batch never starts and zero
// records are attempted.
func ValidateUpload(filename string, size int64) error {
	if !utils.IsImportFile(filename) {
		return ErrUnsupportedFileType
	}
	if size > MaxUploadBytes {
		return ErrFileTooLarge
	}
	return nil
}

// ParseUpload dispatches to the parser matching the file extension.
// The first row is treated as a header on every upload path.
func ParseUpload(filename string, r io.Reader) ([]Row, error) {
	switch utils.ImportExtension(filename) {
	case ".csv":
		return ParseCSV(r, true)
	case ".xlsx":
		return ParseXLSX(r, true)
	case ".xls":
		// Accepted by the name check, but the legacy BIFF format has
		// no reader here. Surfaces as a whole-file parse error.
		return nil, fmt.Errorf("legacy .xls workbooks are not supported: save the file as .csv or .xlsx")
	default:
		return nil, ErrUnsupportedFileType
	}
}
