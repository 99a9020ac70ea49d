package utils

import (
	"path/filepath"
	"strings"
)

// KnownImportExtensions contains the file extensions accepted by the
// contact import upload boundary.
var KnownImportExtensions = []string{
	".csv",
	".xlsx",
	".xls",
}

// ImportExtension returns the lowercased extension of a file name,
// including the leading dot.
func ImportExtension(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// IsImportFile reports whether the file name carries one of the
// accepted import extensions.
func IsImportFile(name string) bool {
	ext := ImportExtension(name)
	for _, known := range KnownImportExtensions {
		if ext == known {
			return true
		}
	}
	return false
}
