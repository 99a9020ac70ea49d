package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportExtension(t *testing.T) {
	assert.Equal(t, ".csv", ImportExtension("contacts.csv"))
	assert.Equal(t, ".csv", ImportExtension("CONTACTS.CSV"))
	assert.Equal(t, ".xlsx", ImportExtension("export.backup.xlsx"))
	assert.Equal(t, "", ImportExtension("noextension"))
}

func TestIsImportFile(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
	}{
		{"contacts.csv", true},
		{"Contacts.XLSX", true},
		{"legacy.xls", true},
		{"contacts.txt", false},
		{"contacts.csv.exe", false},
		{"contacts", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.ok, IsImportFile(c.name), c.name)
	}
}
