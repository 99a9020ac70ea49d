package importers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHeader(t *testing.T) {
	t.Run("maps synonyms case-insensitively", func(t *testing.T) {
		assert.Equal(t, "firstName", NormalizeHeader("first_name"))
		assert.Equal(t, "firstName", NormalizeHeader("FIRST_NAME"))
		assert.Equal(t, "lastName", NormalizeHeader("Last_Name"))
		assert.Equal(t, "jobTitle", NormalizeHeader("job_title"))
	})

	t.Run("is idempotent on canonical headers", func(t *testing.T) {
		for _, h := range TemplateHeaders() {
			assert.Equal(t, h, NormalizeHeader(h))
		}
	})

	t.Run("preserves unrecognized headers", func(t *testing.T) {
		assert.Equal(t, "linkedinUrl", NormalizeHeader("linkedinUrl"))
		assert.Equal(t, "Favourite Colour", NormalizeHeader("Favourite Colour"))
	})
}

func TestParseCSV(t *testing.T) {
	t.Run("parses rows with normalized headers", func(t *testing.T) {
		input := "first_name,Last_Name,email,job_title\nJohn,Doe,john@x.com,CEO\nJane,Roe,jane@x.com,CTO\n"

		rows, err := ParseCSV(strings.NewReader(input), true)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "John", rows[0]["firstName"])
		assert.Equal(t, "Doe", rows[0]["lastName"])
		assert.Equal(t, "CEO", rows[0]["jobTitle"])
		assert.Equal(t, "jane@x.com", rows[1]["email"])
	})

	t.Run("skips empty lines entirely", func(t *testing.T) {
		input := "firstName,email\n\nJohn,john@x.com\n\n\nJane,jane@x.com\n,\n"

		rows, err := ParseCSV(strings.NewReader(input), true)

		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("is lenient about ragged rows", func(t *testing.T) {
		input := "firstName,lastName,email\nJohn\nJane,Roe,jane@x.com,extra,cells\n"

		rows, err := ParseCSV(strings.NewReader(input), true)

		require.NoError(t, err)
		require.Len(t, rows, 2)

		_, hasEmail := rows[0]["email"]
		assert.False(t, hasEmail, "missing trailing columns stay absent")
		assert.Equal(t, "John", rows[0]["firstName"])

		assert.Equal(t, "jane@x.com", rows[1]["email"])
		assert.Len(t, rows[1], 3, "extra cells are ignored")
	})

	t.Run("aborts the whole parse on malformed quoting", func(t *testing.T) {
		input := "firstName,email\na,\"b\"x,c\n"

		rows, err := ParseCSV(strings.NewReader(input), true)

		require.Error(t, err)
		assert.Nil(t, rows)
	})

	t.Run("names columns by template order without a header", func(t *testing.T) {
		input := "Jane,Roe,jane@x.com\n"

		rows, err := ParseCSV(strings.NewReader(input), false)

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Jane", rows[0]["firstName"])
		assert.Equal(t, "Roe", rows[0]["lastName"])
		assert.Equal(t, "jane@x.com", rows[0]["email"])
	})

	t.Run("returns empty rows for empty input", func(t *testing.T) {
		rows, err := ParseCSV(strings.NewReader(""), true)

		require.NoError(t, err)
		assert.Empty(t, rows)
		assert.NotNil(t, rows)
	})
}
