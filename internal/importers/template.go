package importers

import (
	"bytes"
	"encoding/csv"
	"strings"
)

// TemplateFilename is the suggested download name for the template file.
const TemplateFilename = "contacts_template.csv"

var templateHeaders = []string{
	"firstName", "lastName", "email", "phone",
	"company", "jobTitle", "tags", "segments",
}

// TemplateHeaders returns the canonical column order of the import
// template. Also used to name columns when parsing header-less files.
func TemplateHeaders() []string {
	headers := make([]string, len(templateHeaders))
	copy(headers, templateHeaders)
	return headers
}

// TemplateRecord is the sample record embedded in the template file.
// Parsing the generated template must reproduce exactly this record;
// TestTemplateRoundTrip pins that contract.
func TemplateRecord() ContactRecord {
	return ContactRecord{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Phone:     "+1 555 0100",
		Company:   "Acme Inc",
		JobTitle:  "Sales Manager",
		Tags:      []string{"VIP", "Customer"},
		Segments:  []string{"Enterprise", "Q3 Outreach"},
	}
}

// TemplateCSV renders the downloadable template: the canonical header
// row plus one sample row demonstrating quoted multi-value fields.
func TemplateCSV() string {
	sample := TemplateRecord()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	// Writes below go to an in-memory buffer and cannot fail.
	_ = w.Write(templateHeaders)
	_ = w.Write([]string{
		sample.FirstName,
		sample.LastName,
		sample.Email,
		sample.Phone,
		sample.Company,
		sample.JobTitle,
		strings.Join(sample.Tags, ","),
		strings.Join(sample.Segments, ","),
	})
	w.Flush()

	return buf.String()
}
