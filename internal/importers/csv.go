package importers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row represents a single parsed input row as a map of normalized
// column name to raw cell value.
type Row map[string]string

// headerSynonyms maps common export header variants (case-insensitive)
// to the canonical contact field vocabulary. Unrecognized headers pass
// through unchanged; downstream transformation ignores fields it does
// not recognize.
var headerSynonyms = map[string]string{
	"first_name": "firstName",
	"last_name":  "lastName",
	"job_title":  "jobTitle",
}

// NormalizeHeader rewrites an input column name to the canonical field
// vocabulary. The lookup is case-insensitive and idempotent: an
// already-canonical header comes back unchanged.
func NormalizeHeader(header string) string {
	header = strings.TrimSpace(header)
	if canonical, ok := headerSynonyms[strings.ToLower(header)]; ok {
		return canonical
	}
	return header
}

// ParseCSV parses delimited text into ordered rows. When hasHeader is
// true the first row names the columns; otherwise columns are named by
// the canonical template order.
//
// Ragged rows are handled leniently: missing trailing cells become
// absent values and extra cells are ignored. Rows whose every cell is
// empty are skipped entirely and never reach the batch. Structural
// failures (malformed quoting) abort the whole parse with a single
// error before anything is persisted.
func ParseCSV(r io.Reader, hasHeader bool) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	var headers []string
	if hasHeader {
		record, err := reader.Read()
		if err == io.EOF {
			return []Row{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
		headers = make([]string, len(record))
		for i, h := range record {
			headers[i] = NormalizeHeader(h)
		}
	} else {
		headers = TemplateHeaders()
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}

		row, empty := rowFromCells(headers, record)
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}

// rowFromCells maps cells onto column names. Extra cells beyond the
// known columns are dropped; missing trailing cells stay absent.
func rowFromCells(headers []string, cells []string) (Row, bool) {
	row := make(Row, len(headers))
	empty := true
	for i, header := range headers {
		if header == "" || i >= len(cells) {
			continue
		}
		value := cells[i]
		if strings.TrimSpace(value) != "" {
			empty = false
		}
		row[header] = value
	}
	return row, empty
}
