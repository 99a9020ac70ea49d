package importers

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ParseXLSX parses the first sheet of an OOXML workbook into ordered
// rows, using the same header normalization and lenient ragged-row
// policy as ParseCSV. A corrupt or unreadable workbook aborts the
// whole parse.
func ParseXLSX(r io.Reader, hasHeader bool) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook contains no sheets")
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	var headers []string
	if hasHeader {
		if len(cells) == 0 {
			return []Row{}, nil
		}
		headers = make([]string, len(cells[0]))
		for i, h := range cells[0] {
			headers[i] = NormalizeHeader(h)
		}
		cells = cells[1:]
	} else {
		headers = TemplateHeaders()
	}

	rows := []Row{}
	for _, record := range cells {
		row, empty := rowFromCells(headers, record)
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}
