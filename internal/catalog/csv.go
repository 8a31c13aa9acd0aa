package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/magefree/gwent-engine-go/internal/card"
)

// ParseCSV reads templates from a CSV export whose first row names the
// columns. Column order is free; id, name, type, faction and lane are
// required.
func ParseCSV(r io.Reader) ([]card.Template, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: CSV has no data rows", card.ErrInvalidTemplate)
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.ToLower(strings.TrimSpace(name))
	}
	for _, required := range []string{"id", "name", "type", "faction", "lane"} {
		if !slices.Contains(header, required) {
			return nil, fmt.Errorf("%w: CSV is missing column %q", card.ErrInvalidTemplate, required)
		}
	}

	templates := make([]card.Template, 0, len(records)-1)
	for i, fields := range records[1:] {
		row := make(map[string]interface{}, len(header))
		for col, name := range header {
			if col < len(fields) {
				row[name] = fields[col]
			}
		}
		t, err := decodeTemplate(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		templates = append(templates, t)
	}
	return templates, nil
}

// LoadCSV reads and validates a catalog file.
func LoadCSV(path string) (*card.Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer file.Close()

	templates, err := ParseCSV(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return card.NewCatalog(templates)
}

// WriteCSV exports templates in Columns order with a header row.
func WriteCSV(w io.Writer, templates []card.Template) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Columns); err != nil {
		return err
	}
	for _, t := range templates {
		if err := writer.Write(encodeTemplate(t)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
