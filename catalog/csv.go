package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// RawRow is one parsed dataset row, keyed by header name. Field values are
// trimmed and stripped of surrounding quotes.
type RawRow map[string]string

// ParseCSV reads a header-prefixed, comma-separated dataset. Fields may be
// double-quoted; a quote character toggles quote state, so commas inside a
// quoted span do not split the field. Blank lines are skipped. A data row
// is accepted when it carries at least len(headers)-1 fields, which absorbs
// rows missing a single trailing optional column. Row order is preserved.
func ParseCSV(r io.Reader) ([]RawRow, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read header row: %w", err)
		}
		return nil, fmt.Errorf("dataset is empty: no header row")
	}
	headers := splitLine(scanner.Text())
	if len(headers) == 0 {
		return nil, fmt.Errorf("dataset header row is empty")
	}

	var rows []RawRow
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitLine(line)
		if len(fields) < len(headers)-1 {
			continue
		}
		row := make(RawRow, len(headers))
		for i, h := range headers {
			if i < len(fields) {
				row[h] = fields[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return rows, nil
}

// ParseCSVFile loads and parses the dataset at path. An unreadable file is
// fatal for the catalog; there is no partial-catalog fallback.
func ParseCSVFile(path string) ([]RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	return rows, nil
}

// splitLine tokenizes one line on commas outside double-quoted spans.
func splitLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, cleanField(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, cleanField(current.String()))
	return fields
}

// Quote characters are consumed by splitLine's state toggle, so only
// whitespace remains to clean.
func cleanField(s string) string {
	return strings.TrimSpace(s)
}
