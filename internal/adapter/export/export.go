// Package export writes the client list in the two interchange formats:
// CSV with Russian column headings and a JSON array.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
)

// Format names an export format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat accepts "csv" or "json".
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatJSON:
		return Format(s), nil
	default:
		return "", &domain.ValidationError{Field: "export format", Value: s, Reason: "must be csv or json"}
	}
}

// Record is one client as it appears in a JSON export.
type Record struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func toRecords(clients []*domain.Client) []Record {
	records := make([]Record, 0, len(clients))
	for _, c := range clients {
		records = append(records, Record{Name: c.Name, Email: c.Email, Phone: c.Phone})
	}
	return records
}

// Write encodes clients to w in the given format.
func Write(w io.Writer, format Format, clients []*domain.Client) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, clients)
	case FormatJSON:
		return WriteJSON(w, clients)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

// WriteCSV writes a header row (Имя,E-mail,Номер телефона) followed by one
// row per client. Rows end with CRLF.
func WriteCSV(w io.Writer, clients []*domain.Client) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	header := []string{domain.LabelClientName, domain.LabelClientEmail, domain.LabelClientPhone}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, c := range clients {
		if err := cw.Write([]string{c.Name, c.Email, c.Phone}); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// ReadCSV parses a file written by WriteCSV. The header row is checked and
// skipped.
func ReadCSV(r io.Reader) ([]Record, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv export has no header")
	}
	if rows[0][0] != domain.LabelClientName {
		return nil, fmt.Errorf("unexpected csv header: %v", rows[0])
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != 3 {
			return nil, fmt.Errorf("csv row has %d fields, want 3", len(row))
		}
		records = append(records, Record{Name: row[0], Email: row[1], Phone: row[2]})
	}
	return records, nil
}

// WriteJSON writes clients as a JSON array of {name,email,phone} objects
// indented with four spaces. Non-ASCII text and HTML characters are written
// as is.
func WriteJSON(w io.Writer, clients []*domain.Client) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")

	if err := enc.Encode(toRecords(clients)); err != nil {
		return fmt.Errorf("failed to write json: %w", err)
	}
	return nil
}

// ReadJSON parses a file written by WriteJSON.
func ReadJSON(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to read json: %w", err)
	}
	return records, nil
}
