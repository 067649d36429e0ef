package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("57"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const maxBarWidth = 40

// render writes data as JSON or YAML when one of those output formats is
// selected, and calls table otherwise.
func render(w io.Writer, data any, table func(w io.Writer) error) error {
	switch strings.ToLower(cfg.Output) {
	case "json":
		b, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to format YAML: %w", err)
		}
		_, err = w.Write(b)
		return err
	default:
		return table(w)
	}
}

// writeTable prints rows under headers as aligned columns.
func writeTable(w io.Writer, headers []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No records found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// fieldRows turns entities into table rows, with the id first.
func fieldRows[T interface{ Fields() []domain.Field }](items []T, id func(T) int64) (headers []string, rows [][]string) {
	for i, item := range items {
		fields := item.Fields()
		if i == 0 {
			headers = append([]string{"ID"}, domain.Labels(fields)...)
		}
		row := []string{fmt.Sprint(id(item))}
		for _, f := range fields {
			row = append(row, fmt.Sprint(f.Value))
		}
		rows = append(rows, row)
	}
	return headers, rows
}

// writeBars draws a horizontal bar per label, scaled to the largest value.
func writeBars(w io.Writer, title string, labels []string, values []int) error {
	if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
		return err
	}
	if len(labels) == 0 {
		_, err := fmt.Fprintln(w, dimStyle.Render("No data."))
		return err
	}

	labelWidth, maxValue := 0, 0
	for i, l := range labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
		maxValue = max(maxValue, values[i])
	}

	for i, l := range labels {
		width := 0
		if maxValue > 0 {
			width = values[i] * maxBarWidth / maxValue
		}
		if values[i] > 0 && width == 0 {
			width = 1
		}
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(l))
		bar := barStyle.Render(strings.Repeat("█", width))
		if _, err := fmt.Fprintf(w, "%s%s  %s %d\n", l, pad, bar, values[i]); err != nil {
			return err
		}
	}
	return nil
}
