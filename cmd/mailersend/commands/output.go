package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// renderEnvelope prints the body of env in the requested format. Non-2xx
// envelopes are returned as their *APIError so the process exits non-zero;
// structured formats also print the error document.
func renderEnvelope(w io.Writer, env *mailersend.Envelope, format string, columns []string) error {
	if format == "" {
		format = constants.FormatTable
	}

	if !validFormat(format) {
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, format)
	}

	if !env.Success() {
		if format == constants.FormatJSON || format == constants.FormatYAML {
			if err := writeStructured(w, env.Err(), format); err != nil {
				return err
			}
		}

		return fmt.Errorf("%w: %w", constants.ErrRequestFailed, env.Err())
	}

	data := env.Data()

	switch format {
	case constants.FormatJSON, constants.FormatYAML:
		return writeStructured(w, data, format)
	default:
		return writeTable(w, env, data, columns)
	}
}

func validFormat(format string) bool {
	return format == constants.FormatTable || format == constants.FormatJSON || format == constants.FormatYAML
}

func writeStructured(w io.Writer, value any, format string) error {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))
		encoder.SetEscapeHTML(false)

		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)
		defer func() { _ = encoder.Close() }()

		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, format)
	}
}

func writeTable(w io.Writer, env *mailersend.Envelope, data any, columns []string) error {
	body, ok := data.(map[string]any)
	if !ok {
		return writeStructured(w, data, constants.FormatJSON)
	}

	if len(body) == 0 {
		_, err := fmt.Fprintf(w, "OK (status %d)\n", env.StatusCode())

		return err
	}

	if rows, ok := body["data"].([]any); ok {
		if err := writeRows(w, rows, columns); err != nil {
			return err
		}

		if page, ok := env.Page(); ok && page.LastPage > 1 {
			_, err := fmt.Fprintf(w, "\nShowing page %d of %d (%d total). Use --page to see more.\n",
				page.CurrentPage, page.LastPage, page.Total)

			return err
		}

		return nil
	}

	if single, ok := body["data"].(map[string]any); ok {
		body = single
	}

	return writeProperties(w, body)
}

func writeRows(w io.Writer, rows []any, columns []string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No results found")

		return err
	}

	if len(columns) == 0 {
		columns = inferColumns(rows)
	}

	headers := make([]any, len(columns))
	for i, column := range columns {
		headers[i] = headerTitle(column)
	}

	table := tablewriter.NewWriter(w)
	table.Header(headers...)

	for _, row := range rows {
		item, _ := row.(map[string]any)

		cells := make([]string, len(columns))
		for i, column := range columns {
			cells[i] = cell(lookupPath(item, column))
		}

		if err := table.Append(cells); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func writeProperties(w io.Writer, body map[string]any) error {
	keys := make([]string, 0, len(body))
	for key := range body {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	for _, key := range keys {
		if err := table.Append(headerTitle(key), cell(body[key])); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// inferColumns picks the scalar fields of the first row, id first.
func inferColumns(rows []any) []string {
	first, _ := rows[0].(map[string]any)

	columns := make([]string, 0, len(first))
	for key, value := range first {
		switch value.(type) {
		case map[string]any, []any:
			continue
		}

		if key != "id" {
			columns = append(columns, key)
		}
	}

	sort.Strings(columns)

	if _, ok := first["id"]; ok {
		columns = append([]string{"id"}, columns...)
	}

	return columns
}

// lookupPath reads dotted paths such as "domain.name".
func lookupPath(item map[string]any, path string) any {
	var current any = item

	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}

		current = m[part]
	}

	return current
}

func headerTitle(key string) string {
	return cases.Title(language.English).String(strings.NewReplacer("_", " ", ".", " ").Replace(key))
}

func cell(value any) string {
	var text string

	switch v := value.(type) {
	case nil:
		return constants.NotAvailable
	case string:
		text = v
	case float64:
		text = fmt.Sprintf("%g", v)
	case bool:
		text = fmt.Sprintf("%t", v)
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			text = fmt.Sprint(v)
		} else {
			text = string(raw)
		}
	}

	if len(text) > constants.DescriptionDisplayLength {
		text = text[:constants.DescriptionDisplayLength-3] + "..."
	}

	return text
}
