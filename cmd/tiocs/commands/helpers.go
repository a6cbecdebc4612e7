package commands

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fivetwenty-io/containersecurity/pkg/cs"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"
	Masked       = "***"

	// Output formats.
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"

	// YAML indentation.
	defaultYAMLIndent = 2
)

// Common static errors used throughout the commands package.
var (
	ErrUnsupportedOutput = errors.New("unsupported output format")
	ErrInvalidDigest     = errors.New("invalid image digest")
	ErrInvalidListConfig = errors.New("invalid repositories.list configuration")
)

// Column maps a table header to a gjson path within a record.
type Column struct {
	Header string
	Path   string
}

// outputFormat returns the validated --output value.
func outputFormat() (string, error) {
	format := strings.ToLower(viper.GetString("output"))
	if format == "" {
		return OutputFormatTable, nil
	}

	switch format {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedOutput, format)
	}
}

// StandardJSONRenderer writes data as indented JSON.
func StandardJSONRenderer[T any](w io.Writer, data T) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML.
func StandardYAMLRenderer[T any](w io.Writer, data T) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(yamlSafe(data))
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// yamlSafe round-trips records through JSON so json.Number values are
// emitted as YAML numbers rather than strings.
func yamlSafe(data any) any {
	raw, err := json.Marshal(data)
	if err != nil {
		return data
	}

	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return data
	}

	return out
}

// renderRecords writes records in the selected format. Table output uses
// columns; the structured formats emit records unchanged.
func renderRecords(w io.Writer, records []cs.Record, columns []Column, empty string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case OutputFormatJSON:
		return StandardJSONRenderer(w, records)
	case OutputFormatYAML:
		return StandardYAMLRenderer(w, records)
	}

	if len(records) == 0 {
		_, _ = fmt.Fprintln(w, empty)

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header(columnHeaders(columns)...)

	for _, record := range records {
		_ = table.Append(columnValues(record, columns))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderRecord writes one record. Table output lists the given columns as
// property/value rows, or every top-level key when columns is empty.
func renderRecord(w io.Writer, record cs.Record, columns []Column) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case OutputFormatJSON:
		return StandardJSONRenderer(w, record)
	case OutputFormatYAML:
		return StandardYAMLRenderer(w, record)
	}

	if len(columns) == 0 {
		columns = keyColumns(record)
	}

	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	values := columnValues(record, columns)
	for i, column := range columns {
		_ = table.Append(column.Header, values[i])
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func columnHeaders(columns []Column) []any {
	headers := make([]any, 0, len(columns))
	for _, column := range columns {
		headers = append(headers, column.Header)
	}

	return headers
}

// columnValues extracts the value of each column from record.
func columnValues(record cs.Record, columns []Column) []string {
	raw, err := json.Marshal(record)
	if err != nil {
		raw = []byte("{}")
	}

	values := make([]string, 0, len(columns))

	for _, column := range columns {
		result := gjson.GetBytes(raw, column.Path)
		if !result.Exists() || result.Type == gjson.Null {
			values = append(values, NotAvailable)

			continue
		}

		values = append(values, result.String())
	}

	return values
}

// keyColumns builds one column per top-level key, sorted by name.
func keyColumns(record cs.Record) []Column {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	columns := make([]Column, 0, len(keys))
	for _, key := range keys {
		columns = append(columns, Column{Header: key, Path: gjson.Escape(key)})
	}

	return columns
}

// confirm asks a yes/no question on w and reads the answer from r.
func confirm(r io.Reader, w io.Writer, prompt string) bool {
	_, _ = fmt.Fprintf(w, "%s (y/N): ", prompt)

	response, _ := bufio.NewReader(r).ReadString('\n')

	switch strings.TrimSpace(response) {
	case "y", "Y", "yes", "YES":
		return true
	default:
		return false
	}
}
