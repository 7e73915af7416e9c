package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jimezsa/jobboard/internal/models"
	"github.com/jimezsa/jobboard/internal/ui"
	"github.com/muesli/termenv"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
	FormatPipe     Format = "pipe"
)

type WriteOptions struct {
	ColorEnabled bool
}

// WriteRecords renders records whose fields follow columns.
func WriteRecords(w io.Writer, columns []string, records []models.Record, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, records)
	case FormatCSV:
		return writeCSV(w, columns, records, ',')
	case FormatTSV:
		return writeCSV(w, columns, records, '\t')
	case FormatMarkdown:
		return writeMarkdown(w, columns, records)
	case FormatPipe:
		for _, record := range records {
			if err := WritePipe(w, record); err != nil {
				return err
			}
		}
		return nil
	default:
		return writeTable(w, columns, records, opts)
	}
}

// WritePipe writes one record as "name = value | " pairs on a single line.
// Empty values are written as is.
func WritePipe(w io.Writer, record models.Record) error {
	var b strings.Builder
	for _, field := range record {
		b.WriteString(field.Name)
		b.WriteString(" = ")
		b.WriteString(field.Value)
		b.WriteString(" | ")
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func writeJSON(w io.Writer, records []models.Record) error {
	rows := make([]map[string]string, 0, len(records))
	for _, record := range records {
		row := make(map[string]string, len(record))
		for _, field := range record {
			row[field.Name] = field.Value
		}
		rows = append(rows, row)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func writeCSV(w io.Writer, columns []string, records []models.Record, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := writer.Write(columns); err != nil {
		return err
	}
	for _, record := range records {
		if err := writer.Write(values(record)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, columns []string, records []models.Record, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	output := termenv.NewOutput(w)
	header := strings.Join(columns, "\t")
	fmt.Fprintln(tw, ui.ColorizeHeader(output, opts.ColorEnabled, header))
	for _, record := range records {
		cells := values(record)
		for i, cell := range cells {
			cells[i] = safe(cell)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func writeMarkdown(w io.Writer, columns []string, records []models.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}
	for _, record := range records {
		lines := make([]string, 0, len(record))
		for i, field := range record {
			value := safe(field.Value)
			if value == "" {
				value = "-"
			}
			if i == 0 {
				lines = append(lines, fmt.Sprintf("- **%s**: %s", field.Name, value))
				continue
			}
			lines = append(lines, fmt.Sprintf("  %s: %s", field.Name, value))
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func values(record models.Record) []string {
	out := make([]string, 0, len(record))
	for _, field := range record {
		out = append(out, field.Value)
	}
	return out
}

func safe(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "tsv":
		return FormatTSV, nil
	case "pipe":
		return FormatPipe, nil
	case "table", "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}
