// Package tabular parses delimiter-separated, quote-escaped text tables into
// ordered field-name to value records.
package tabular

import "strings"

// DecodeLine tokenizes one line of comma-separated, double-quote-delimited
// text into its ordered fields. A doubled quote inside a quoted field emits a
// literal quote. Fields are trimmed of surrounding whitespace. The final
// field is always flushed, so a trailing comma yields a trailing empty
// field. An unterminated quote is tolerated and treated as if it were closed
// at end of line. No field-count expectation is enforced here.
func DecodeLine(line string) []string {
	fields := make([]string, 0, 8)
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				// Escaped quote: emit one literal quote, skip the pair.
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}

	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}

// EncodeLine renders fields back into one delimited line. A field containing
// the delimiter, a quote, or a line break is quoted, with internal quotes
// doubled. DecodeLine(EncodeLine(fields)) yields an equivalent sequence.
func EncodeLine(fields []string) string {
	encoded := make([]string, len(fields))
	for i, field := range fields {
		if strings.ContainsAny(field, ",\"\n\r") {
			encoded[i] = "\"" + strings.ReplaceAll(field, "\"", "\"\"") + "\""
		} else {
			encoded[i] = field
		}
	}
	return strings.Join(encoded, ",")
}
