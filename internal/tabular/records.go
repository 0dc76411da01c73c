package tabular

import "strings"

// Record maps canonical field names to the raw string values of one row.
// Records are ephemeral: they are consumed by the importer and never
// persisted.
type Record map[string]string

// ParseRecords turns a full text blob into an ordered sequence of records.
// The first line supplies the headers, each normalized to its canonical
// field name; every subsequent non-blank line is zipped against the headers
// by position. Rows shorter than the header count fill missing trailing
// fields with the empty string; rows longer than it silently drop the
// excess. Input with no data rows yields an empty sequence, not an error.
func ParseRecords(content string) []Record {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	lines := strings.Split(content, "\n")
	if len(lines) < 2 {
		return []Record{}
	}

	rawHeaders := DecodeLine(lines[0])
	headers := make([]string, len(rawHeaders))
	for i, h := range rawHeaders {
		headers[i] = CanonicalFieldName(h)
	}

	records := make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := DecodeLine(line)

		record := make(Record, len(headers))
		for i, header := range headers {
			if i < len(values) {
				record[header] = values[i]
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}

	return records
}
