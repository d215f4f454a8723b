// Package export implements the tabular export encoder: a minimal CSV
// variant whose field values are JSON-encoded rather than RFC 4180-quoted.
// Previously exported files use exactly this escaping, so the format is a
// compatibility contract and must not be "upgraded".
package export

import (
	"encoding/json"
	"strings"
)

// Field is one named, stringifiable value of a record.
type Field struct {
	Name  string
	Value any
}

// Row is an ordered field list. Using an explicit order instead of
// reflecting over arbitrary record shapes keeps column order deterministic.
type Row []Field

// Encode renders rows as delimited text: a header row taken from the first
// record's field names, then one line per record with each value JSON
// encoded (strings quoted and escaped, numbers bare) and joined by commas.
// An empty input yields an empty string.
func Encode(rows []Row) string {
	if len(rows) == 0 {
		return ""
	}

	headers := make([]string, len(rows[0]))
	for i, f := range rows[0] {
		headers[i] = f.Name
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers, ","))

	for _, row := range rows {
		fields := make([]string, len(headers))
		for i, name := range headers {
			fields[i] = encodeValue(row.value(name))
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	return strings.Join(lines, "\n")
}

// value looks a field up by name; absent fields render as the empty string.
func (r Row) value(name string) any {
	for _, f := range r {
		if f.Name == name {
			return f.Value
		}
	}
	return nil
}

func encodeValue(v any) string {
	if v == nil {
		v = ""
	}
	raw, err := json.Marshal(v)
	if err != nil {
		raw, _ = json.Marshal("")
	}
	return string(raw)
}
