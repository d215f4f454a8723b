package export

import (
	"bytes"
	"encoding/json"

	"github.com/comptoir/backend/internal/domain/shared"
)

// DecodeArray parses a JSON import payload whose top-level value must be
// an array. On success the decoded items replace the target collection
// wholesale; item shapes are not validated, any array that parses is
// accepted. Any parse failure or non-array top-level value returns
// shared.ErrInvalidImport and the caller leaves its collection unchanged.
func DecodeArray[T any](raw []byte) ([]T, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, shared.ErrInvalidImport
	}
	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, shared.ErrInvalidImport
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
