package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringMap stores a flat string-to-string map in a jsonb column. Product
// specification blocks (content volume, shade codes, usage notes) use it.
type StringMap map[string]string

func (m *StringMap) Scan(src any) error {
	if src == nil {
		*m = StringMap{}
		return nil
	}

	switch v := src.(type) {
	case []byte:
		return m.parse(v)
	case string:
		return m.parse([]byte(v))
	default:
		return fmt.Errorf("StringMap: unsupported Scan type %T", src)
	}
}

func (m StringMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(map[string]string(m))
	if err != nil {
		return nil, fmt.Errorf("StringMap: marshal: %w", err)
	}
	return string(data), nil
}

func (m *StringMap) parse(data []byte) error {
	if len(data) == 0 {
		*m = StringMap{}
		return nil
	}
	out := map[string]string{}
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("StringMap: parse: %w", err)
	}
	*m = StringMap(out)
	return nil
}
