package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// ImageList is an ordered list of secondary image URLs. The column stores a
// JSON encoded string array - the (de)serialization stays inside this type so
// the rest of the code only ever sees a []string.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal([]string(l))
}

func (l *ImageList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}

	if len(data) == 0 {
		*l = nil
		return nil
	}

	var urls []string
	if err := json.Unmarshal(data, &urls); err != nil {
		// legacy rows may contain free text instead of a JSON array.
		// treat those as "no secondary images" rather than failing every read.
		*l = nil
		return nil
	}
	*l = urls
	return nil
}
