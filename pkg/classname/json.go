package classname

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrInvalidValue     = errors.New("property value must be a string, bool, number or null")
	ErrInvalidCondition = errors.New("condition must be a string or an object with when/use")
)

// MarshalJSON encodes v as the matching JSON scalar. Undefined encodes as null.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON accepts any JSON scalar and rejects arrays and objects.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	val, ok := ValueOf(raw)
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidValue, bytes.TrimSpace(data))
	}
	*v = val
	return nil
}

type conditionJSON struct {
	When Props  `json:"when"`
	Use  string `json:"use"`
}

// MarshalJSON encodes conditions without a predicate as bare strings. An
// empty but non-nil predicate is kept as "when": {} so it decodes to the same
// cache key.
func (c Condition) MarshalJSON() ([]byte, error) {
	if c.When == nil {
		return json.Marshal(c.Use)
	}
	return json.Marshal(conditionJSON{When: c.When, Use: c.Use})
}

// UnmarshalJSON accepts either a bare string or {"when": {...}, "use": "..."}.
func (c *Condition) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidCondition
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Use(s)
		return nil
	case '{':
		var raw conditionJSON
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*c = Condition{When: raw.When, Use: raw.Use}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidCondition, data)
}
