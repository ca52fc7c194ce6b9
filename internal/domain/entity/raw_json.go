package entity

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// RawJSON stores any JSON value (string, number, object, array) verbatim.
// A nil or JSON null RawJSON is stored as SQL NULL.
type RawJSON json.RawMessage

// Value returns json value, implement driver.Valuer interface
func (j RawJSON) Value() (driver.Value, error) {
	if j.IsNull() {
		return nil, nil
	}
	if !json.Valid(j) {
		return nil, errors.New("invalid JSON value")
	}
	return string(j), nil
}

// Scan scan value into RawJSON, implements sql.Scanner interface
func (j *RawJSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = append([]byte(nil), v...)
	case string:
		raw = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSON value:", value))
	}
	if !json.Valid(raw) {
		return fmt.Errorf("stored value is not valid JSON: %q", raw)
	}
	*j = RawJSON(raw)
	return nil
}

// GormDBDataType keeps jsonb on postgres and falls back to text elsewhere so
// sqlite does not apply numeric affinity to scalar values.
func (RawJSON) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "jsonb"
	}
	return "text"
}

func (j RawJSON) MarshalJSON() ([]byte, error) {
	if j.IsNull() {
		return []byte("null"), nil
	}
	return j, nil
}

func (j *RawJSON) UnmarshalJSON(data []byte) error {
	if j == nil {
		return errors.New("entity.RawJSON: UnmarshalJSON on nil pointer")
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*j = nil
		return nil
	}
	*j = append((*j)[0:0], data...)
	return nil
}

func (j RawJSON) IsNull() bool {
	return len(j) == 0 || bytes.Equal(bytes.TrimSpace(j), []byte("null"))
}
