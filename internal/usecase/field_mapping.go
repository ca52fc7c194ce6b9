package usecase

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"

	"hospital-food-manager/internal/delivery/dto"
	"hospital-food-manager/internal/domain/entity"
)

// fieldDecoder turns one JSON value from a partial update into the value
// written to its column.
type fieldDecoder func(raw json.RawMessage) (interface{}, error)

type updatableField struct {
	column string
	decode fieldDecoder
}

// toColumns maps a partial update body onto column assignments. Every key
// must be known; a key that cannot be decoded fails the whole update.
func toColumns(req dto.PartialUpdateRequest, fields map[string]updatableField) (map[string]interface{}, error) {
	keys := make([]string, 0, len(req))
	for key := range req {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	columns := make(map[string]interface{}, len(req))
	for _, key := range keys {
		field, ok := fields[key]
		if !ok {
			return nil, &FieldError{Field: key, Reason: "unknown field"}
		}
		value, err := field.decode(req[key])
		if err != nil {
			return nil, &FieldError{Field: key, Reason: err.Error()}
		}
		columns[field.column] = value
	}
	return columns, nil
}

var errNullValue = errors.New("must not be null")

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func decodeString(raw json.RawMessage) (interface{}, error) {
	if isNull(raw) {
		return nil, errNullValue
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return s, nil
}

// decodeNullableString maps JSON null to SQL NULL.
func decodeNullableString(raw json.RawMessage) (interface{}, error) {
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return s, nil
}

func decodeNullableInt(raw json.RawMessage) (interface{}, error) {
	var i *int
	if err := json.Unmarshal(raw, &i); err != nil {
		return nil, err
	}
	return i, nil
}

func decodeAge(raw json.RawMessage) (interface{}, error) {
	if isNull(raw) {
		return nil, errNullValue
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var age dto.IntString
	if err := json.Unmarshal(raw, &age); err != nil {
		return nil, err
	}
	n, err := age.Int()
	if err != nil {
		return nil, ErrInvalidAge
	}
	return n, nil
}

func decodeJSON(raw json.RawMessage) (interface{}, error) {
	return entity.RawJSON(raw), nil
}
