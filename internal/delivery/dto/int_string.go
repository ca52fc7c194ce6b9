package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// IntString accepts either a JSON number or a JSON string and keeps its text
// form, so that "42" and 42 validate and convert the same way.
// JSON null, false and a numeric zero decode to the empty string and count as
// missing. A quoted "0" is kept.
type IntString string

func (s *IntString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte("false")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = IntString(strings.TrimSpace(str))
		return nil
	}
	if f, err := strconv.ParseFloat(string(data), 64); err == nil && f == 0 {
		*s = ""
		return nil
	}
	*s = IntString(data)
	return nil
}

// Int converts the value to an int. Fractions, signs and non-digits fail.
func (s IntString) Int() (int, error) {
	return strconv.Atoi(string(s))
}
