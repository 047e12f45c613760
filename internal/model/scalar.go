package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Scalar is a JSON or YAML value that may be written either as a number or as
// a string, such as a day of the month ("date": 21 or "date": "Every Sunday").
// It remembers whether the value was an integer so dates can be given an
// ordinal suffix while free text passes through untouched.
type Scalar struct {
	text  string
	num   int
	isInt bool
}

// IntScalar returns a Scalar holding the integer n.
func IntScalar(n int) Scalar {
	return Scalar{text: strconv.Itoa(n), num: n, isInt: true}
}

// StringScalar returns a Scalar holding free text.
func StringScalar(s string) Scalar {
	return Scalar{text: s}
}

// IsSet reports whether the value was present and non-empty.
func (s Scalar) IsSet() bool { return s.text != "" }

// Int returns the integer value and whether the value was an integer.
func (s Scalar) Int() (int, bool) { return s.num, s.isInt }

func (s Scalar) String() string { return s.text }

// Compare orders scalars for sorting: integers first in numeric order, then
// everything else in lexical order. An unset scalar sorts as the integer 0.
func (s Scalar) Compare(o Scalar) int {
	a, b := s.sortKey(), o.sortKey()
	switch {
	case a.isInt && b.isInt:
		return a.num - b.num
	case a.isInt:
		return -1
	case b.isInt:
		return 1
	default:
		return strings.Compare(a.text, b.text)
	}
}

func (s Scalar) sortKey() Scalar {
	if !s.IsSet() {
		return IntScalar(0)
	}
	return s
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = Scalar{}
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = StringScalar(str)
	default:
		text := string(data)
		if n, err := strconv.Atoi(text); err == nil {
			*s = IntScalar(n)
		} else {
			*s = StringScalar(text)
		}
	}
	return nil
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.isInt {
		return []byte(s.text), nil
	}
	return json.Marshal(s.text)
}

// UnmarshalYAML implements yaml.Unmarshaler for gopkg.in/yaml.v2.
func (s *Scalar) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*s = Scalar{}
	case int:
		*s = IntScalar(v)
	case int64:
		*s = IntScalar(int(v))
	case uint64:
		*s = IntScalar(int(v))
	case float64:
		*s = StringScalar(strconv.FormatFloat(v, 'f', -1, 64))
	case string:
		*s = StringScalar(v)
	default:
		*s = StringScalar(fmt.Sprint(v))
	}
	return nil
}
