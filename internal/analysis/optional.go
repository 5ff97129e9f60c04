package analysis

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Strings is an optional list of strings. Present is true when the key exists
// with a list value, even an empty one. A missing key, null, or a value of
// another JSON type leaves it absent.
type Strings struct {
	Values  []string
	Present bool
}

// StringsOf returns a present list holding values.
func StringsOf(values ...string) Strings {
	if values == nil {
		values = []string{}
	}
	return Strings{Values: values, Present: true}
}

// UnmarshalJSON never fails; type mismatches decode as absent.
func (s *Strings) UnmarshalJSON(data []byte) error {
	*s = Strings{}
	var items []json.RawMessage
	if isNull(data) || json.Unmarshal(data, &items) != nil {
		return nil
	}
	values := make([]string, 0, len(items))
	for _, item := range items {
		values = append(values, scalarText(item))
	}
	s.Values = values
	s.Present = true
	return nil
}

// Len returns the number of values, zero when absent.
func (s Strings) Len() int {
	return len(s.Values)
}

// Number is an optional JSON number. Integers and floats are both accepted.
type Number struct {
	Value   float64
	Present bool
}

// NumberOf returns a present number.
func NumberOf(v float64) Number {
	return Number{Value: v, Present: true}
}

// UnmarshalJSON never fails; anything that is not a JSON number decodes as absent.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	var v float64
	if isNull(data) || json.Unmarshal(data, &v) != nil {
		return nil
	}
	n.Value = v
	n.Present = true
	return nil
}

// String formats the number without a trailing fraction when it is integral.
// Absent numbers format as the empty string.
func (n Number) String() string {
	if !n.Present {
		return ""
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// Text is an optional JSON string.
type Text struct {
	Value   string
	Present bool
}

// TextOf returns a present string.
func TextOf(v string) Text {
	return Text{Value: v, Present: true}
}

// UnmarshalJSON never fails; non-string values decode as absent.
func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text{}
	var v string
	if isNull(data) || json.Unmarshal(data, &v) != nil {
		return nil
	}
	t.Value = v
	t.Present = true
	return nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// scalarText renders a list item the way a JavaScript join would: strings
// verbatim, null as empty, other values as their JSON text.
func scalarText(item json.RawMessage) string {
	if isNull(item) {
		return ""
	}
	var s string
	if err := json.Unmarshal(item, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(item))
}
