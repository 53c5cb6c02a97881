package catalog

// attributes.go implements the open-ended custom-attribute bag carried by
// every product. Values are a small tagged union (string, number, bool, null)
// rather than interface{} so that callers always know what they are holding,
// and insertion order is preserved so feeds round-trip deterministically.

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AttrKind discriminates the value stored in an AttrValue.
type AttrKind int

const (
	AttrString AttrKind = iota
	AttrNumber
	AttrBool
	AttrNull
)

// AttrValue is a tagged union of the JSON scalar types an attribute may hold.
type AttrValue struct {
	Kind AttrKind
	Str  string
	Num  float64
	Bool bool
}

// StringValue returns an AttrValue holding a string.
func StringValue(s string) AttrValue { return AttrValue{Kind: AttrString, Str: s} }

// NumberValue returns an AttrValue holding a number.
func NumberValue(f float64) AttrValue { return AttrValue{Kind: AttrNumber, Num: f} }

// BoolValue returns an AttrValue holding a boolean.
func BoolValue(b bool) AttrValue { return AttrValue{Kind: AttrBool, Bool: b} }

// NullValue returns an AttrValue holding JSON null.
func NullValue() AttrValue { return AttrValue{Kind: AttrNull} }

// String renders the value the way it would appear in a feed cell.
func (v AttrValue) String() string {
	switch v.Kind {
	case AttrNumber:
		b, _ := json.Marshal(v.Num)
		return string(b)
	case AttrBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case AttrNull:
		return ""
	default:
		return v.Str
	}
}

// MarshalJSON encodes the union as the bare JSON scalar it represents.
func (v AttrValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case AttrNumber:
		return json.Marshal(v.Num)
	case AttrBool:
		return json.Marshal(v.Bool)
	case AttrNull:
		return []byte("null"), nil
	default:
		return json.Marshal(v.Str)
	}
}

// UnmarshalJSON decodes any JSON scalar into the union. Arrays and objects
// are rejected; attributes are flat by contract.
func (v *AttrValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty attribute value")
	}
	switch trimmed[0] {
	case '"':
		v.Kind = AttrString
		return json.Unmarshal(trimmed, &v.Str)
	case 't', 'f':
		v.Kind = AttrBool
		return json.Unmarshal(trimmed, &v.Bool)
	case 'n':
		*v = AttrValue{Kind: AttrNull}
		return nil
	case '[', '{':
		return fmt.Errorf("attribute value must be a scalar, got %c", trimmed[0])
	default:
		v.Kind = AttrNumber
		return json.Unmarshal(trimmed, &v.Num)
	}
}

// Attributes is an insertion-ordered mapping of attribute name to value.
// The zero value is ready to use.
type Attributes struct {
	keys   []string
	values map[string]AttrValue
}

// Set stores a value under name. Setting an existing name overwrites the
// value but keeps its original position.
func (a *Attributes) Set(name string, v AttrValue) {
	if a.values == nil {
		a.values = make(map[string]AttrValue)
	}
	if _, exists := a.values[name]; !exists {
		a.keys = append(a.keys, name)
	}
	a.values[name] = v
}

// Get returns the value stored under name.
func (a *Attributes) Get(name string) (AttrValue, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Has reports whether name is present.
func (a *Attributes) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Len returns the number of attributes.
func (a *Attributes) Len() int { return len(a.keys) }

// Names returns attribute names in insertion order.
func (a *Attributes) Names() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// IsZero reports whether the bag is empty; used by encoding/json omitzero.
func (a Attributes) IsZero() bool { return len(a.keys) == 0 }

// MarshalJSON encodes the bag as a JSON object in insertion order.
func (a Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range a.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		val, err := json.Marshal(a.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving key order.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("custom attributes must be a JSON object")
	}
	*a = Attributes{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var v AttrValue
		if err := v.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("attribute %q: %w", key, err)
		}
		a.Set(key, v)
	}
	return nil
}
