// Package model defines the GitHub wire records used by ghwire together with the
// pieces they share: a generic value tree, the flexible DateTime, and the sparse
// encoding used by request records.
package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindNull is the JSON null literal.
	KindNull Kind = iota
	// KindBool is true or false.
	KindBool
	// KindInt is a signed integer that fits in int64.
	KindInt
	// KindUint is an unsigned integer above math.MaxInt64.
	KindUint
	// KindFloat is any other number.
	KindFloat
	// KindString is a text value.
	KindString
	// KindArray is an ordered list of values.
	KindArray
	// KindObject is an ordered list of key/value members.
	KindObject
	// KindRaw is caller-supplied JSON emitted verbatim.
	KindRaw
)

var kindNames = map[Kind]string{
	KindNull:   "null",
	KindBool:   "boolean",
	KindInt:    "integer",
	KindUint:   "unsigned integer",
	KindFloat:  "floating point",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
	KindRaw:    "raw json",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Member is one key/value pair of an object Value.
type Member struct {
	Key   string
	Value Value
}

// Value is an immutable node of a JSON-like tree. The zero Value is null.
type Value struct {
	kind    Kind
	b       bool
	i       int64
	u       uint64
	f       float64
	s       string
	items   []Value
	members []Member
	raw     []byte
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps b.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps i.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Uint wraps u. Values that fit in int64 are stored as KindInt.
func Uint(u uint64) Value {
	if u <= math.MaxInt64 {
		return Int(int64(u))
	}
	return Value{kind: KindUint, u: u}
}

// Float wraps f.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String wraps s.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Strings wraps a list of strings as an array.
func Strings(ss []string) Value {
	items := make([]Value, len(ss))
	for i, s := range ss {
		items[i] = String(s)
	}
	return Value{kind: KindArray, items: items}
}

// Array wraps a copy of items.
func Array(items ...Value) Value {
	return Value{kind: KindArray, items: append([]Value{}, items...)}
}

// Object wraps a copy of members, keeping their order.
func Object(members ...Member) Value {
	return Value{kind: KindObject, members: append([]Member{}, members...)}
}

// Raw wraps already-encoded JSON. The bytes are copied and not validated here;
// marshaling compacts them and fails if they are not valid JSON.
func Raw(data []byte) Value {
	return Value{kind: KindRaw, raw: append([]byte{}, data...)}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the signed integer held by v.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsUint returns the unsigned integer held by v, including non-negative KindInt values.
func (v Value) AsUint() (uint64, bool) {
	switch {
	case v.kind == KindUint:
		return v.u, true
	case v.kind == KindInt && v.i >= 0:
		return uint64(v.i), true
	}
	return 0, false
}

// AsFloat returns the float held by v.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// Items returns a copy of the elements of an array value.
func (v Value) Items() []Value { return append([]Value{}, v.items...) }

// Members returns a copy of the members of an object value.
func (v Value) Members() []Member { return append([]Member{}, v.members...) }

// Len returns the number of elements or members, or 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.members)
	}
	return 0
}

// Get returns the first member of an object value named key.
func (v Value) Get(key string) (Value, bool) {
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Keys returns the member names of an object value in order.
func (v Value) Keys() []string {
	keys := make([]string, len(v.members))
	for i, m := range v.members {
		keys[i] = m.Key
	}
	return keys
}

// RawJSON returns the bytes of a raw value.
func (v Value) RawJSON() []byte { return append([]byte{}, v.raw...) }

// String renders v as compact JSON for diagnostics. Values that cannot be encoded
// are rendered with fmt.
func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		switch v.kind {
		case KindFloat:
			return strconv.FormatFloat(v.f, 'g', -1, 64)
		case KindRaw:
			return string(v.raw)
		}
		return fmt.Sprintf("<%s>", v.kind)
	}
	return string(data)
}

// MarshalJSON writes v, keeping object member order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) writeJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.i, 10))
	case KindUint:
		buf.WriteString(strconv.FormatUint(v.u, 10))
	case KindFloat:
		data, err := json.Marshal(v.f)
		if err != nil {
			return err
		}
		buf.Write(data)
	case KindString:
		return writeJSONString(buf, v.s)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, m.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := m.Value.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case KindRaw:
		var compact bytes.Buffer
		if err := json.Compact(&compact, v.raw); err != nil {
			return fmt.Errorf("ghwire/model: invalid raw json: %w", err)
		}
		buf.Write(compact.Bytes())
	default:
		return fmt.Errorf("ghwire/model: cannot encode value of %s", v.kind)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

// UnmarshalJSON replaces v with the tree parsed from data.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseJSON parses a single JSON document into a Value, keeping member order.
// Integer literals become KindInt or KindUint when they fit; anything else numeric
// becomes KindFloat.
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := parseJSONValue(dec)
	if err != nil {
		return Value{}, fmt.Errorf("parse json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, errors.New("parse json: unexpected data after top-level value")
	}
	return v, nil
}

func parseJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			items := []Value{}
			for dec.More() {
				item, err := parseJSONValue(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Value{kind: KindArray, items: items}, nil
		case '{':
			members := []Member{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("unexpected object key %v", keyTok)
				}
				val, err := parseJSONValue(dec)
				if err != nil {
					return Value{}, err
				}
				members = append(members, Member{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Value{kind: KindObject, members: members}, nil
		}
		return Value{}, fmt.Errorf("unexpected delimiter %v", t)
	case bool:
		return Bool(t), nil
	case json.Number:
		return numberValue(string(t)), nil
	case string:
		return String(t), nil
	case nil:
		return Null(), nil
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func numberValue(lit string) Value {
	if !strings.ContainsAny(lit, ".eE") {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return Int(i)
		}
		if u, err := strconv.ParseUint(lit, 10, 64); err == nil {
			return Uint(u)
		}
	}
	// ParseFloat returns ±Inf with a range error for oversized literals; the
	// infinity is kept so range checks downstream still see the magnitude.
	f, _ := strconv.ParseFloat(lit, 64)
	if f == math.MinInt64 && !strings.ContainsAny(lit, ".eE") {
		// Integer literals just below the int64 range round to -2^63.
		f = math.Nextafter(f, math.Inf(-1))
	}
	return Float(f)
}

// FromGo converts a generic Go value, as produced by encoding/json, yaml.v2 or
// GraphQL variable coercion, into a Value. Maps with unordered keys are emitted
// with sorted keys.
func FromGo(in interface{}) (Value, error) {
	switch t := in.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return Uint(uint64(t)), nil
	case uint8:
		return Uint(uint64(t)), nil
	case uint16:
		return Uint(uint64(t)), nil
	case uint32:
		return Uint(uint64(t)), nil
	case uint64:
		return Uint(t), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case json.Number:
		return numberValue(string(t)), nil
	case string:
		return String(t), nil
	case json.RawMessage:
		return Raw(t), nil
	case time.Time:
		return String(t.Format(time.RFC3339Nano)), nil
	case []string:
		return Strings(t), nil
	case []interface{}:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			v, err := FromGo(item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Value{kind: KindArray, items: items}, nil
	case yaml.MapSlice:
		members := make([]Member, 0, len(t))
		for _, item := range t {
			v, err := FromGo(item.Value)
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Key: fmt.Sprint(item.Key), Value: v})
		}
		return Value{kind: KindObject, members: members}, nil
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, 0, len(t))
		for _, k := range keys {
			v, err := FromGo(t[k])
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Key: k, Value: v})
		}
		return Value{kind: KindObject, members: members}, nil
	case map[interface{}]interface{}:
		byKey := make(map[string]interface{}, len(t))
		for k, val := range t {
			byKey[fmt.Sprint(k)] = val
		}
		return FromGo(byKey)
	}
	return Value{}, fmt.Errorf("ghwire/model: unsupported value type %T", in)
}

// ParseYAML parses a YAML document into a Value. Top-level mappings keep their
// member order.
func ParseYAML(data []byte) (Value, error) {
	var ordered yaml.MapSlice
	if err := yaml.Unmarshal(data, &ordered); err == nil && ordered != nil {
		return FromGo(ordered)
	}
	var generic interface{}
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return Value{}, fmt.Errorf("parse yaml: %w", err)
	}
	return FromGo(generic)
}
