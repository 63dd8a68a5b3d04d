package model

import "encoding/json"

// Optional holds a value that has either been set or not. The zero Optional is
// unset; an Optional set to an empty value is still set.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional set to v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Get returns the value and whether it was set.
func (o Optional[T]) Get() (T, bool) { return o.value, o.set }

// IsSet reports whether a value was set.
func (o Optional[T]) IsSet() bool { return o.set }

// OrElse returns the value, or def when unset.
func (o Optional[T]) OrElse(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// Field is one slot of a request's wire layout: the wire name and, when present,
// the value to emit under it.
type Field struct {
	Name    string
	Value   Value
	Present bool
}

// Required returns a slot that is always emitted.
func Required(name string, v Value) Field {
	return Field{Name: name, Value: v, Present: true}
}

// OptionalField returns a slot that is emitted only when o is set.
func OptionalField[T any](name string, o Optional[T], conv func(T) Value) Field {
	v, ok := o.Get()
	if !ok {
		return Field{Name: name}
	}
	return Field{Name: name, Value: conv(v), Present: true}
}

// EncodeFields builds an object from the present slots, in slot order.
func EncodeFields(fields ...Field) Value {
	members := make([]Member, 0, len(fields))
	for _, f := range fields {
		if f.Present {
			members = append(members, Member{Key: f.Name, Value: f.Value})
		}
	}
	return Object(members...)
}

// Encoder is implemented by request records with a sparse wire layout.
type Encoder interface {
	Fields() []Field
}

// Encode returns the wire object of a request record.
func Encode(r Encoder) Value {
	return EncodeFields(r.Fields()...)
}

// marshalFields is the MarshalJSON body shared by request records.
func marshalFields(r Encoder) ([]byte, error) {
	return Encode(r).MarshalJSON()
}

func optString(name string, o Optional[string]) Field {
	return OptionalField(name, o, String)
}

func optBool(name string, o Optional[bool]) Field {
	return OptionalField(name, o, Bool)
}

func optStrings(name string, o Optional[[]string]) Field {
	return OptionalField(name, o, Strings)
}

func optUint(name string, o Optional[uint64]) Field {
	return OptionalField(name, o, Uint)
}

func optRaw(name string, o Optional[json.RawMessage]) Field {
	return OptionalField(name, o, func(raw json.RawMessage) Value { return Raw(raw) })
}

func cloneStrings(ss []string) []string {
	if ss == nil {
		return nil
	}
	return append([]string{}, ss...)
}

func cloneOptStrings(o Optional[[]string]) Optional[[]string] {
	if v, ok := o.Get(); ok {
		return Some(append([]string{}, v...))
	}
	return o
}

func cloneOptRaw(o Optional[json.RawMessage]) Optional[json.RawMessage] {
	if v, ok := o.Get(); ok {
		return Some(json.RawMessage(append([]byte{}, v...)))
	}
	return o
}
