package model

import (
	"encoding/binary"
	"math"
	"strconv"
	"time"
)

// GitHub is inconsistent about date-times: most resources carry RFC 3339 strings,
// while some (push webhook repositories, for one) carry seconds since the epoch.
// Both are accepted and normalized to UTC.

// Epoch-second bounds of the instants that have an RFC 3339 form
// (0000-01-01T00:00:00Z through 9999-12-31T23:59:59Z).
const (
	minEpochSeconds int64 = -62167219200
	maxEpochSeconds int64 = 253402300799
)

// DateTime is a UTC instant decoded from either an RFC 3339 string or an integer
// count of seconds since the Unix epoch. Equality and ordering are by instant.
type DateTime struct {
	t time.Time
}

// NewDateTime wraps a known-good instant, converting it to UTC.
func NewDateTime(t time.Time) DateTime {
	return DateTime{t: t.UTC()}
}

// Now returns the current instant, truncated to the second.
func Now() DateTime {
	return NewDateTime(time.Now().Truncate(time.Second))
}

// DateTimeFromUnix returns the instant sec seconds after the Unix epoch.
func DateTimeFromUnix(sec int64) (DateTime, error) {
	return fromEpoch(sec)
}

// DecodeDateTime decodes a node into a DateTime.
//
// When humanReadable is true the node may be a string or an integer. When it is
// false, as for compact binary encodings, the node must be an integer.
func DecodeDateTime(v Value, humanReadable bool) (DateTime, error) {
	switch v.Kind() {
	case KindString:
		if !humanReadable {
			return DateTime{}, mismatch(v)
		}
		return parseDateTime(v.s)
	case KindInt:
		return fromEpoch(v.i)
	case KindUint:
		if v.u > math.MaxInt64 {
			return DateTime{}, &DecodeError{Kind: RangeFailure, Value: v.String()}
		}
		return fromEpoch(int64(v.u))
	case KindFloat:
		// Integer literals too large for any integer type arrive as floats.
		if v.f == math.Trunc(v.f) && (v.f < math.MinInt64 || v.f >= math.MaxInt64) {
			return DateTime{}, &DecodeError{Kind: RangeFailure, Value: v.String()}
		}
		return DateTime{}, mismatch(v)
	case KindRaw:
		parsed, err := ParseJSON(v.raw)
		if err != nil {
			return DateTime{}, mismatch(v)
		}
		return DecodeDateTime(parsed, humanReadable)
	case KindNull, KindBool, KindArray, KindObject:
		return DateTime{}, mismatch(v)
	}
	return DateTime{}, mismatch(v)
}

func mismatch(v Value) *DecodeError {
	return &DecodeError{Kind: FormatMismatch, Value: v.String(), found: v.Kind()}
}

func parseDateTime(s string) (DateTime, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return DateTime{}, &DecodeError{Kind: ParseFailure, Value: strconv.Quote(s), Err: err}
	}
	t = t.UTC()
	if y := t.Year(); y < 0 || y > 9999 {
		return DateTime{}, &DecodeError{Kind: IllegalInstant, Value: strconv.Quote(s)}
	}
	return DateTime{t: t}, nil
}

func fromEpoch(sec int64) (DateTime, error) {
	return resolveInstant(strconv.FormatInt(sec, 10), epochCandidates(sec))
}

// epochCandidates lists every instant sec can denote. UTC has no folds, so the
// list holds at most one entry; it is empty outside the representable range.
func epochCandidates(sec int64) []time.Time {
	if sec < minEpochSeconds || sec > maxEpochSeconds {
		return nil
	}
	return []time.Time{time.Unix(sec, 0).UTC()}
}

// resolveInstant accepts exactly one candidate. Ambiguity is never resolved by
// picking a side.
func resolveInstant(raw string, candidates []time.Time) (DateTime, error) {
	switch len(candidates) {
	case 0:
		return DateTime{}, &DecodeError{Kind: IllegalInstant, Value: raw}
	case 1:
		return DateTime{t: candidates[0].UTC()}, nil
	}
	return DateTime{}, &DecodeError{
		Kind:       AmbiguousInstant,
		Value:      raw,
		Candidates: []time.Time{candidates[0], candidates[len(candidates)-1]},
	}
}

// Time returns the instant as a UTC time.Time.
func (d DateTime) Time() time.Time { return d.t }

// Unix returns the instant as seconds since the Unix epoch.
func (d DateTime) Unix() int64 { return d.t.Unix() }

// IsZero reports whether d is the zero DateTime.
func (d DateTime) IsZero() bool { return d.t.IsZero() }

// Equal reports whether d and o are the same instant.
func (d DateTime) Equal(o DateTime) bool { return d.t.Equal(o.t) }

// Before reports whether d is before o.
func (d DateTime) Before(o DateTime) bool { return d.t.Before(o.t) }

// After reports whether d is after o.
func (d DateTime) After(o DateTime) bool { return d.t.After(o.t) }

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d DateTime) Compare(o DateTime) int { return d.t.Compare(o.t) }

// Sub returns the duration d-o.
func (d DateTime) Sub(o DateTime) time.Duration { return d.t.Sub(o.t) }

// Format formats the instant with a time layout.
func (d DateTime) Format(layout string) string { return d.t.Format(layout) }

// String returns the RFC 3339 form, with fractional seconds only when present.
func (d DateTime) String() string { return d.t.Format(time.RFC3339Nano) }

// MarshalJSON writes the RFC 3339 form.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return String(d.String()).MarshalJSON()
}

// UnmarshalJSON accepts an RFC 3339 string or integer epoch seconds.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	v, err := ParseJSON(data)
	if err != nil {
		return err
	}
	parsed, err := DecodeDateTime(v, true)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML writes the RFC 3339 form.
func (d DateTime) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML accepts an RFC 3339 string or integer epoch seconds.
func (d *DateTime) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	v, err := FromGo(raw)
	if err != nil {
		return err
	}
	parsed, err := DecodeDateTime(v, true)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalBinary writes the compact form: whole epoch seconds as 8 big-endian bytes.
// It is also the gob encoding.
func (d DateTime) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(d.t.Unix()))
	return buf, nil
}

// UnmarshalBinary reads the compact form written by MarshalBinary.
func (d *DateTime) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return &DecodeError{Kind: FormatMismatch, Value: strconv.Quote(string(data)), found: KindRaw}
	}
	sec := int64(binary.BigEndian.Uint64(data))
	parsed, err := DecodeDateTime(Int(sec), false)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
