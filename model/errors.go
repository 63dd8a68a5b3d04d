package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for DateTime decoding. A *DecodeError matches exactly one of
// them through errors.Is.
var (
	// ErrFormatMismatch is returned when a node is neither a string nor an integer.
	ErrFormatMismatch = errors.New("ghwire/model: format mismatch")

	// ErrParseFailure is returned when a string is not an RFC 3339 date-time.
	ErrParseFailure = errors.New("ghwire/model: date-time parse failure")

	// ErrRangeFailure is returned when an integer does not fit in int64 seconds.
	ErrRangeFailure = errors.New("ghwire/model: epoch seconds out of range")

	// ErrIllegalInstant is returned when seconds do not name a representable instant.
	ErrIllegalInstant = errors.New("ghwire/model: illegal timestamp")

	// ErrAmbiguousInstant is returned when seconds name more than one instant.
	ErrAmbiguousInstant = errors.New("ghwire/model: ambiguous timestamp")
)

// DecodeErrorKind classifies a DecodeError.
type DecodeErrorKind int

const (
	// FormatMismatch: the node kind is not accepted.
	FormatMismatch DecodeErrorKind = iota + 1
	// ParseFailure: malformed date-time text.
	ParseFailure
	// RangeFailure: integer outside the signed epoch-seconds range.
	RangeFailure
	// IllegalInstant: integer with no corresponding instant.
	IllegalInstant
	// AmbiguousInstant: integer with several candidate instants.
	AmbiguousInstant
)

func (k DecodeErrorKind) String() string {
	switch k {
	case FormatMismatch:
		return "format mismatch"
	case ParseFailure:
		return "parse failure"
	case RangeFailure:
		return "range failure"
	case IllegalInstant:
		return "illegal instant"
	case AmbiguousInstant:
		return "ambiguous instant"
	}
	return fmt.Sprintf("DecodeErrorKind(%d)", int(k))
}

func (k DecodeErrorKind) sentinel() error {
	switch k {
	case FormatMismatch:
		return ErrFormatMismatch
	case ParseFailure:
		return ErrParseFailure
	case RangeFailure:
		return ErrRangeFailure
	case IllegalInstant:
		return ErrIllegalInstant
	case AmbiguousInstant:
		return ErrAmbiguousInstant
	}
	return nil
}

// DecodeError reports why a date-time node could not be decoded.
type DecodeError struct {
	Kind DecodeErrorKind
	// Value is the offending node rendered as JSON.
	Value string
	// Field is the dotted path of the record field, when known.
	Field string
	// Candidates holds the competing instants of an AmbiguousInstant error.
	Candidates []time.Time
	// Err is the underlying parser error of a ParseFailure.
	Err error

	found Kind
}

func (e *DecodeError) Error() string {
	var msg string
	switch e.Kind {
	case FormatMismatch:
		msg = fmt.Sprintf("invalid type: %s %s, expected date-time string or seconds since Unix epoch", e.found, e.Value)
	case ParseFailure:
		msg = fmt.Sprintf("invalid date-time %s: %v", e.Value, e.Err)
	case RangeFailure:
		msg = fmt.Sprintf("value out of range for seconds since Unix epoch: %s", e.Value)
	case IllegalInstant:
		msg = fmt.Sprintf("value is not a legal timestamp: %s", e.Value)
	case AmbiguousInstant:
		candidates := make([]string, len(e.Candidates))
		for i, c := range e.Candidates {
			candidates[i] = c.Format(time.RFC3339Nano)
		}
		msg = fmt.Sprintf("value is an ambiguous timestamp: %s, could be either of %s", e.Value, strings.Join(candidates, ", "))
	default:
		msg = fmt.Sprintf("%s: %s", e.Kind, e.Value)
	}
	if e.Field != "" {
		return fmt.Sprintf("field %q: %s", e.Field, msg)
	}
	return msg
}

// Is matches the sentinel for e.Kind.
func (e *DecodeError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && s == target
}

// Unwrap returns the underlying parser error, if any.
func (e *DecodeError) Unwrap() error { return e.Err }
