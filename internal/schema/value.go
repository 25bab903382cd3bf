package schema

import (
	"strconv"
	"strings"
)

// OptionType is the closed set of value kinds an option may declare.
type OptionType int

const (
	OptionString OptionType = iota
	OptionNumber
	OptionBool
	OptionArray
)

func (t OptionType) String() string {
	switch t {
	case OptionString:
		return "string"
	case OptionNumber:
		return "number"
	case OptionBool:
		return "boolean"
	case OptionArray:
		return "array"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the declared option types.
func (t OptionType) Valid() bool {
	return t >= OptionString && t <= OptionArray
}

// ArgumentType is the closed set of kinds a positional argument may declare.
type ArgumentType int

const (
	ArgString ArgumentType = iota
	ArgNumber
	ArgFile
	ArgURL
)

func (t ArgumentType) String() string {
	switch t {
	case ArgString:
		return "string"
	case ArgNumber:
		return "number"
	case ArgFile:
		return "file"
	case ArgURL:
		return "url"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the declared argument types.
func (t ArgumentType) Valid() bool {
	return t >= ArgString && t <= ArgURL
}

// Value is a typed option value. Exactly one concrete variant exists per
// OptionType, so consumers can switch exhaustively instead of casting.
type Value interface {
	Kind() OptionType
	// Display returns the value rendered the way help and text output show it.
	Display() string
}

type StringValue string

func (StringValue) Kind() OptionType  { return OptionString }
func (v StringValue) Display() string { return string(v) }

type NumberValue float64

func (NumberValue) Kind() OptionType { return OptionNumber }
func (v NumberValue) Display() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

// Int returns the value truncated to an int, which is what consumers of
// port/timeout style options want.
func (v NumberValue) Int() int { return int(v) }

type BoolValue bool

func (BoolValue) Kind() OptionType  { return OptionBool }
func (v BoolValue) Display() string { return strconv.FormatBool(bool(v)) }

type ArrayValue []string

func (ArrayValue) Kind() OptionType  { return OptionArray }
func (v ArrayValue) Display() string { return strings.Join(v, ",") }

// String unwraps a Value into its string form for consumers that only care
// about text (option choices, config merging). ok is false for nil.
func String(v Value) (string, bool) {
	if v == nil {
		return "", false
	}
	return v.Display(), true
}

// Bool unwraps a BoolValue; any other variant reports false.
func Bool(v Value) bool {
	b, ok := v.(BoolValue)
	return ok && bool(b)
}

// Number unwraps a NumberValue.
func Number(v Value) (float64, bool) {
	n, ok := v.(NumberValue)
	return float64(n), ok
}
