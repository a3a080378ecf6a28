package types

import (
	"strconv"
	"strings"
)

// ValueType describes the kind of value an argument or option accepts.
type ValueType int

const (
	// None denotes a field which carries no value
	None ValueType = iota
	// String denotes a field whose value is kept as-is
	String
	// Boolean denotes a field whose value is decoded as a boolean literal
	Boolean
	// Integer denotes a field whose value is decoded as a whole number
	Integer
	// Float denotes a field whose value is decoded as a floating-point number
	Float
)

// String returns a human-readable name for the value type, used in error
// and usage messages.
func (t ValueType) String() string {
	switch t {
	case None:
		return "none"
	case Boolean:
		return "boolean"
	case Integer:
		return "integer"
	case Float:
		return "float"
	default:
		return "string"
	}
}

// Convert decodes a raw command-line token according to the value type.
// Numeric conversion normalizes a decimal comma to a dot before decoding.
// On decode failure the raw string is returned unchanged - it will fail
// Validate and surface as an invalid-value error instead of being silently
// accepted.
func (t ValueType) Convert(raw string) interface{} {
	switch t {
	case None:
		return nil
	case String:
		return raw
	case Boolean:
		if v, err := strconv.ParseBool(raw); err == nil {
			return v
		}
	case Integer:
		if v, err := strconv.ParseInt(NormalizeDecimal(raw), 10, 64); err == nil {
			return v
		}
	case Float:
		if v, err := strconv.ParseFloat(NormalizeDecimal(raw), 64); err == nil {
			return v
		}
	}

	return raw
}

// Validate reports whether value is of the native kind the value type
// produces on successful conversion.
func (t ValueType) Validate(value interface{}) bool {
	switch t {
	case None:
		return value == nil
	case String:
		_, ok := value.(string)
		return ok
	case Boolean:
		_, ok := value.(bool)
		return ok
	case Integer:
		_, ok := value.(int64)
		return ok
	case Float:
		_, ok := value.(float64)
		return ok
	}

	return false
}

// Default returns the canonical zero value for the value type.
func (t ValueType) Default() interface{} {
	switch t {
	case None:
		return nil
	case Boolean:
		return false
	case Integer:
		return int64(0)
	case Float:
		return float64(0)
	default:
		return ""
	}
}

// NormalizeDecimal rewrites a single decimal comma to a dot so that
// locale-style numeric literals ("3,14") decode like their dot forms.
// Values with more than one separator are left untouched.
func NormalizeDecimal(raw string) string {
	if strings.Count(raw, ",") == 1 && !strings.Contains(raw, ".") {
		return strings.Replace(raw, ",", ".", 1)
	}

	return raw
}

// Arity describes how a positional argument binds values.
type Arity int

const (
	// Required arguments must be supplied on the command line
	Required Arity = iota
	// Optional arguments may be omitted and fall back to their default
	Optional
	// Array arguments consume every remaining positional token. At most one
	// Array argument may exist per definition and it must be declared last.
	Array
)

func (a Arity) String() string {
	switch a {
	case Required:
		return "required"
	case Array:
		return "array"
	default:
		return "optional"
	}
}

// OptionArity describes how a flag-style option binds values.
type OptionArity int

const (
	// ValueRequired options must be supplied on the command line
	ValueRequired OptionArity = iota
	// ValueOptional options may be omitted
	ValueOptional
	// ValueArray options accumulate one value per occurrence
	ValueArray
)

func (a OptionArity) String() string {
	switch a {
	case ValueRequired:
		return "required"
	case ValueArray:
		return "array"
	default:
		return "optional"
	}
}

// DefaultValue is a tagged variant over a literal default and a deferred
// (computed) default. Computed defaults are evaluated once per parse, when
// missing fields are populated.
type DefaultValue struct {
	literal  interface{}
	provider func() interface{}
	set      bool
}

// NoDefault is the zero DefaultValue - the owning field falls back to the
// canonical default of its value type.
var NoDefault = DefaultValue{}

// Literal declares a default as an immediate value.
func Literal(value interface{}) DefaultValue {
	return DefaultValue{literal: value, set: true}
}

// Computed declares a default as a provider evaluated at defaulting time.
func Computed(provider func() interface{}) DefaultValue {
	return DefaultValue{provider: provider, set: true}
}

// IsSet reports whether a default was declared.
func (d DefaultValue) IsSet() bool {
	return d.set
}

// IsComputed reports whether the default is deferred.
func (d DefaultValue) IsComputed() bool {
	return d.provider != nil
}

// LiteralValue returns the declared literal value. The result is only
// meaningful when IsSet is true and IsComputed is false.
func (d DefaultValue) LiteralValue() interface{} {
	return d.literal
}

// Materialize resolves the default to a concrete value, falling back to the
// canonical default of t when none was declared.
func (d DefaultValue) Materialize(t ValueType) interface{} {
	if !d.set {
		return t.Default()
	}
	if d.provider != nil {
		return d.provider()
	}

	return d.literal
}
