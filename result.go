package argspec

import (
	"fmt"
	"time"

	"github.com/nholm/argspec/util"
)

// FieldKind distinguishes positional arguments from options in messages.
type FieldKind string

const (
	KindArgument FieldKind = "argument"
	KindOption   FieldKind = "option"
)

// MissingField names a required field absent from the raw input.
type MissingField struct {
	Kind FieldKind
	Name string
}

// ParseResult is the typed outcome of a single parse. After a successful
// parse every declared argument and option is present - explicitly bound
// or populated from its default. A ParseResult is exclusive to its
// invocation and never shared.
type ParseResult struct {
	values  map[string]interface{}
	present map[string]bool
	missing []MissingField
}

func newParseResult() *ParseResult {
	return &ParseResult{
		values:  map[string]interface{}{},
		present: map[string]bool{},
	}
}

// Has reports whether name exists in the result map.
func (r *ParseResult) Has(name string) bool {
	_, found := r.values[name]

	return found
}

// Seen reports whether name was bound from the raw input, as opposed to
// populated from its default.
func (r *ParseResult) Seen(name string) bool {
	return r.present[name]
}

// Get returns the typed value stored under name.
func (r *ParseResult) Get(name string) (interface{}, bool) {
	value, found := r.values[name]

	return value, found
}

// Missing returns the required fields absent from the raw input, in
// declaration order (arguments before options).
func (r *ParseResult) Missing() []MissingField {
	return r.missing
}

// String returns the value of a String-typed field.
func (r *ParseResult) String(name string) (string, error) {
	value, found := r.values[name]
	if !found {
		return "", fmt.Errorf(FmtErrorWithString, ErrFieldNotFound, name)
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s holds %T, not string", ErrTypeMismatch, name, value)
	}

	return s, nil
}

// Bool returns the value of a Boolean-typed field.
func (r *ParseResult) Bool(name string) (bool, error) {
	value, found := r.values[name]
	if !found {
		return false, fmt.Errorf(FmtErrorWithString, ErrFieldNotFound, name)
	}
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s holds %T, not bool", ErrTypeMismatch, name, value)
	}

	return b, nil
}

// Int returns the value of an Integer-typed field.
func (r *ParseResult) Int(name string) (int64, error) {
	value, found := r.values[name]
	if !found {
		return 0, fmt.Errorf(FmtErrorWithString, ErrFieldNotFound, name)
	}
	n, ok := value.(int64)
	if !ok {
		return 0, fmt.Errorf("%w: %s holds %T, not int64", ErrTypeMismatch, name, value)
	}

	return n, nil
}

// Float returns the value of a Float-typed field.
func (r *ParseResult) Float(name string) (float64, error) {
	value, found := r.values[name]
	if !found {
		return 0, fmt.Errorf(FmtErrorWithString, ErrFieldNotFound, name)
	}
	f, ok := value.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %s holds %T, not float64", ErrTypeMismatch, name, value)
	}

	return f, nil
}

// Values returns the accumulated values of an array-arity field.
func (r *ParseResult) Values(name string) ([]interface{}, error) {
	value, found := r.values[name]
	if !found {
		return nil, fmt.Errorf(FmtErrorWithString, ErrFieldNotFound, name)
	}
	list, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %s holds %T, not an array", ErrTypeMismatch, name, value)
	}

	return list, nil
}

// Strings returns the accumulated values of a String-typed array field.
func (r *ParseResult) Strings(name string) ([]string, error) {
	list, err := r.Values(name)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(list))
	for _, value := range list {
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s holds %T elements, not string", ErrTypeMismatch, name, value)
		}
		out = append(out, s)
	}

	return out, nil
}

// Time decodes a String-typed field as a timestamp in any commonly used
// layout.
func (r *ParseResult) Time(name string) (time.Time, error) {
	s, err := r.String(name)
	if err != nil {
		return time.Time{}, err
	}
	t, err := util.ParseTime(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %s", ErrTypeMismatch, name, err.Error())
	}

	return t, nil
}

func (r *ParseResult) setValue(name string, value interface{}) {
	r.values[name] = value
}

func (r *ParseResult) appendValue(name string, value interface{}) {
	list, _ := r.values[name].([]interface{})
	r.values[name] = append(list, value)
}

func (r *ParseResult) markSeen(name string) {
	r.present[name] = true
}
