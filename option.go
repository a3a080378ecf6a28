package argspec

import (
	"fmt"
	"strings"

	"github.com/nholm/argspec/types"
)

// OptionSpec describes a flag-style option. Flags are bare tokens without
// their dash prefix: a token of length 1 is a "short" flag (combinable in
// a cluster such as -abc), longer tokens are "long" flags (--name).
type OptionSpec struct {
	Description string
	TypeOf      types.ValueType
	Arity       types.OptionArity
	Default     types.DefaultValue
	Flags       []string
	// NameConverter, when set, derives a long flag token from the option
	// name at registration time when Flags is empty.
	NameConverter FlagNameConverter
}

// NewOptionSpec convenience initialization method to describe options.
// Alternatively, use NewOptSpec to configure an OptionSpec using option
// functions.
func NewOptionSpec(typeOf types.ValueType, arity types.OptionArity, description string, defaultValue types.DefaultValue, flags ...string) *OptionSpec {
	return &OptionSpec{
		Description: description,
		TypeOf:      typeOf,
		Arity:       arity,
		Default:     defaultValue,
		Flags:       flags,
	}
}

// NewOptSpec convenience initialization method to configure options
func NewOptSpec(configs ...ConfigureOptionFunc) *OptionSpec {
	spec := &OptionSpec{}
	for _, config := range configs {
		config(spec, nil)
	}

	return spec
}

// Set configures the OptionSpec with the provided ConfigureOptionFunc(s)
// and returns an error if a configuration results in an error.
func (o *OptionSpec) Set(configs ...ConfigureOptionFunc) error {
	var err error
	for _, config := range configs {
		config(o, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// ShortFlags returns the single-character flag tokens of the option.
func (o *OptionSpec) ShortFlags() []string {
	var flags []string
	for _, f := range o.Flags {
		if len([]rune(f)) == 1 {
			flags = append(flags, f)
		}
	}

	return flags
}

// LongFlags returns the flag tokens of the option with two or more characters.
func (o *OptionSpec) LongFlags() []string {
	var flags []string
	for _, f := range o.Flags {
		if len([]rune(f)) > 1 {
			flags = append(flags, f)
		}
	}

	return flags
}

// String returns a string representation of the OptionSpec
func (o *OptionSpec) String() string {
	labels := make([]string, 0, len(o.Flags))
	for _, f := range o.Flags {
		labels = append(labels, flagLabel(f))
	}

	return fmt.Sprintf("%s %s %s (%s)", strings.Join(labels, " or "), o.description(), o.TypeOf, o.Arity)
}

func (o *OptionSpec) description() string {
	if o.Default.IsSet() && !o.Default.IsComputed() {
		return fmt.Sprintf("\"%s\" (defaults to: %v)", o.Description, o.Default.LiteralValue())
	}

	return fmt.Sprintf("\"%s\"", o.Description)
}
