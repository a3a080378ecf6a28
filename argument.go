package argspec

import (
	"fmt"

	"github.com/nholm/argspec/types"
)

// ArgumentSpec describes a positional argument. Specs are validated when
// added to a Definition and are immutable afterwards.
type ArgumentSpec struct {
	Description string
	TypeOf      types.ValueType
	Arity       types.Arity
	Default     types.DefaultValue
}

// NewArgumentSpec convenience initialization method to describe positional
// arguments. Alternatively, use NewArgSpec to configure an ArgumentSpec
// using option functions.
func NewArgumentSpec(typeOf types.ValueType, arity types.Arity, description string, defaultValue types.DefaultValue) *ArgumentSpec {
	return &ArgumentSpec{
		Description: description,
		TypeOf:      typeOf,
		Arity:       arity,
		Default:     defaultValue,
	}
}

// NewArgSpec convenience initialization method to configure positional arguments
func NewArgSpec(configs ...ConfigureArgumentFunc) *ArgumentSpec {
	spec := &ArgumentSpec{}
	for _, config := range configs {
		config(spec, nil)
	}

	return spec
}

// Set configures the ArgumentSpec with the provided ConfigureArgumentFunc(s)
// and returns an error if a configuration results in an error.
func (a *ArgumentSpec) Set(configs ...ConfigureArgumentFunc) error {
	var err error
	for _, config := range configs {
		config(a, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// String returns a string representation of the ArgumentSpec
func (a *ArgumentSpec) String() string {
	return fmt.Sprintf("%s %s (%s)", a.description(), a.TypeOf, a.Arity)
}

func (a *ArgumentSpec) description() string {
	if a.Default.IsSet() && !a.Default.IsComputed() {
		return fmt.Sprintf("\"%s\" (defaults to: %v)", a.Description, a.Default.LiteralValue())
	}

	return fmt.Sprintf("\"%s\"", a.Description)
}
