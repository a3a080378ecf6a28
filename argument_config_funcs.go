package argspec

import (
	"github.com/nholm/argspec/types"
)

// WithDescription the description will be used in usage output presented to the user
func WithDescription(description string) ConfigureArgumentFunc {
	return func(spec *ArgumentSpec, err *error) {
		spec.Description = description
	}
}

// WithType sets the value type the argument decodes to
func WithType(typeOf types.ValueType) ConfigureArgumentFunc {
	return func(spec *ArgumentSpec, err *error) {
		spec.TypeOf = typeOf
	}
}

// WithArity sets how the argument binds values - Required, Optional or
// Array. An Array argument consumes every remaining positional token and
// must be the last declared slot.
func WithArity(arity types.Arity) ConfigureArgumentFunc {
	return func(spec *ArgumentSpec, err *error) {
		spec.Arity = arity
	}
}

// WithDefault sets a literal default, validated against the declared type
// when the argument is added to a definition
func WithDefault(value interface{}) ConfigureArgumentFunc {
	return func(spec *ArgumentSpec, err *error) {
		spec.Default = types.Literal(value)
	}
}

// WithComputedDefault sets a deferred default, evaluated once per parse at
// defaulting time
func WithComputedDefault(provider func() interface{}) ConfigureArgumentFunc {
	return func(spec *ArgumentSpec, err *error) {
		spec.Default = types.Computed(provider)
	}
}
