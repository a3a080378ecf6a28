package argspec

import (
	"github.com/nholm/argspec/types"
)

// WithOptionDescription the description will be used in usage output presented to the user
func WithOptionDescription(description string) ConfigureOptionFunc {
	return func(spec *OptionSpec, err *error) {
		spec.Description = description
	}
}

// WithOptionType sets the value type the option decodes to
func WithOptionType(typeOf types.ValueType) ConfigureOptionFunc {
	return func(spec *OptionSpec, err *error) {
		spec.TypeOf = typeOf
	}
}

// WithOptionArity sets how the option binds values - ValueRequired,
// ValueOptional or ValueArray. A ValueArray option accumulates one value
// per occurrence on the command line.
func WithOptionArity(arity types.OptionArity) ConfigureOptionFunc {
	return func(spec *OptionSpec, err *error) {
		spec.Arity = arity
	}
}

// WithOptionDefault sets a literal default, validated against the declared
// type when the option is added to a definition
func WithOptionDefault(value interface{}) ConfigureOptionFunc {
	return func(spec *OptionSpec, err *error) {
		spec.Default = types.Literal(value)
	}
}

// WithComputedOptionDefault sets a deferred default, evaluated once per
// parse at defaulting time
func WithComputedOptionDefault(provider func() interface{}) ConfigureOptionFunc {
	return func(spec *OptionSpec, err *error) {
		spec.Default = types.Computed(provider)
	}
}

// WithFlags sets the flag tokens which select the option on the command
// line. Tokens are registered without their dash prefix - a single
// character token is a short flag, anything longer is a long flag.
func WithFlags(flags ...string) ConfigureOptionFunc {
	return func(spec *OptionSpec, err *error) {
		spec.Flags = flags
	}
}

// WithDerivedFlag derives a long flag token from the option name at
// registration time using converter, or DefaultFlagNameConverter when nil.
func WithDerivedFlag(converter FlagNameConverter) ConfigureOptionFunc {
	return func(spec *OptionSpec, err *error) {
		if converter == nil {
			converter = DefaultFlagNameConverter
		}
		spec.NameConverter = converter
	}
}
