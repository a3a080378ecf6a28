// Package argspec provides declarative command-line grammar processing.
//
// A Definition describes a command's positional arguments and flag-style
// options (names, arity, value type, defaults). Parse converts a raw
// argument vector into a validated, typed result set, and Execute runs an
// interception chain for cross-cutting flags (such as help) before the
// command's primary body. Handlers may short-circuit the whole invocation.
//
// Value types are one of None, String, Boolean, Integer and Float. The
// parser resolves ambiguous tokens itself: a negative number literal is
// never a flag, a bare token is the value of a pending flag before it is
// the next positional argument, and boolean flags never consume a
// following token.
package argspec

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/nholm/argspec/parse"
	"github.com/nholm/argspec/types"
	"github.com/nholm/argspec/types/orderedmap"
)

// Definition owns the ordered argument specs, the named option specs, the
// flag index and the handler chain of a single command. Build it once -
// specs are read-only after building, so independent callers may parse the
// same definition concurrently.
type Definition struct {
	name        string
	description string
	arguments   *orderedmap.OrderedMap[string, *ArgumentSpec]
	options     *orderedmap.OrderedMap[string, *OptionSpec]
	flagIndex   map[string]string
	handlers    []handlerEntry
	runner      RunnerFunc
	sink        OutputSink
	arrayArg    string
	noHelp      bool
}

// NewDefinition creates a Definition and applies the given option
// functions. Unless the definition is itself the help definition (or built
// with WithoutHelp), a boolean help option bound to -h/--help is
// registered, wired to a handler which renders usage and stops with
// Success.
func NewDefinition(name string, configs ...ConfigureDefinitionFunc) (*Definition, error) {
	if name == "" {
		return nil, fmt.Errorf(FmtErrorWithString, ErrEmptyName, "definition")
	}

	def := &Definition{
		name:      name,
		arguments: orderedmap.NewOrderedMap[string, *ArgumentSpec](),
		options:   orderedmap.NewOrderedMap[string, *OptionSpec](),
		flagIndex: map[string]string{},
		sink:      NewStdSink(),
	}

	var err error
	for _, config := range configs {
		config(def, &err)
		if err != nil {
			return nil, err
		}
	}

	if err := def.ensureHelp(); err != nil {
		return nil, err
	}

	return def, nil
}

// Name returns the command name of the definition.
func (d *Definition) Name() string {
	return d.name
}

// Description returns the command description of the definition.
func (d *Definition) Description() string {
	return d.description
}

// Sink returns the output sink handlers and the primary body write to.
func (d *Definition) Sink() OutputSink {
	return d.sink
}

// SetSink replaces the output sink. Must be called before Execute.
func (d *Definition) SetSink(sink OutputSink) {
	d.sink = sink
}

// AddArgument declares a positional argument. Arguments are consumed in
// declaration order. Definition errors (empty or duplicate name, a second
// Array argument, an argument declared after an Array argument, an invalid
// literal default) are returned immediately - a malformed schema must not
// run.
func (d *Definition) AddArgument(name string, spec *ArgumentSpec) error {
	if err := d.checkName(name); err != nil {
		return err
	}
	if d.arrayArg != "" {
		if spec.Arity == types.Array {
			return fmt.Errorf(FmtErrorWithString, ErrMultipleArrayArgs, name)
		}
		return fmt.Errorf(FmtErrorWithString, ErrArrayNotLast, d.arrayArg)
	}
	if err := validateDefault(spec.TypeOf, spec.Arity == types.Array, spec.Default, name); err != nil {
		return err
	}

	if spec.Arity == types.Array {
		d.arrayArg = name
	}
	d.arguments.Set(name, spec)

	return nil
}

// AddOption declares a flag-style option. In addition to the argument
// rules, the flag set must be non-empty, every token must be unique across
// the whole definition after dash-stripping, and no token may start with a
// digit.
func (d *Definition) AddOption(name string, spec *OptionSpec) error {
	if err := d.checkName(name); err != nil {
		return err
	}
	if len(spec.Flags) == 0 && spec.NameConverter != nil {
		spec.Flags = []string{spec.NameConverter(name)}
	}
	if len(spec.Flags) == 0 {
		return fmt.Errorf(FmtErrorWithString, ErrEmptyFlags, name)
	}
	if err := validateDefault(spec.TypeOf, spec.Arity == types.ValueArray, spec.Default, name); err != nil {
		return err
	}

	tokens := make([]string, 0, len(spec.Flags))
	for _, flag := range spec.Flags {
		token := strings.TrimLeft(flag, "-")
		if token == "" {
			return fmt.Errorf(FmtErrorWithString, ErrEmptyFlags, name)
		}
		if unicode.IsDigit([]rune(token)[0]) {
			return fmt.Errorf(FmtErrorWithString, ErrFlagLeadingDigit, token)
		}
		if owner, exists := d.flagIndex[token]; exists {
			return fmt.Errorf("%w: %s (owned by option %q)", ErrDuplicateFlag, token, owner)
		}
		tokens = append(tokens, token)
	}

	// The index is only populated once the whole flag set is known to be
	// valid, so a failed AddOption leaves the definition untouched.
	for _, token := range tokens {
		d.flagIndex[token] = name
	}
	spec.Flags = tokens
	d.options.Set(name, spec)

	return nil
}

// ArgumentNames returns the positional argument names in declaration order.
func (d *Definition) ArgumentNames() []string {
	return d.arguments.Keys()
}

// OptionNames returns the option names in declaration order.
func (d *Definition) OptionNames() []string {
	return d.options.Keys()
}

// GetArgument returns the spec of the named positional argument.
func (d *Definition) GetArgument(name string) (*ArgumentSpec, error) {
	spec, found := d.arguments.Get(name)
	if !found {
		return nil, fmt.Errorf(FmtErrorWithString, ErrFieldNotFound, name)
	}

	return spec, nil
}

// GetOption returns the spec of the named option.
func (d *Definition) GetOption(name string) (*OptionSpec, error) {
	spec, found := d.options.Get(name)
	if !found {
		return nil, fmt.Errorf(FmtErrorWithString, ErrFieldNotFound, name)
	}

	return spec, nil
}

// OptionForFlag resolves a dash-stripped flag token to its option name and
// spec.
func (d *Definition) OptionForFlag(token string) (string, *OptionSpec, bool) {
	name, found := d.flagIndex[token]
	if !found {
		return "", nil, false
	}
	spec, _ := d.options.Get(name)

	return name, spec, true
}

// Parse consumes a raw argument vector (program and command name already
// stripped by the caller) and produces a fresh ParseResult. Every declared
// argument and option is populated - explicitly, or with its materialized
// default after the pass. Invalid values fail with an Invalid-coded error.
func (d *Definition) Parse(args []string) (*ParseResult, error) {
	run := &parseRun{
		def:     d,
		state:   parse.NewState(args),
		result:  newParseResult(),
		argSlot: d.arguments.Front(),
	}

	return run.walk()
}

// ParseString splits a command line with shell-style word splitting and
// calls Parse on the resulting vector.
func (d *Definition) ParseString(argString string) (*ParseResult, error) {
	args, err := parse.Split(argString)
	if err != nil {
		return nil, invalidErr(FmtErrorWithString, ErrInvalidValue, err.Error())
	}

	return d.Parse(args)
}

func (d *Definition) checkName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if d.arguments.Has(name) || d.options.Has(name) {
		return fmt.Errorf(FmtErrorWithString, ErrDuplicateName, name)
	}

	return nil
}

// ensureHelp registers the cross-cutting help option and its handler.
// A definition which already claims the help name or one of its flags is
// assumed to take ownership of help itself.
func (d *Definition) ensureHelp() error {
	if d.noHelp || d.name == "help" {
		return nil
	}
	if d.arguments.Has("help") || d.options.Has("help") {
		return nil
	}
	if _, taken := d.flagIndex["h"]; taken {
		return nil
	}
	if _, taken := d.flagIndex["help"]; taken {
		return nil
	}

	err := d.AddOption("help", NewOptionSpec(
		types.Boolean, types.ValueOptional, "display usage information", types.Literal(false), "h", "help"))
	if err != nil {
		return err
	}
	d.AddHandler("help", helpHandler)

	return nil
}

func validateDefault(typeOf types.ValueType, isArray bool, def types.DefaultValue, name string) error {
	// Computed defaults are only materialized at defaulting time and are
	// validated there.
	if !def.IsSet() || def.IsComputed() {
		return nil
	}

	value := def.LiteralValue()
	if isArray {
		elements, ok := value.([]interface{})
		if !ok {
			return fmt.Errorf("%w: %s expects an array default", ErrInvalidDefault, name)
		}
		for _, element := range elements {
			if !typeOf.Validate(element) {
				return fmt.Errorf("%w: element %v of %s is not a valid %s", ErrInvalidDefault, element, name, typeOf)
			}
		}
		return nil
	}

	if !typeOf.Validate(value) {
		return fmt.Errorf("%w: %v is not a valid %s for %s", ErrInvalidDefault, value, typeOf, name)
	}

	return nil
}
