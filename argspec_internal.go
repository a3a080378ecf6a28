package argspec

import (
	"strings"

	"github.com/nholm/argspec/parse"
	"github.com/nholm/argspec/types"
	"github.com/nholm/argspec/types/orderedmap"
	"github.com/nholm/argspec/types/queue"
	"github.com/nholm/argspec/util"
)

// parseRun is the per-invocation state of the tokenizing pass: a cursor
// over the raw vector, the accumulating result, the positional slot and
// the pending flag cluster awaiting a shared value. It never mutates the
// owning Definition.
type parseRun struct {
	def     *Definition
	state   parse.State
	result  *ParseResult
	pending *queue.Q[string]
	argSlot *orderedmap.Iterator[string, *ArgumentSpec]
}

func (r *parseRun) walk() (*ParseResult, error) {
	r.pending = queue.New[string]()

	for r.state.Advance() {
		current := r.state.CurrentArg()
		if isFlagToken(current) {
			if err := r.evalFlag(current); err != nil {
				return nil, err
			}
		} else if err := r.evalValue(current); err != nil {
			return nil, err
		}
	}

	// A cluster left pending at the end of input resolves with no value.
	if err := r.drainPending(nil); err != nil {
		return nil, err
	}

	r.collectMissing()
	if err := r.applyDefaults(); err != nil {
		return nil, err
	}

	return r.result, nil
}

// isFlagToken decides whether a token selects flags. A negative number
// literal is always a value token, which disambiguates numeric values from
// flags. A bare "-" is a value by common convention.
func isFlagToken(token string) bool {
	if token == "-" || !strings.HasPrefix(token, "-") {
		return false
	}

	return !util.IsNegativeNumeral(token)
}

func (r *parseRun) evalFlag(current string) error {
	// A new flag token finalizes any cluster still awaiting a value.
	if err := r.drainPending(nil); err != nil {
		return err
	}

	long := strings.HasPrefix(current, "--")
	name := strings.TrimLeft(current, "-")

	if eq := strings.IndexRune(name, '='); eq >= 0 {
		token, inline := name[:eq], name[eq+1:]
		if optName, spec, ok := r.def.OptionForFlag(token); ok {
			return r.resolveOption(optName, spec, token, &inline)
		}
		// Unknown flags are dropped, inline value and all.
		return nil
	}

	cluster := []string{name}
	if !long {
		cluster = splitCluster(name)
	}

	for _, token := range cluster {
		optName, spec, ok := r.def.OptionForFlag(token)
		if !ok {
			// Unmapped tokens are silently dropped from the cluster.
			continue
		}
		if spec.TypeOf == types.Boolean {
			// Boolean flags resolve immediately and never consume a
			// following token.
			value := "true"
			if err := r.resolveOption(optName, spec, token, &value); err != nil {
				return err
			}
			continue
		}
		r.pending.Enqueue(token)
	}

	if r.state.CurrentPos() >= r.state.Len()-1 {
		return r.drainPending(nil)
	}

	return nil
}

func (r *parseRun) evalValue(current string) error {
	if r.pending.Len() > 0 {
		// The token fans out as the shared value of every pending flag.
		return r.drainPending(&current)
	}

	return r.bindPositional(current)
}

// drainPending resolves every flag in the pending cluster against raw.
// A nil raw triggers default substitution downstream.
func (r *parseRun) drainPending(raw *string) error {
	for r.pending.Len() > 0 {
		token, _ := r.pending.Dequeue()
		optName, spec, ok := r.def.OptionForFlag(token)
		if !ok {
			continue
		}
		if err := r.resolveOption(optName, spec, token, raw); err != nil {
			return err
		}
	}

	return nil
}

func (r *parseRun) resolveOption(name string, spec *OptionSpec, token string, raw *string) error {
	var value interface{}
	if raw != nil {
		value = spec.TypeOf.Convert(*raw)
	} else {
		value = spec.Default.Materialize(spec.TypeOf)
		if s, ok := value.(string); ok && spec.TypeOf != types.String {
			value = spec.TypeOf.Convert(s)
		}
	}

	if spec.Arity == types.ValueArray {
		// An array default spreads element-wise into the accumulator.
		if elements, ok := value.([]interface{}); ok && raw == nil {
			for _, element := range elements {
				if err := r.appendOptionValue(name, spec, token, element); err != nil {
					return err
				}
			}
			r.result.markSeen(name)
			return nil
		}
		if err := r.appendOptionValue(name, spec, token, value); err != nil {
			return err
		}
		r.result.markSeen(name)
		return nil
	}

	if !spec.TypeOf.Validate(value) {
		return invalidErr("%w %v for flag '%s': expected %s", ErrInvalidValue, value, flagLabel(token), spec.TypeOf)
	}
	r.result.setValue(name, value)
	r.result.markSeen(name)

	return nil
}

func (r *parseRun) appendOptionValue(name string, spec *OptionSpec, token string, value interface{}) error {
	if !spec.TypeOf.Validate(value) {
		return invalidErr("%w %v for flag '%s': expected %s", ErrInvalidValue, value, flagLabel(token), spec.TypeOf)
	}
	r.result.appendValue(name, value)

	return nil
}

// bindPositional assigns a plain token to the current positional slot. The
// cursor only advances past non-Array slots - an Array slot keeps
// accumulating until the input ends.
func (r *parseRun) bindPositional(current string) error {
	if r.argSlot == nil {
		return invalidErr("%w: unexpected argument '%s'", ErrInvalidValue, current)
	}

	name, spec := *r.argSlot.Key, r.argSlot.Value
	value := spec.TypeOf.Convert(current)
	if !spec.TypeOf.Validate(value) {
		return invalidErr("%w '%s' for argument '%s': expected %s", ErrInvalidValue, current, name, spec.TypeOf)
	}

	if spec.Arity == types.Array {
		r.result.appendValue(name, value)
	} else {
		r.result.setValue(name, value)
		r.argSlot = r.argSlot.Next()
	}
	r.result.markSeen(name)

	return nil
}

// collectMissing records required fields absent from the raw input. It
// runs before defaulting so that defaults never mask a missing field.
func (r *parseRun) collectMissing() {
	for it := r.def.arguments.Front(); it != nil; it = it.Next() {
		if it.Value.Arity == types.Required && !r.result.Seen(*it.Key) {
			r.result.missing = append(r.result.missing, MissingField{Kind: KindArgument, Name: *it.Key})
		}
	}
	for it := r.def.options.Front(); it != nil; it = it.Next() {
		if it.Value.Arity == types.ValueRequired && !r.result.Seen(*it.Key) {
			r.result.missing = append(r.result.missing, MissingField{Kind: KindOption, Name: *it.Key})
		}
	}
}

// applyDefaults populates every field absent from the result with its
// materialized default. Computed defaults are evaluated here, once per
// parse, and validated - a bad provider surfaces as an Invalid error
// rather than a corrupt result.
func (r *parseRun) applyDefaults() error {
	for it := r.def.arguments.Front(); it != nil; it = it.Next() {
		spec := it.Value
		if err := r.defaultField(*it.Key, spec.TypeOf, spec.Arity == types.Array, spec.Default); err != nil {
			return err
		}
	}
	for it := r.def.options.Front(); it != nil; it = it.Next() {
		spec := it.Value
		if err := r.defaultField(*it.Key, spec.TypeOf, spec.Arity == types.ValueArray, spec.Default); err != nil {
			return err
		}
	}

	return nil
}

func (r *parseRun) defaultField(name string, typeOf types.ValueType, isArray bool, def types.DefaultValue) error {
	if r.result.Has(name) {
		return nil
	}

	if isArray {
		if !def.IsSet() {
			r.result.setValue(name, []interface{}{})
			return nil
		}
		elements, ok := def.Materialize(typeOf).([]interface{})
		if !ok {
			return invalidErr("%w: default for '%s' is not an array", ErrInvalidDefault, name)
		}
		for _, element := range elements {
			if !typeOf.Validate(element) {
				return invalidErr("%w: element %v of '%s' is not a valid %s", ErrInvalidDefault, element, name, typeOf)
			}
		}
		r.result.setValue(name, append([]interface{}{}, elements...))
		return nil
	}

	value := def.Materialize(typeOf)
	if !typeOf.Validate(value) {
		return invalidErr("%w: %v for '%s' is not a valid %s", ErrInvalidDefault, value, name, typeOf)
	}
	r.result.setValue(name, value)

	return nil
}

func splitCluster(name string) []string {
	runes := []rune(name)
	cluster := make([]string, 0, len(runes))
	for _, r := range runes {
		cluster = append(cluster, string(r))
	}

	return cluster
}
