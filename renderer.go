package argspec

import (
	"fmt"
	"io"
	"strings"
)

// DefaultRenderer produces plain usage text from the resolved specs of a
// Definition. It is deliberately unstyled - collaborators which want
// colors or tags build their own rendering on top of the exposed specs.
type DefaultRenderer struct {
	def *Definition
}

func NewRenderer(def *Definition) *DefaultRenderer {
	return &DefaultRenderer{def: def}
}

// ArgumentUsage generates a usage line for a positional argument: name,
// description, value type, default (if any) and whether it is required.
func (r *DefaultRenderer) ArgumentUsage(name string, spec *ArgumentSpec) string {
	usage := name
	if spec.Description != "" {
		usage += " \"" + spec.Description + "\""
	}
	usage += " <" + spec.TypeOf.String() + ">"
	if spec.Default.IsSet() && !spec.Default.IsComputed() {
		usage += fmt.Sprintf(" (defaults to: %v)", spec.Default.LiteralValue())
	}

	return usage + " (" + spec.Arity.String() + ")"
}

// OptionUsage generates a usage line for an option: its long and short
// flags, description, value type, default (if any) and arity.
func (r *DefaultRenderer) OptionUsage(name string, spec *OptionSpec) string {
	labels := make([]string, 0, len(spec.Flags))
	for _, flag := range spec.LongFlags() {
		labels = append(labels, "--"+flag)
	}
	for _, flag := range spec.ShortFlags() {
		labels = append(labels, "-"+flag)
	}

	usage := strings.Join(labels, " or ")
	if spec.Description != "" {
		usage += " \"" + spec.Description + "\""
	}
	usage += " <" + spec.TypeOf.String() + ">"
	if spec.Default.IsSet() && !spec.Default.IsComputed() {
		usage += fmt.Sprintf(" (defaults to: %v)", spec.Default.LiteralValue())
	}

	return usage + " (" + spec.Arity.String() + ")"
}

// RenderUsage pretty prints the definition's arguments and options to an
// io.Writer.
func (r *DefaultRenderer) RenderUsage(writer io.Writer) {
	_, _ = writer.Write([]byte(fmt.Sprintf("usage: %s\n", r.def.Name())))
	if r.def.Description() != "" {
		_, _ = writer.Write([]byte(r.def.Description() + "\n"))
	}

	if names := r.def.ArgumentNames(); len(names) > 0 {
		_, _ = writer.Write([]byte("\narguments:\n"))
		for _, name := range names {
			spec, _ := r.def.GetArgument(name)
			_, _ = writer.Write([]byte(" " + r.ArgumentUsage(name, spec) + "\n"))
		}
	}

	if names := r.def.OptionNames(); len(names) > 0 {
		_, _ = writer.Write([]byte("\noptions:\n"))
		for _, name := range names {
			spec, _ := r.def.GetOption(name)
			_, _ = writer.Write([]byte(" " + r.OptionUsage(name, spec) + "\n"))
		}
	}
}
