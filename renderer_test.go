package argspec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nholm/argspec/types"
)

func TestRenderer_ArgumentUsage(t *testing.T) {
	def := newTestDefinition(t,
		WithArgument("count", NewArgSpec(
			WithType(types.Integer),
			WithArity(types.Optional),
			WithDescription("how many times to run"),
			WithDefault(int64(1)))))

	spec, err := def.GetArgument("count")
	require.NoError(t, err)

	usage := NewRenderer(def).ArgumentUsage("count", spec)
	assert.Equal(t, `count "how many times to run" <integer> (defaults to: 1) (optional)`, usage)
}

func TestRenderer_OptionUsage(t *testing.T) {
	def := newTestDefinition(t,
		WithOption("verbose", NewOptSpec(
			WithOptionType(types.Boolean),
			WithOptionArity(types.ValueOptional),
			WithOptionDescription("enable verbose output"),
			WithOptionDefault(false),
			WithFlags("v", "verbose"))))

	spec, err := def.GetOption("verbose")
	require.NoError(t, err)

	usage := NewRenderer(def).OptionUsage("verbose", spec)
	assert.Equal(t, `--verbose or -v "enable verbose output" <boolean> (defaults to: false) (optional)`, usage)
}

func TestRenderer_ComputedDefaultNotPrinted(t *testing.T) {
	def := newTestDefinition(t,
		WithArgument("stamp", NewArgSpec(
			WithType(types.String),
			WithComputedDefault(func() interface{} { return "now" }))))

	spec, err := def.GetArgument("stamp")
	require.NoError(t, err)

	usage := NewRenderer(def).ArgumentUsage("stamp", spec)
	assert.NotContains(t, usage, "defaults to")
}

func TestRenderer_RenderUsage(t *testing.T) {
	def, err := NewDefinition("copy",
		WithCommandDescription("copy files around"),
		WithArgument("source", NewArgSpec(WithType(types.String), WithArity(types.Required))),
		WithOption("force", NewOptSpec(WithOptionType(types.Boolean), WithOptionArity(types.ValueOptional), WithOptionDefault(false), WithFlags("f", "force"))),
		WithoutHelp())
	require.NoError(t, err)

	var buf bytes.Buffer
	NewRenderer(def).RenderUsage(&buf)

	out := buf.String()
	assert.Contains(t, out, "usage: copy\n")
	assert.Contains(t, out, "copy files around\n")
	assert.Contains(t, out, "arguments:\n")
	assert.Contains(t, out, "source")
	assert.Contains(t, out, "options:\n")
	assert.Contains(t, out, "--force or -f")
}

func TestRenderer_RenderUsageOmitsEmptySections(t *testing.T) {
	def, err := NewDefinition("bare", WithoutHelp())
	require.NoError(t, err)

	var buf bytes.Buffer
	NewRenderer(def).RenderUsage(&buf)

	out := buf.String()
	assert.NotContains(t, out, "arguments:")
	assert.NotContains(t, out, "options:")
}
