package argspec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/term"
)

// ConfigureDefinitionFunc is used when building a Definition with option functions
type ConfigureDefinitionFunc func(def *Definition, err *error)

// ConfigureArgumentFunc is used when defining positional ArgumentSpec fields
type ConfigureArgumentFunc func(spec *ArgumentSpec, err *error)

// ConfigureOptionFunc is used when defining flag-style OptionSpec fields
type ConfigureOptionFunc func(spec *OptionSpec, err *error)

// HandlerFunc is invoked for cross-cutting flags before the primary body.
// It receives the output sink, the parsed result and the owning definition
// and decides whether the invocation continues or stops.
type HandlerFunc func(sink OutputSink, result *ParseResult, def *Definition) HandlerResult

// RunnerFunc is the primary execution body of a definition. It receives the
// fully populated result map and its return code becomes the invocation's
// result.
type RunnerFunc func(sink OutputSink, result *ParseResult) ResultCode

// FlagNameConverter converts an option name to a flag token
type FlagNameConverter func(string) string

// Built-in conversion strategies
var (
	// ToKebabCase converts a name to kebab case "max-retries"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts a name to snake case "max_retries"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToLowerCamel converts a name to lower camel case "maxRetries"
	ToLowerCamel = func(s string) string {
		return strcase.ToLowerCamel(s)
	}

	// ToLowerCase converts a name to lower case "maxretries"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}

	DefaultFlagNameConverter = ToKebabCase
)

// ResultCode is the numeric outcome of an invocation, shared with the
// surrounding dispatcher.
type ResultCode int

const (
	// Success reports a completed invocation
	Success ResultCode = 0
	// Failure reports a generic runtime failure of the primary body
	Failure ResultCode = 1
	// Invalid reports a bad or missing argument or option
	Invalid ResultCode = 2
	// CannotExecute reports a definition without a primary body
	CannotExecute ResultCode = 126
	// NotFound reports an unknown command name (dispatcher contract)
	NotFound ResultCode = 127
)

// HandlerResult is the tagged outcome of a HandlerFunc: either continue
// with the next handler or stop the whole invocation with a code.
type HandlerResult struct {
	stop bool
	code ResultCode
}

// Continue lets the chain proceed to the next handler.
func Continue() HandlerResult {
	return HandlerResult{}
}

// StopWithCode short-circuits the invocation, skipping the required-field
// check and the primary body.
func StopWithCode(code ResultCode) HandlerResult {
	return HandlerResult{stop: true, code: code}
}

// Stopped reports whether the handler short-circuited the invocation.
func (h HandlerResult) Stopped() bool {
	return h.stop
}

// Code returns the result code of a stopped invocation.
func (h HandlerResult) Code() ResultCode {
	return h.code
}

var (
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrDuplicateName     = errors.New("name is already registered")
	ErrEmptyFlags        = errors.New("option requires at least one flag")
	ErrDuplicateFlag     = errors.New("flag is already registered")
	ErrFlagLeadingDigit  = errors.New("flag cannot start with a digit")
	ErrArrayNotLast      = errors.New("array argument must be the last positional slot")
	ErrMultipleArrayArgs = errors.New("only one array argument is allowed per definition")
	ErrInvalidDefault    = errors.New("default value does not satisfy the declared type")
	ErrInvalidValue      = errors.New("invalid value")
	ErrMissingRequired   = errors.New("missing required")
	ErrFieldNotFound     = errors.New("field not found")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrNoRunner          = errors.New("no primary execution body attached")
)

const FmtErrorWithString = "%w: %s"

// ExecError couples a runtime failure with the result code reported to the
// surrounding dispatcher.
type ExecError struct {
	Code ResultCode
	Err  error
}

func (e *ExecError) Error() string {
	return e.Err.Error()
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// CodeOf extracts the result code from err, defaulting to Failure for
// errors raised outside the engine's own classification.
func CodeOf(err error) ResultCode {
	var execErr *ExecError
	if errors.As(err, &execErr) {
		return execErr.Code
	}

	return Failure
}

// OutputSink accepts pre-formatted text for the standard and error
// streams. Presentation and styling are entirely the collaborator's
// concern - the engine never interprets markup.
type OutputSink interface {
	Stdout() io.Writer
	Stderr() io.Writer
}

// StdSink is the default OutputSink, bound to the process streams.
type StdSink struct {
	stdout io.Writer
	stderr io.Writer
	tty    bool
}

// NewStdSink creates a sink over os.Stdout/os.Stderr, recording whether
// stdout is attached to a terminal so collaborators can decide on styling.
func NewStdSink() *StdSink {
	return &StdSink{
		stdout: os.Stdout,
		stderr: os.Stderr,
		tty:    term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// NewSink creates a sink over arbitrary writers - mostly useful in tests.
func NewSink(stdout, stderr io.Writer) *StdSink {
	return &StdSink{stdout: stdout, stderr: stderr}
}

func (s *StdSink) Stdout() io.Writer {
	return s.stdout
}

func (s *StdSink) Stderr() io.Writer {
	return s.stderr
}

// IsTerminal reports whether stdout was attached to a terminal when the
// sink was created.
func (s *StdSink) IsTerminal() bool {
	return s.tty
}

type handlerEntry struct {
	trigger string
	handler HandlerFunc
}

func flagLabel(token string) string {
	if len([]rune(token)) == 1 {
		return "-" + token
	}

	return "--" + token
}

func invalidErr(format string, args ...interface{}) error {
	return &ExecError{Code: Invalid, Err: fmt.Errorf(format, args...)}
}
