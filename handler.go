package argspec

import (
	"fmt"

	"github.com/nholm/argspec/parse"
)

// AddHandler appends a handler to the interception chain, keyed by the
// trigger field whose presence in the ParseResult selects it. Handlers run
// in registration order before the primary body; a stopped HandlerResult
// terminates the invocation immediately, bypassing the required-field
// check and the primary body.
func (d *Definition) AddHandler(trigger string, handler HandlerFunc) {
	d.handlers = append(d.handlers, handlerEntry{trigger: trigger, handler: handler})
}

// SetRunner attaches the primary execution body invoked after the handler
// chain completes without a short-circuit.
func (d *Definition) SetRunner(runner RunnerFunc) {
	d.runner = runner
}

// Execute parses args, runs the handler chain and, when no handler stops
// the invocation, checks required fields and runs the primary body. The
// returned code is the invocation's result; the error, when non-nil,
// carries the same code and has already been written to the sink's error
// stream.
func (d *Definition) Execute(args []string) (ResultCode, error) {
	result, err := d.Parse(args)
	if err != nil {
		fmt.Fprintln(d.sink.Stderr(), err.Error())
		return CodeOf(err), err
	}

	for _, entry := range d.handlers {
		if !result.Has(entry.trigger) {
			continue
		}
		if outcome := entry.handler(d.sink, result, d); outcome.Stopped() {
			return outcome.Code(), nil
		}
	}

	if missing := result.Missing(); len(missing) > 0 {
		execErr := &ExecError{
			Code: Invalid,
			Err:  fmt.Errorf("%w %s '%s'", ErrMissingRequired, missing[0].Kind, missing[0].Name),
		}
		fmt.Fprintln(d.sink.Stderr(), execErr.Error())
		return Invalid, execErr
	}

	if d.runner == nil {
		execErr := &ExecError{
			Code: CannotExecute,
			Err:  fmt.Errorf(FmtErrorWithString, ErrNoRunner, d.name),
		}
		fmt.Fprintln(d.sink.Stderr(), execErr.Error())
		return CannotExecute, execErr
	}

	return d.runner(d.sink, result), nil
}

// ExecuteString splits a command line and calls Execute.
func (d *Definition) ExecuteString(argString string) (ResultCode, error) {
	args, err := parse.Split(argString)
	if err != nil {
		execErr := invalidErr(FmtErrorWithString, ErrInvalidValue, err.Error())
		fmt.Fprintln(d.sink.Stderr(), execErr.Error())
		return Invalid, execErr
	}

	return d.Execute(args)
}

// helpHandler renders usage and stops with Success when the help option is
// truthy. Registered automatically by NewDefinition.
func helpHandler(sink OutputSink, result *ParseResult, def *Definition) HandlerResult {
	if wanted, err := result.Bool("help"); err == nil && wanted {
		NewRenderer(def).RenderUsage(sink.Stdout())
		return StopWithCode(Success)
	}

	return Continue()
}
