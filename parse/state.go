package parse

import (
	"errors"

	"github.com/nholm/argspec/util"
)

// ErrInvalidPosition occurs when an out-of-range position is accessed.
var ErrInvalidPosition = errors.New("invalid position")

// State is a cursor over the raw argument vector consumed by the
// tokenizing parser.
type State interface {
	CurrentPos() int                         // Get the current position
	SetPos(pos int)                          // Set the current position
	SkipCurrent()                            // Skip the next argument
	Args() []string                          // Get the entire argument list
	InsertArgsAt(pos int, newArgs ...string) // Insert new arguments at a specific position
	ReplaceArgs(newArgs ...string)           // Replace the entire argument list
	CurrentArg() string                      // Get the current argument
	ArgAt(pos int) (string, error)           // Get the argument at a specific position
	Peek() string                            // Peek at the next argument
	Advance() bool                           // Advance to the next argument
	Len() int                                // Get the length of the argument list
}

// DefaultState is the default State implementation.
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a State over args, positioned before the first argument.
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

// CurrentPos returns the current position in the argument list.
func (s *DefaultState) CurrentPos() int {
	return s.pos
}

// SetPos sets the current position in the argument list.
func (s *DefaultState) SetPos(pos int) {
	s.pos = pos
}

// SkipCurrent advances the position past the next argument.
func (s *DefaultState) SkipCurrent() {
	s.pos++
}

// Args returns the entire argument list.
func (s *DefaultState) Args() []string {
	return s.args
}

// CurrentArg returns the argument at the current position.
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}

	return s.args[s.pos]
}

// InsertArgsAt inserts new arguments at a specific position.
func (s *DefaultState) InsertArgsAt(pos int, newArgs ...string) {
	s.args = util.InsertSlice(s.args, pos, newArgs...)
}

// ReplaceArgs replaces the entire argument list.
func (s *DefaultState) ReplaceArgs(newArgs ...string) {
	s.args = newArgs
}

// Advance moves to the next argument, returning false at the end of input.
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}

	return false
}

// Peek returns the next argument without advancing.
func (s *DefaultState) Peek() string {
	if s.pos+1 < len(s.args) {
		return s.args[s.pos+1]
	}

	return ""
}

// ArgAt returns the argument at pos.
func (s *DefaultState) ArgAt(pos int) (string, error) {
	if pos < 0 || pos >= len(s.args) {
		return "", ErrInvalidPosition
	}

	return s.args[pos], nil
}

// Len returns the length of the argument list.
func (s *DefaultState) Len() int {
	return len(s.args)
}
