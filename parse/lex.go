package parse

import "github.com/google/shlex"

// Split tokenizes a command line into an argument vector using shell-style
// word splitting. Quoting and escaping are the lexer's concern - the
// tokenizing parser only ever sees the resulting vector.
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}
