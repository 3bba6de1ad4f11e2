package domain

import "strings"

// Command describes one child process invocation.
type Command struct {
	// Path is the executable to run, absolute or resolvable via PATH.
	Path string

	// Args are the arguments, not including the executable itself.
	Args []string

	// Dir is the working directory. Empty means the caller's.
	Dir string

	// Env holds additional KEY=VALUE entries appended to the inherited
	// environment.
	Env []string
}

// String renders the command line for diagnostics.
func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}
