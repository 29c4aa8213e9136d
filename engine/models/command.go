package models

import (
	"fmt"
	"strings"
)

// Command is the expanded form of a command literal: a command name plus its
// positional arguments in the exact order they appeared. Each expansion
// produces an independent Command; nothing is shared between them.
type Command struct {
	Name string // Command name (SET, GET, ...)
	Args []any  // Positional arguments, left-to-right
	Raw  string // The literal this command was expanded from
}

// ArgSlice returns the flat [name, args...] slice expected by the client's
// generic command constructor.
func (c *Command) ArgSlice() []any {
	out := make([]any, 0, len(c.Args)+1)
	out = append(out, c.Name)
	out = append(out, c.Args...)
	return out
}

// String renders the command the way redis-cli would print it, quoting
// arguments that contain whitespace.
func (c *Command) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	for _, arg := range c.Args {
		sb.WriteByte(' ')
		s := fmt.Sprint(arg)
		if strings.ContainsAny(s, " \t\n") || s == "" {
			sb.WriteString(fmt.Sprintf("%q", s))
		} else {
			sb.WriteString(s)
		}
	}
	return sb.String()
}
