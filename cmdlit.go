// Package cmdlit expands terse, redis-cli-like command literals into go-redis
// commands.
//
//	cmd, err := cmdlit.Cmd(ctx, "SET my_key 1")
//
// is equivalent to
//
//	cmd := redis.NewCmd(ctx, "SET", "my_key", "1")
//
// Double quotes keep whitespace inside one argument, and {} placeholders
// splice caller-supplied values:
//
//	cmdlit.Cmd(ctx, `SET greeting "hello there"`)
//	cmdlit.Cmd(ctx, "SET counter {}", n)
//
// Literals that are fixed in source can also be pre-expanded at build time
// with the cmdlit gen tool; see cmd/cmdlit.
package cmdlit

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/cmdlit-engine/cmdlit/engine/builder"
	"github.com/cmdlit-engine/cmdlit/engine/lexer"
	"github.com/cmdlit-engine/cmdlit/engine/models"
)

// Expand parses a command literal and returns the expanded command model.
// Returns:
//   - command: name plus ordered arguments (nil on error)
//   - error: lexing or substitution error (nil on success)
func Expand(literal string, subs ...any) (*models.Command, error) {
	tokens, err := lexer.Tokenize(literal)
	if err != nil {
		return nil, err
	}
	return builder.Build(literal, tokens, subs...)
}

// Args expands a command literal into the flat [name, args...] slice expected
// by redis.NewCmd and Client.Do.
func Args(literal string, subs ...any) ([]any, error) {
	cmd, err := Expand(literal, subs...)
	if err != nil {
		return nil, err
	}
	return cmd.ArgSlice(), nil
}

// Cmd expands a command literal into a generic go-redis command, ready to be
// passed to a client's Process or a pipeline.
func Cmd(ctx context.Context, literal string, subs ...any) (*redis.Cmd, error) {
	args, err := Args(literal, subs...)
	if err != nil {
		return nil, err
	}
	return redis.NewCmd(ctx, args...), nil
}

// MustCmd is like Cmd but panics on a malformed literal. Intended for
// literals fixed in source, where a malformed literal is a programming error.
func MustCmd(ctx context.Context, literal string, subs ...any) *redis.Cmd {
	cmd, err := Cmd(ctx, literal, subs...)
	if err != nil {
		panic(err)
	}
	return cmd
}
