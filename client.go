// client.go

package cmdlit

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ============================================
// CLIENT STRUCT
// ============================================

// Client wraps a redis connection with command-literal execution
type Client struct {
	rdb *redis.Client
	ctx context.Context
}

// ============================================
// CONSTRUCTORS
// ============================================

// Wrap wraps a Redis client connection
func Wrap(rdb *redis.Client) *Client {
	return &Client{
		rdb: rdb,
		ctx: context.Background(),
	}
}

// ============================================
// CONFIGURATION
// ============================================

// SetContext sets the context for command execution
func (c *Client) SetContext(ctx context.Context) {
	c.ctx = ctx
}

// Unwrap returns the underlying go-redis client
func (c *Client) Unwrap() *redis.Client {
	return c.rdb
}

// ============================================
// EXECUTION
// ============================================

// Do expands a command literal and executes it, returning the raw reply
func (c *Client) Do(literal string, subs ...any) (any, error) {
	args, err := Args(literal, subs...)
	if err != nil {
		return nil, fmt.Errorf("expand error: %w", err)
	}

	result, err := c.rdb.Do(c.ctx, args...).Result()
	if err != nil {
		return nil, fmt.Errorf("exec error: %w", err)
	}
	return result, nil
}

// DoCmd expands a command literal and executes it, returning the go-redis
// command so the caller can use its typed accessors (Text, Int64, ...)
func (c *Client) DoCmd(literal string, subs ...any) (*redis.Cmd, error) {
	cmd, err := Cmd(c.ctx, literal, subs...)
	if err != nil {
		return nil, fmt.Errorf("expand error: %w", err)
	}

	if err := c.rdb.Process(c.ctx, cmd); err != nil {
		return cmd, fmt.Errorf("exec error: %w", err)
	}
	return cmd, nil
}

// DoMulti expands several command literals and sends them in one pipeline.
// All literals are expanded before anything is sent, so a malformed literal
// fails the whole batch up front. Replies come back in literal order.
func (c *Client) DoMulti(literals ...string) ([]any, error) {
	expanded := make([][]any, 0, len(literals))
	for _, literal := range literals {
		args, err := Args(literal)
		if err != nil {
			return nil, fmt.Errorf("expand error in %q: %w", literal, err)
		}
		expanded = append(expanded, args)
	}

	pipe := c.rdb.Pipeline()
	cmds := make([]*redis.Cmd, 0, len(expanded))
	for _, args := range expanded {
		cmds = append(cmds, pipe.Do(c.ctx, args...))
	}

	if _, err := pipe.Exec(c.ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("pipeline error: %w", err)
	}

	results := make([]any, 0, len(cmds))
	for _, cmd := range cmds {
		results = append(results, cmd.Val())
	}
	return results, nil
}
