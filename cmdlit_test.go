package cmdlit

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdMatchesManualSet(t *testing.T) {
	ctx := context.Background()

	cmd, err := Cmd(ctx, "SET my_key 1")
	require.NoError(t, err)

	manual := redis.NewCmd(ctx, "SET", "my_key", "1")
	assert.Equal(t, manual.Args(), cmd.Args())
}

func TestCmdMatchesManualGet(t *testing.T) {
	ctx := context.Background()

	cmd, err := Cmd(ctx, "GET my_key")
	require.NoError(t, err)

	manual := redis.NewCmd(ctx, "GET", "my_key")
	assert.Equal(t, manual.Args(), cmd.Args())
}

func TestArgsQuotedArgument(t *testing.T) {
	args, err := Args(`SET greeting "hello there"`)
	require.NoError(t, err)
	assert.Equal(t, []any{"SET", "greeting", "hello there"}, args)
}

func TestArgsSubstitution(t *testing.T) {
	args, err := Args("SET counter {}", 42)
	require.NoError(t, err)
	assert.Equal(t, []any{"SET", "counter", 42}, args)
}

func TestExpandModel(t *testing.T) {
	cmd, err := Expand("SET my_key 1")
	require.NoError(t, err)
	assert.Equal(t, "SET", cmd.Name)
	assert.Equal(t, []any{"my_key", "1"}, cmd.Args)
	assert.Equal(t, "SET my_key 1", cmd.Raw)
}

func TestExpandIndependentCalls(t *testing.T) {
	first, err := Expand("SET my_key 1")
	require.NoError(t, err)
	second, err := Expand("SET my_key 1")
	require.NoError(t, err)

	first.Args[0] = "mutated"
	assert.Equal(t, "my_key", second.Args[0])
}

func TestCmdEmptyLiteral(t *testing.T) {
	_, err := Cmd(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty command literal")
}

func TestCmdMalformedLiteral(t *testing.T) {
	_, err := Cmd(context.Background(), `GET "unclosed`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unclosed double quote")
}

func TestMustCmdPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustCmd(context.Background(), "")
	})
}

func TestMustCmdValid(t *testing.T) {
	assert.NotPanics(t, func() {
		cmd := MustCmd(context.Background(), "GET my_key")
		assert.Equal(t, []any{"GET", "my_key"}, cmd.Args())
	})
}
