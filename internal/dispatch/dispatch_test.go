package dispatch

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nicoster/chrome-devtools-cli-sub002/internal/schema"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/usage"
)

func TestRunSuccess(t *testing.T) {
	d := New()
	d.Register("version", func(ctx context.Context, inv Invocation) (any, error) {
		return map[string]string{"cli": "0.3.0"}, nil
	})

	res := d.Run(context.Background(), Invocation{Command: "version"})

	require.True(t, res.Success)
	require.NotEmpty(t, res.ID)
	require.Equal(t, "version", res.Command)
	require.Equal(t, map[string]string{"cli": "0.3.0"}, res.Data)
	require.Empty(t, res.Error)
	require.Equal(t, 0, res.ExitCode)
}

func TestRunPassesInvocationThrough(t *testing.T) {
	d := New()
	var got Invocation
	d.Register("click", func(ctx context.Context, inv Invocation) (any, error) {
		got = inv
		return nil, nil
	})

	inv := Invocation{
		Command:   "click",
		Options:   map[string]schema.Value{"double": schema.BoolValue(true)},
		Arguments: []string{"#submit"},
	}
	d.Run(context.Background(), inv)

	require.Equal(t, inv, got)
}

func TestRunUnregisteredCommand(t *testing.T) {
	d := New()

	res := d.Run(context.Background(), Invocation{Command: "navigate"})

	require.False(t, res.Success)
	require.Contains(t, res.Error, "no executor registered")
	require.Equal(t, 3, res.ExitCode)
}

func TestRunClassifiesUsageError(t *testing.T) {
	d := New()
	d.Register("navigate", func(ctx context.Context, inv Invocation) (any, error) {
		return nil, usage.ConnectionFailed(errors.New("dial tcp: connection refused"))
	})

	res := d.Run(context.Background(), Invocation{Command: "navigate"})

	require.False(t, res.Success)
	require.Equal(t, 2, res.ExitCode)
	require.Contains(t, res.Error, "connection failed")
}

func TestRunClassifiesWrappedUsageError(t *testing.T) {
	d := New()
	d.Register("navigate", func(ctx context.Context, inv Invocation) (any, error) {
		return nil, fmt.Errorf("session closed: %w", usage.Timeout("navigate"))
	})

	res := d.Run(context.Background(), Invocation{Command: "navigate"})

	require.Equal(t, 4, res.ExitCode)
	require.Contains(t, res.Error, "timed out")
}

func TestRunClassifiesDeadline(t *testing.T) {
	d := New()
	d.Register("wait-for", func(ctx context.Context, inv Invocation) (any, error) {
		return nil, context.DeadlineExceeded
	})

	res := d.Run(context.Background(), Invocation{Command: "wait-for"})

	require.Equal(t, 4, res.ExitCode)
	require.Contains(t, res.Error, "wait-for timed out")
}

func TestRunClassifiesPlainError(t *testing.T) {
	d := New()
	d.Register("eval", func(ctx context.Context, inv Invocation) (any, error) {
		return nil, errors.New("ReferenceError: x is not defined")
	})

	res := d.Run(context.Background(), Invocation{Command: "eval"})

	require.Equal(t, 3, res.ExitCode)
	require.Contains(t, res.Error, "eval: ReferenceError")
}

func TestRegisterReplaces(t *testing.T) {
	d := New()
	d.Register("version", func(ctx context.Context, inv Invocation) (any, error) {
		return "old", nil
	})
	d.Register("version", func(ctx context.Context, inv Invocation) (any, error) {
		return "new", nil
	})

	res := d.Run(context.Background(), Invocation{Command: "version"})
	require.Equal(t, "new", res.Data)
	require.True(t, d.Has("version"))
	require.False(t, d.Has("navigate"))
}

func TestRunIDsAreUnique(t *testing.T) {
	d := New()
	d.Register("version", func(ctx context.Context, inv Invocation) (any, error) {
		return nil, nil
	})

	a := d.Run(context.Background(), Invocation{Command: "version"})
	b := d.Run(context.Background(), Invocation{Command: "version"})
	require.NotEqual(t, a.ID, b.ID)
}
