//go:build unit

package command

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerAdapter_Output(t *testing.T) {
	adapter := NewRunnerAdapter()
	ctx := context.Background()

	t.Run("SuccessfulCommand", func(t *testing.T) {
		out, err := adapter.Output(ctx, "echo", "hello")
		require.NoError(t, err)
		assert.Equal(t, "hello\n", out)
	})

	t.Run("FailingCommandKeepsOutput", func(t *testing.T) {
		out, err := adapter.Output(ctx, "sh", "-c", "echo partial; exit 3")
		require.Error(t, err)
		assert.Equal(t, "partial\n", out)

		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 3, exitErr.ExitCode())
	})

	t.Run("MissingCommand", func(t *testing.T) {
		_, err := adapter.Output(ctx, "definitely-not-a-command")
		assert.Error(t, err)
	})
}
