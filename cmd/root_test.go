//go:build unit

package cmd

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Argument validation happens in cobra before a command's Run fires, so a
// usage error never constructs an adapter or touches the system.
func execute(args ...string) error {
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestUsageErrors(t *testing.T) {
	t.Run("AdhocMissingAddress", func(t *testing.T) {
		err := execute("adhoc", "wlan0")
		assert.Error(t, err)
	})

	t.Run("AdhocNoArguments", func(t *testing.T) {
		err := execute("adhoc")
		assert.Error(t, err)
	})

	t.Run("AdhocTooManyArguments", func(t *testing.T) {
		err := execute("adhoc", "wlan0", "10.0.0.5", "6", "extra")
		assert.Error(t, err)
	})

	t.Run("DiagnoseMissingTarget", func(t *testing.T) {
		err := execute("diagnose", "wlan0")
		assert.Error(t, err)
	})

	t.Run("StatusMissingInterface", func(t *testing.T) {
		err := execute("status")
		assert.Error(t, err)
	})

	t.Run("DiscoverMissingInterface", func(t *testing.T) {
		err := execute("discover")
		assert.Error(t, err)
	})
}
