//go:build unit

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDir(t *testing.T) {
	t.Run("shipped migrations match atlas.sum", func(t *testing.T) {
		require.NoError(t, checkDir("../../migrations"))
	})

	t.Run("edited migration is refused", func(t *testing.T) {
		tmp := t.TempDir()
		for _, name := range []string{"001_initial_schema.sql", "atlas.sum"} {
			b, err := os.ReadFile(filepath.Join("../../migrations", name))
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(filepath.Join(tmp, name), b, 0o600))
		}

		f, err := os.OpenFile(filepath.Join(tmp, "001_initial_schema.sql"), os.O_APPEND|os.O_WRONLY, 0o600)
		require.NoError(t, err)
		_, err = f.WriteString("\nSELECT 1;\n")
		require.NoError(t, err)
		require.NoError(t, f.Close())

		assert.Error(t, checkDir(tmp))
	})
}
