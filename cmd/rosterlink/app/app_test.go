package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeworks/rosterlink/pkg/reconcile"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{"default is info", Config{}, "info"},
		{"verbose means debug", Config{Verbose: true}, "debug"},
		{"quiet means warn", Config{Quiet: true}, "warn"},
		{"quiet wins over verbose", Config{Verbose: true, Quiet: true}, "warn"},
		{"explicit level wins over verbose", Config{Verbose: true, LogLevel: "error"}, "error"},
		{"invalid explicit level falls back to info", Config{LogLevel: "loud"}, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineLogLevel(&tt.config))
		})
	}
}

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{LogLevel: "debug"}

	config.UpdateFromFlags(true, false, true, "")
	assert.True(t, config.Verbose)
	assert.True(t, config.NoColor)
	// An empty flag value does not clobber the configured level.
	assert.Equal(t, "debug", config.LogLevel)

	config.UpdateFromFlags(false, true, false, "error")
	assert.Equal(t, "error", config.LogLevel)
}

func TestLoadMapping(t *testing.T) {
	t.Run("reads a flat yaml map", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mapping.yaml")
		content := "Student Address: Address\nGrade Level: Grade\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		mapping, err := LoadMapping(path)
		require.NoError(t, err)
		assert.Equal(t, reconcile.FieldMapping{
			"Student Address": "Address",
			"Grade Level":     "Grade",
		}, mapping)
	})

	t.Run("missing file is an IO error", func(t *testing.T) {
		_, err := LoadMapping(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml is a parse error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- not\n- a\n- map\n"), 0o644))

		_, err := LoadMapping(path)
		assert.Error(t, err)
	})
}
