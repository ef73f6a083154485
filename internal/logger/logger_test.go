package logger

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineFormatter_Format(t *testing.T) {
	f := &LineFormatter{}

	tests := []struct {
		name     string
		entry    *log.Entry
		expected string
	}{
		{
			name:     "info",
			entry:    &log.Entry{Level: log.InfoLevel, Message: "Rent success: C1", Data: log.Fields{}},
			expected: "[INFO] Rent success: C1\n",
		},
		{
			name:     "error",
			entry:    &log.Entry{Level: log.ErrorLevel, Message: "Overload: T1", Data: log.Fields{}},
			expected: "[ERROR] Overload: T1\n",
		},
		{
			name:     "sorted fields",
			entry:    &log.Entry{Level: log.WarnLevel, Message: "journal", Data: log.Fields{"b": 2, "a": "x"}},
			expected: "[WARNING] journal a=x b=2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := f.Format(tt.entry)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}
}

func TestNew_AppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	l, closer, err := New(path, "info")
	require.NoError(t, err)
	l.Infof("Rent success: %s", "C1")
	l.Errorf("Overload: %s", "T1")
	l.Debug("hidden")
	require.NoError(t, closer.Close())

	// Reopening appends instead of truncating.
	l, closer, err = New(path, "info")
	require.NoError(t, err)
	l.Info("Return success: C1")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[INFO] Rent success: C1\n[ERROR] Overload: T1\n[INFO] Return success: C1\n", string(data))
}

func TestNew_BadPath(t *testing.T) {
	_, _, err := New(filepath.Join(t.TempDir(), "missing", "log.txt"), "info")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, log.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, log.InfoLevel, ParseLevel("loud"))
	assert.Equal(t, log.InfoLevel, ParseLevel(""))
}
