package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal_Confirm(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		def    bool
		want   bool
	}{
		{"yes", "y\n", false, true},
		{"yes word", "yes\n", false, true},
		{"no", "n\n", true, false},
		{"empty picks default true", "\n", true, true},
		{"empty picks default false", "\n", false, false},
		{"garbage is no", "whatever\n", true, false},
		{"case insensitive", "Y\n", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			term := NewWith(strings.NewReader(tt.answer), &out)

			got, err := term.Confirm("proceed?", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "proceed?")
		})
	}

	t.Run("closed input is an error", func(t *testing.T) {
		term := NewWith(strings.NewReader(""), &bytes.Buffer{})
		_, err := term.Confirm("proceed?", true)
		assert.Error(t, err)
	})
}

func TestTerminal_Input(t *testing.T) {
	t.Run("returns typed text", func(t *testing.T) {
		term := NewWith(strings.NewReader("my answer\n"), &bytes.Buffer{})
		got, err := term.Input("Branch name", "default-name", true)
		require.NoError(t, err)
		assert.Equal(t, "my answer", got)
	})

	t.Run("empty answer selects the default", func(t *testing.T) {
		term := NewWith(strings.NewReader("\n"), &bytes.Buffer{})
		got, err := term.Input("Branch name", "default-name", true)
		require.NoError(t, err)
		assert.Equal(t, "default-name", got)
	})

	t.Run("required input re-prompts until text arrives", func(t *testing.T) {
		var out bytes.Buffer
		term := NewWith(strings.NewReader("\n\nfinally\n"), &out)

		got, err := term.Input("Commit message", "", true)
		require.NoError(t, err)
		assert.Equal(t, "finally", got)
		assert.Equal(t, 3, strings.Count(out.String(), "Commit message"))
	})

	t.Run("optional input accepts empty", func(t *testing.T) {
		term := NewWith(strings.NewReader("\n"), &bytes.Buffer{})
		got, err := term.Input("Anything else", "", false)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})
}
