package message

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAsk returns canned answers to Input calls.
type fakeAsk struct {
	text string
}

func (f *fakeAsk) Confirm(question string, def bool) (bool, error) {
	return def, nil
}

func (f *fakeAsk) Input(question, def string, required bool) (string, error) {
	return f.text, nil
}

func poolWith(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), PoolFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProvider_Choose(t *testing.T) {
	t.Run("direct without funny is always wip", func(t *testing.T) {
		// No pool file on disk; the plain path must not touch it
		p := NewProvider(filepath.Join(t.TempDir(), PoolFile), &fakeAsk{})
		msg, err := p.Choose(Direct, false)
		require.NoError(t, err)
		assert.Equal(t, "wip", msg)
	})

	t.Run("direct with funny draws from the pool", func(t *testing.T) {
		path := poolWith(t, "# header comment\n\nonly message\n")
		p := NewProvider(path, &fakeAsk{})
		msg, err := p.Choose(Direct, true)
		require.NoError(t, err)
		assert.Equal(t, "only message", msg)
	})

	t.Run("funny selection is uniform over pool entries", func(t *testing.T) {
		path := poolWith(t, "first\nsecond\nthird\n")
		p := NewProvider(path, &fakeAsk{})
		p.pick = func(n int) int {
			require.Equal(t, 3, n)
			return 1
		}
		msg, err := p.Choose(Direct, true)
		require.NoError(t, err)
		assert.Equal(t, "second", msg)
	})

	t.Run("missing pool is an error, not a wip fallback", func(t *testing.T) {
		p := NewProvider(filepath.Join(t.TempDir(), PoolFile), &fakeAsk{})
		_, err := p.Choose(Direct, true)
		assert.Error(t, err)
	})

	t.Run("pool of only comments is an error", func(t *testing.T) {
		path := poolWith(t, "# one\n# two\n\n")
		p := NewProvider(path, &fakeAsk{})
		_, err := p.Choose(Direct, true)
		assert.Error(t, err)
	})

	t.Run("feature messages come from the operator", func(t *testing.T) {
		p := NewProvider(filepath.Join(t.TempDir(), PoolFile), &fakeAsk{text: "add login form"})
		msg, err := p.Choose(Feature, true)
		require.NoError(t, err)
		assert.Equal(t, "add login form", msg)
	})
}

func TestSeed(t *testing.T) {
	t.Run("writes embedded pool", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), PoolFile)
		require.NoError(t, Seed(path))

		p := NewProvider(path, &fakeAsk{})
		msg, err := p.Choose(Direct, true)
		require.NoError(t, err)
		assert.NotEmpty(t, msg)
		assert.NotContains(t, msg, "#")
	})

	t.Run("does not overwrite an existing pool", func(t *testing.T) {
		path := poolWith(t, "mine\n")
		require.NoError(t, Seed(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "mine\n", string(data))
	})
}
