package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a repository with a single commit on the default branch.
func initRepo(t *testing.T) (string, *gogit.Repository) {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# test\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README.md")
	require.NoError(t, err)

	_, err = wt.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return dir, repo
}

func TestInspect(t *testing.T) {
	t.Run("clean repository", func(t *testing.T) {
		dir, _ := initRepo(t)

		state, err := Inspect(dir)
		require.NoError(t, err)
		assert.True(t, state.Clean)
		assert.NotEmpty(t, state.Branch)
	})

	t.Run("dirty repository", func(t *testing.T) {
		dir, _ := initRepo(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("dirty\n"), 0o644))

		state, err := Inspect(dir)
		require.NoError(t, err)
		assert.False(t, state.Clean)
	})

	t.Run("not a repository", func(t *testing.T) {
		_, err := Inspect(t.TempDir())
		assert.Error(t, err)
	})
}

func TestIsRepository(t *testing.T) {
	dir, _ := initRepo(t)
	assert.True(t, IsRepository(dir))
	assert.False(t, IsRepository(t.TempDir()))
}

func TestRoot(t *testing.T) {
	dir, _ := initRepo(t)
	sub := filepath.Join(dir, "pkg", "deep")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	root, err := Root(sub)
	require.NoError(t, err)

	wantRoot, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	gotRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, wantRoot, gotRoot)
}
