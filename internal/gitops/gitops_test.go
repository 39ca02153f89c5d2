package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gitLog(t *testing.T, dir, format string) string {
	t.Helper()
	cmd := exec.Command("git", "log", "--format="+format, "-1")
	cmd.Dir = dir
	out, err := cmd.Output()
	require.NoError(t, err)
	return string(out)
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	_, err := os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git directory should exist")
}

func TestIsRepo(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsRepo(dir), "empty dir should not be a repo")

	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir), "initialized dir should be a repo")

	sub := filepath.Join(dir, "notes")
	require.NoError(t, os.Mkdir(sub, 0o755))
	assert.True(t, IsRepo(sub), "subdirectories are inside the repo")
}

func TestCommitFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	doc := filepath.Join(dir, "ledger.md")
	require.NoError(t, os.WriteFile(doc, []byte("| a |\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("untouched"), 0o644))

	author := Author{Name: "Test Author", Email: "test@example.com"}
	hash, err := CommitFiles(dir, []string{doc}, "rewrite: ledger.md", author)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.Contains(t, gitLog(t, dir, "%s"), "rewrite: ledger.md")
	assert.Contains(t, gitLog(t, dir, "%an <%ae>"), "Test Author <test@example.com>")

	// Only the named path was committed.
	status := exec.Command("git", "status", "--porcelain")
	status.Dir = dir
	out, err := status.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "?? other.txt")

	_, err = CommitFiles(dir, []string{doc}, "again", author)
	assert.ErrorIs(t, err, ErrNothingToCommit)
}

func TestCommitFiles_NoPaths(t *testing.T) {
	_, err := CommitFiles(t.TempDir(), nil, "msg", DefaultAuthor)
	assert.ErrorIs(t, err, ErrNothingToCommit)
}
