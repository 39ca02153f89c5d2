package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/acjournal/internal/accounts"
	"github.com/cleared-dev/acjournal/internal/config"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "acjournal-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "acjournal")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/acjournal")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

// runIn runs the binary with dir as working directory and a clean ACJ_* environment.
func runIn(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	env := []string{}
	for _, kv := range os.Environ() {
		if len(kv) >= 4 && kv[:4] == "ACJ_" {
			continue
		}
		env = append(env, kv)
	}
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestInit_WritesSettings(t *testing.T) {
	dir := t.TempDir()
	out, err := runIn(t, dir, "init", dir)
	require.NoError(t, err, out)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "accounts.csv", cfg.AccountEquivalence)
	assert.False(t, cfg.CommaAsDecimal)
	assert.Equal(t, "-", cfg.JournalSeparator)
}

func TestInit_AccountTable(t *testing.T) {
	dir := t.TempDir()
	_, err := runIn(t, dir, "init", dir)
	require.NoError(t, err)

	table, err := accounts.LoadFile(filepath.Join(dir, "accounts.csv"))
	require.NoError(t, err)
	assert.Equal(t, accounts.DefaultTable(), table)

	_, err = os.Stat(filepath.Join(dir, "sample.md"))
	assert.NoError(t, err)
}

func TestInit_Locale(t *testing.T) {
	dir := t.TempDir()
	_, err := runIn(t, dir, "init", dir, "--locale", "es-ES")
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.True(t, cfg.CommaAsDecimal)
	assert.Equal(t, "es-ES", cfg.Locale)
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	_, err := runIn(t, dir, "init", dir)
	require.NoError(t, err)

	_, err = runIn(t, dir, "init", dir)
	require.Error(t, err, "second init without --force should fail")

	_, err = runIn(t, dir, "init", dir, "--force")
	require.NoError(t, err)
}

func TestInit_GitRepo(t *testing.T) {
	dir := t.TempDir()
	out, err := runIn(t, dir, "init", dir, "--git")
	require.NoError(t, err, out)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git should exist")

	log := exec.Command("git", "log", "--format=%s|%an <%ae>", "-1")
	log.Dir = dir
	logOut, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(logOut), "init: acjournal settings|acjournal <acjournal@localhost>")
}
