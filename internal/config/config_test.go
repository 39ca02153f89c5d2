package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/acjournal/internal/options"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.CommaAsDecimal = true
	cfg.JournalSeparator = "a"
	cfg.AccountEquivalence = "accounts.csv"
	cfg.Server.Addr = "127.0.0.1:9000"

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.False(t, cfg.CommaAsDecimal)
	assert.Equal(t, "-", cfg.JournalSeparator)
	assert.Empty(t, cfg.AccountEquivalence)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("comma_as_decimal: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.CommaAsDecimal)
	assert.Equal(t, "-", cfg.JournalSeparator)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_Locale(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("comma_as_decimal: false\nlocale: es-ES\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.CommaAsDecimal, "locale decides the decimal style")
}

func TestLoad_BadLocale(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("locale: \"!!\"\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("comma_as_decimal: [nope"), 0o644))
	_, err = LoadOrDefault(path)
	assert.Error(t, err, "a malformed file is still an error")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "comma_as_decimal: false")
	assert.Regexp(t, `journal_separator: ['"]-['"]`, contents)
	assert.Contains(t, contents, "log_level: info")
	assert.NotContains(t, contents, "account_equivalence")
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvCommaAsDecimal:     "true",
		EnvJournalSeparator:   "→",
		EnvAccountEquivalence: "pgc.csv",
		EnvLogLevel:           "debug",
		EnvServerAddr:         ":9999",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.CommaAsDecimal)
	assert.Equal(t, "→", cfg.JournalSeparator)
	assert.Equal(t, "pgc.csv", cfg.AccountEquivalence)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":9999", cfg.Server.Addr)
}

func TestApplyEnv_Errors(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.ApplyEnv(envMap(map[string]string{EnvCommaAsDecimal: "maybe"})))
	assert.Error(t, cfg.ApplyEnv(envMap(map[string]string{EnvLocale: "??"})))
}

func TestApplyEnv_Locale(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(envMap(map[string]string{EnvLocale: "de-DE"})))
	assert.True(t, cfg.CommaAsDecimal)
	assert.Equal(t, "de-DE", cfg.Locale)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ACJ_TEST_DOTENV=yes\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("ACJ_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"), path))
	assert.Equal(t, "yes", os.Getenv("ACJ_TEST_DOTENV"))
}

func TestOverrides(t *testing.T) {
	cfg := Default()
	cfg.JournalSeparator = ""
	cfg.AccountEquivalence = "accounts.csv"

	got := options.Resolve(cfg.Overrides())
	assert.Equal(t, options.Block{CommaDecimal: false, Separator: "-", EquivalencePath: "accounts.csv"}, got)
}
