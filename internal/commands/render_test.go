package commands_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const journalBlock = "```acj\n2024-01-01,Pay rent\n621-500\n---\n572-500\n```\n"
const ledgerBlock = "```acl\n570\n100\n200\n---\n150\n150\n```\n"
const brokenBlock = "```acj\nno-comma-here\nfoo-5\n```\n"

func writeDoc(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestRender_JSON(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "notes.md", "# Notes\n"+journalBlock+ledgerBlock+brokenBlock)

	cmd := exec.Command(binaryPath, "render", doc, "--format", "json", "--log-level", "fatal")
	cmd.Dir = dir
	out, err := cmd.Output()
	require.NoError(t, err)

	var blocks []struct {
		Line  int    `json:"line"`
		Kind  string `json:"kind"`
		Error string `json:"error"`
		Table *struct {
			Rows []struct {
				Cells []struct {
					Text string `json:"text"`
				} `json:"cells"`
			} `json:"rows"`
		} `json:"table"`
	}
	require.NoError(t, json.Unmarshal(out, &blocks))
	require.Len(t, blocks, 3)

	assert.Equal(t, "journal", blocks[0].Kind)
	assert.Equal(t, 2, blocks[0].Line)
	require.NotNil(t, blocks[0].Table)
	assert.Equal(t, "2024-01-01", blocks[0].Table.Rows[0].Cells[0].Text)

	assert.Equal(t, "ledger", blocks[1].Kind)
	require.NotNil(t, blocks[1].Table)
	assert.Equal(t, "(570) Caja, euros", blocks[1].Table.Rows[0].Cells[0].Text)

	assert.Nil(t, blocks[2].Table)
	assert.Contains(t, blocks[2].Error, "line 1")
}

func TestRender_Strict(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "notes.md", journalBlock+brokenBlock)

	out, err := runIn(t, dir, "render", doc)
	require.NoError(t, err, out)
	assert.Contains(t, out, "> **Error generating journal entries: ")

	_, err = runIn(t, dir, "render", doc, "--strict")
	assert.Error(t, err)
}

func TestRender_SettingsAndFrontmatter(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "acjournal.yaml"), []byte("comma_as_decimal: true\njournal_separator: '|'\n"), 0o644))
	doc := writeDoc(t, dir, "notes.md", "```acl\n570\n1234.5\n---\n1\n```\n")

	out, err := runIn(t, dir, "render", doc, "--format", "html")
	require.NoError(t, err, out)
	assert.Contains(t, out, ">1.234,5</td>")

	doc = writeDoc(t, dir, "other.md", "---\nacj-commaAsDecimal: false\n---\n```acl\n570\n1234.5\n---\n1\n```\n")
	out, err = runIn(t, dir, "render", doc, "--format", "html")
	require.NoError(t, err, out)
	assert.Contains(t, out, ">1,234.5</td>")
}

func TestRender_EnvOverridesSettings(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "notes.md", "```acl\n570\n0.5\n---\n1\n```\n")

	cmd := exec.Command(binaryPath, "render", doc, "--format", "html")
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "ACJ_COMMA_AS_DECIMAL=true")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	assert.Contains(t, string(out), ">0,5</td>")
}

func TestRewrite_InPlace(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "notes.md", "# Notes\n"+ledgerBlock+"tail\n")

	out, err := runIn(t, dir, "rewrite", doc, "--format", "markdown")
	require.NoError(t, err, out)
	assert.Contains(t, out, "1 blocks, 0 failed")

	data, err := os.ReadFile(doc)
	require.NoError(t, err)
	want := "# Notes\n" +
		"| (570) Caja, euros |  |\n" +
		"| --- | --- |\n" +
		"| 100 | 150 |\n" +
		"| 200 | 150 |\n" +
		"|  |  |\n" +
		"tail\n"
	assert.Equal(t, want, string(data))
}

func TestRewrite_Commit(t *testing.T) {
	dir := t.TempDir()
	git := func(args ...string) string {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
		return string(out)
	}
	git("init", "-q")
	doc := writeDoc(t, dir, "notes.md", journalBlock)

	out, err := runIn(t, dir, "rewrite", doc, "--commit")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Committed 1 files")

	assert.Contains(t, git("log", "--format=%s", "-1"), "rewrite: notes.md")
	data, err := os.ReadFile(doc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `<table class="acj-table acj-journal">`))
}

func TestRewrite_CommitOutsideRepo(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "notes.md", journalBlock)

	_, err := runIn(t, dir, "rewrite", doc, "--commit")
	assert.Error(t, err)
}

func TestExport_XLSX(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "notes.md", journalBlock+ledgerBlock+brokenBlock)
	xlsx := filepath.Join(dir, "out.xlsx")

	out, err := runIn(t, dir, "export", doc, "-o", xlsx)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Exported 2 tables")

	f, err := excelize.OpenFile(xlsx)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"2024-01-01", "(570) Caja, euros"}, f.GetSheetList())
}

func TestExport_NothingToExport(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "notes.md", brokenBlock)

	_, err := runIn(t, dir, "export", doc, "-o", filepath.Join(dir, "out.xlsx"))
	assert.Error(t, err)
}
