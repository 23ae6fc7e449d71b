package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&buf)
	return c, &buf
}

func TestConfigSchema_PrintsJSON(t *testing.T) {
	configWriteSchema = false
	c, buf := newTestCommand()

	require.NoError(t, runConfigSchema(c, nil))

	var schema map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &schema))
	assert.Contains(t, buf.String(), "drop_down_rows")
	assert.Contains(t, buf.String(), "color_scheme")
}

func TestGenDocs_Markdown(t *testing.T) {
	dir := t.TempDir()
	genDocsFormat, genDocsOutputDir = "markdown", dir
	t.Cleanup(func() { genDocsFormat, genDocsOutputDir = "man", "" })
	c, buf := newTestCommand()

	require.NoError(t, runGenDocs(c, nil))

	for _, name := range []string{"tuikit.md", "tuikit_demo.md", "tuikit_logs.md", "tuikit_config_schema.md"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	assert.Contains(t, buf.String(), "Generated markdown docs in "+dir)
	assert.Contains(t, buf.String(), "  - tuikit_demo.md")
}

func TestGenDocs_UnsupportedFormat(t *testing.T) {
	genDocsFormat, genDocsOutputDir = "html", t.TempDir()
	t.Cleanup(func() { genDocsFormat, genDocsOutputDir = "man", "" })
	c, _ := newTestCommand()

	require.EqualError(t, runGenDocs(c, nil), `unsupported format "html" (use: man, markdown)`)
}

func TestCommandsRegistered(t *testing.T) {
	for _, path := range [][]string{
		{"demo"}, {"resize"}, {"logs"}, {"logs", "clear"}, {"about"}, {"version"},
		{"config", "path"}, {"config", "show"}, {"config", "schema"}, {"config", "edit"}, {"gen-docs"},
	} {
		found, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.NotSame(t, rootCmd, found, path)
	}
}
