package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"go.uber.org/zap"

	"github.com/viant/dequery/codemod"
	"github.com/viant/dequery/config"
	"github.com/viant/dequery/rule"
)

func TestPrintRules(t *testing.T) {
	var out bytes.Buffer
	printRules(&out, rule.Default())
	text := out.String()
	assert.Contains(t, text, "NAME")
	for _, name := range rule.Default().Names() {
		assert.Contains(t, text, name)
	}
}

func TestInitConfig(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	dir := t.TempDir()

	URL, err := initConfig(ctx, fs, dir)
	require.NoError(t, err)
	cfg, err := config.Load(ctx, fs, URL)
	require.NoError(t, err)
	assert.EqualValues(t, config.Default(), cfg)

	_, err = initConfig(ctx, fs, dir)
	assert.ErrorIs(t, err, os.ErrExist)
}

func TestRunFix(t *testing.T) {
	logger = zap.NewNop()
	ctx := context.Background()
	fs := afs.New()
	dir := t.TempDir()
	app := filepath.Join(dir, "app.js")
	require.NoError(t, os.WriteFile(app, []byte("$(el).hide();\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("version: v1.0.0\nrules:\n  disable: [show]\n"), 0644))

	cfgFile = ""
	cfg, err := loadConfig(ctx, fs, app)
	require.NoError(t, err)
	assert.EqualValues(t, []string{"show"}, cfg.Rules.Disable)

	transformer, err := codemod.New(cfg, codemod.WithFS(fs), codemod.WithLogger(logger))
	require.NoError(t, err)
	reportURL = filepath.Join(dir, "report.yaml")
	dryRun = false
	defer func() { reportURL = "" }()

	failed := runFix(ctx, fs, transformer, []string{dir})
	assert.False(t, failed)

	content, err := os.ReadFile(app)
	require.NoError(t, err)
	assert.EqualValues(t, "el.style.display = 'none';\n", string(content))

	report, err := os.ReadFile(reportURL)
	require.NoError(t, err)
	assert.Contains(t, string(report), "changed: 1")
}

func TestLocation(t *testing.T) {
	assert.EqualValues(t, "mem://localhost/a", location("mem://localhost/a"))
	abs, err := filepath.Abs("src")
	require.NoError(t, err)
	assert.EqualValues(t, abs, location("src"))
}
