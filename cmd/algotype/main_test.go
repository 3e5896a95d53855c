package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/algotype/typeset"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const testPage = `<html><head></head><body>
<alg-algorithm name="Loop">
  <alg-while condition="$i < n$" label="main">
    <alg-step>$i \gets i + 1$</alg-step>
    <alg-continue>other</alg-continue>
  </alg-while>
  <alg-break></alg-break>
</alg-algorithm>
</body></html>`

func TestLoadConfig(t *testing.T) {
	conf, err := loadConfig([]byte(`
[typeset]
indentation-width = 15pt
step-comment-tag  = "//"
strictness        = warn

[page]
mathjax    = true
css-file   = extra.css
lint       = true

[trace]
level = Debug
`))
	require.NoError(t, err)
	assert.Equal(t, dimen.DU(15)*dimen.PT, conf.IndentationWidth)
	assert.Equal(t, typeset.Px(typeset.DefaultSpacerGap), conf.SpacerGap)
	assert.Equal(t, "//", conf.StepCommentTag)
	assert.Equal(t, typeset.DefaultCommentTag, conf.HeaderCommentTag)
	assert.Equal(t, typeset.Warn, conf.Strictness)
	assert.True(t, conf.MathJax)
	assert.False(t, conf.Stylesheet)
	assert.Equal(t, "extra.css", conf.CSSFile)
	assert.True(t, conf.Lint)
	assert.Equal(t, tracing.LevelDebug, conf.TraceLevel)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig([]byte("[typeset]\nstrictness = pedantic\n"))
	assert.Error(t, err)
	_, err = loadConfig([]byte("[typeset]\nspacer-gap = 2em\n"))
	assert.Error(t, err)
	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}

func TestApplyFlags(t *testing.T) {
	conf := defaultConfig()
	conf.SpacerGap = typeset.Px(5)
	app := cli.NewApp()
	app.Flags = append(globalFlags(), typesetFlags()...)
	app.Action = func(c *cli.Context) error {
		return conf.applyFlags(c)
	}
	err := app.Run([]string{"algotype", "--indentation-width", "12", "--strictness", "strict", "--css", "my.css", "--lint"})
	require.NoError(t, err)
	assert.Equal(t, typeset.Px(12), conf.IndentationWidth)
	assert.Equal(t, typeset.Px(5), conf.SpacerGap, "flags not given must not override settings")
	assert.True(t, conf.Lint)
	assert.Equal(t, typeset.Strict, conf.Strictness)
	assert.Equal(t, "my.css", conf.CSSFile)
	assert.True(t, conf.Stylesheet)
	//
	err = app.Run([]string{"algotype", "--strictness", "sloppy"})
	assert.Error(t, err)
	err = app.Run([]string{"algotype", "--spacer-gap", "narrow"})
	assert.Error(t, err)
}

func TestProcessorFromConfig(t *testing.T) {
	css := filepath.Join(t.TempDir(), "extra.css")
	require.NoError(t, os.WriteFile(css, []byte(".algotype-label { color: olive }"), 0644))
	conf := defaultConfig()
	conf.Stylesheet, conf.CSSFile, conf.IndentationWidth = true, css, typeset.Px(16)
	proc, err := conf.processor()
	require.NoError(t, err)
	var out bytes.Buffer
	report, err := proc.ProcessHTML(strings.NewReader(testPage), &out)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Typeset)
	assert.Contains(t, out.String(), "color: olive;")
	assert.Contains(t, out.String(), `width="24px"`)
	//
	conf.CSSFile = filepath.Join(t.TempDir(), "missing.css")
	_, err = conf.processor()
	assert.Error(t, err)
}

func TestTypesetPageWithLint(t *testing.T) {
	conf := defaultConfig()
	conf.Lint = true
	proc, err := conf.processor()
	require.NoError(t, err)
	var out, diag bytes.Buffer
	failed, err := typesetPage(proc, "test.html", strings.NewReader(testPage), &out, &diag)
	require.NoError(t, err)
	t.Logf("diagnostics:\n%s", diag.String())
	assert.Equal(t, 0, failed)
	assert.Contains(t, out.String(), `<p style="text-align:left">`)
	assert.Contains(t, diag.String(), `test.html: algorithm #0 "Loop": algorithm/break[1]: error: break outside of a loop`)
	//
	conf.Lint = false
	proc, err = conf.processor()
	require.NoError(t, err)
	diag.Reset()
	_, err = typesetPage(proc, "test.html", strings.NewReader(testPage), &out, &diag)
	require.NoError(t, err)
	assert.Empty(t, diag.String())
}

func TestLintPage(t *testing.T) {
	var out bytes.Buffer
	errs, err := lintPage("test.html", strings.NewReader(testPage), &out)
	require.NoError(t, err)
	t.Logf("lint output:\n%s", out.String())
	assert.Equal(t, 2, errs)
	assert.Contains(t, out.String(), `test.html: #0 algorithm/while[0]/continue[1]: error: label "other" does not name an enclosing loop`)
	assert.Contains(t, out.String(), "test.html: #0 algorithm/break[1]: error: break outside of a loop")
}

func TestDumpPage(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, dumpPage(strings.NewReader(testPage), &out, false))
	assert.True(t, strings.HasPrefix(out.String(), `algorithm name="Loop"`))
	out.Reset()
	require.NoError(t, dumpPage(strings.NewReader(testPage), &out, true))
	assert.True(t, strings.HasPrefix(out.String(), "digraph g {"))
}
