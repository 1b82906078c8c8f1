package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	repoContent = "../../content/data.json"
	repoLegal   = "../../content"
)

// execute runs the root command with args and a config file that does not
// exist, so defaults apply.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, env := range []string{"STOREFRONT_CONTENT", "STOREFRONT_LEGAL_DIR", "STOREFRONT_THEME", "STOREFRONT_CLIPBOARD", "STOREFRONT_LOG_LEVEL"} {
		t.Setenv(env, "")
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yaml")))
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		configPath, contentPath, legalDir = "storefront.yaml", "", ""
		renderWidth, renderExpanded, legalWidth = 80, false, 80
		verbose = false
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func hasLine(s, want string) bool {
	for _, l := range strings.Split(s, "\n") {
		if strings.TrimSpace(l) == want {
			return true
		}
	}
	return false
}

func TestRender(t *testing.T) {
	out, err := execute(t, "render", "--content", repoContent, "--width", "80")
	require.NoError(t, err)

	assert.Contains(t, out, "Habit Hero")
	assert.Contains(t, out, "Ratings & Reviews")
	assert.True(t, hasLine(out, "more"), "collapsed description offers more")
	assert.False(t, hasLine(out, "show less"))
	assert.NotContains(t, out, "choose")
}

func TestRender_Expanded(t *testing.T) {
	out, err := execute(t, "render", "--content", repoContent, "--width", "80", "--expanded")
	require.NoError(t, err)

	assert.True(t, hasLine(out, "show less"))
	assert.Contains(t, out, "choose")
}

func TestRender_BadWidth(t *testing.T) {
	_, err := execute(t, "render", "--content", repoContent, "--width", "0")
	assert.Error(t, err)
}

func TestRender_MissingContent(t *testing.T) {
	_, err := execute(t, "render", "--content", filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLegal(t *testing.T) {
	out, err := execute(t, "legal", "privacy", "--legal-dir", repoLegal, "--width", "60")
	require.NoError(t, err)

	assert.Contains(t, out, "Privacy Policy")
	assert.NotContains(t, out, "export const")

	out, err = execute(t, "legal", "terms", "--legal-dir", repoLegal)
	require.NoError(t, err)
	assert.Contains(t, out, "Terms of Service")
	assert.NotContains(t, out, "import {")
}

func TestLegal_UnknownKind(t *testing.T) {
	_, err := execute(t, "legal", "cookies", "--legal-dir", repoLegal)
	assert.ErrorContains(t, err, "unknown legal document")
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate", "--content", repoContent, "--legal-dir", repoLegal)
	require.NoError(t, err)

	assert.Contains(t, out, "✓ "+repoContent+": Habit Hero")
	assert.Contains(t, out, "✓ Privacy Policy")
	assert.Contains(t, out, "✓ Terms of Service")
}

func TestValidate_Failures(t *testing.T) {
	out, err := execute(t, "validate",
		"--content", "../../internal/content/testdata/invalid.json",
		"--legal-dir", t.TempDir())
	require.Error(t, err)

	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, out, "✗ ../../internal/content/testdata/invalid.json")
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	t.Setenv("STOREFRONT_CONTENT", "")
	t.Setenv("STOREFRONT_LEGAL_DIR", "")
	configPath = filepath.Join(t.TempDir(), "none.yaml")
	contentPath = "listing.yaml"
	legalDir = "docs"
	t.Cleanup(func() { configPath, contentPath, legalDir = "storefront.yaml", "", "" })

	c, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "listing.yaml", c.Content.Path)
	assert.Equal(t, "docs", c.Legal.Dir)
	assert.Equal(t, "auto", c.Share.Backend)
}

func TestLoadStartup_MissingLegalIsNotFatal(t *testing.T) {
	t.Setenv("STOREFRONT_CONTENT", "")
	t.Setenv("STOREFRONT_LEGAL_DIR", "")
	configPath = filepath.Join(t.TempDir(), "none.yaml")
	contentPath = repoContent
	legalDir = t.TempDir()
	t.Cleanup(func() { configPath, contentPath, legalDir = "storefront.yaml", "", "" })

	var err error
	cfg, err = loadConfig()
	require.NoError(t, err)

	startup, err := loadStartup(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "Habit Hero", startup.content.App.Name)
	assert.Empty(t, startup.docs)
	assert.Len(t, startup.docErrs, 2)
}
