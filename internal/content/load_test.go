package content

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_JSON(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "data.json"))
	require.NoError(t, err)

	assert.Equal(t, "Habit Hero", c.App.Name)
	assert.Equal(t, 4.5, c.App.OverallRating)
	assert.Equal(t, 1284, c.App.TotalRatings)
	assert.Len(t, c.Screenshots, 4)
	assert.Equal(t, "2.4.0", c.WhatsNew.Version)
	assert.Equal(t, 72.0, c.Ratings.Distribution["5"])
	require.Len(t, c.Reviews, 3)
	assert.Equal(t, 2.5, c.Reviews[2].Rating)
	assert.True(t, c.Information.ShowPricing())
	assert.Equal(t, PriceTier{Name: "Hero Yearly", Price: "$19.99"}, c.Information.Pricing[1])
}

func TestLoad_YAML(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "data.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Tiny Tasks", c.App.Name)
	assert.Equal(t, 3.5, c.Ratings.Overall)
	assert.Equal(t, 20.0, c.Ratings.Distribution["4"])
	assert.False(t, c.Information.ShowPricing())
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "invalid.json"))
	require.ErrorIs(t, err, ErrInvalidContent)

	msg := err.Error()
	for _, field := range []string{"App.Name", "App.OverallRating", "App.TotalRatings", "App.LiveAppLink", "Reviews[0].Title"} {
		assert.Contains(t, msg, field)
	}
	assert.Contains(t, msg, "Distribution")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`{"app": `), FormatJSON)
	assert.ErrorIs(t, err, ErrInvalidContent)

	_, err = Parse([]byte("app: [\n"), FormatYAML)
	assert.ErrorIs(t, err, ErrInvalidContent)

	_, err = Parse([]byte(`{}`), Format("toml"))
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestParse_MinimalIsValid(t *testing.T) {
	c, err := Parse([]byte(`{"app":{"name":"Solo"}}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "Solo", c.App.Name)
	assert.Empty(t, c.Reviews)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFor("listing.YML"))
	assert.Equal(t, FormatYAML, FormatFor("a/b/listing.yaml"))
	assert.Equal(t, FormatJSON, FormatFor("data.json"))
	assert.Equal(t, FormatJSON, FormatFor("data"))
}

func TestShowPricing(t *testing.T) {
	assert.False(t, Information{InAppPurchases: true}.ShowPricing())
	assert.False(t, Information{Pricing: []PriceTier{{Name: "x", Price: "$1"}}}.ShowPricing())
	assert.True(t, Information{InAppPurchases: true, Pricing: []PriceTier{{Name: "x", Price: "$1"}}}.ShowPricing())
}

// writeContent writes a valid listing named name to path.
func writeContent(t *testing.T, path, name string) {
	t.Helper()
	body := strings.ReplaceAll(`{"app":{"name":"NAME","overallRating":4}}`, "NAME", name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}
