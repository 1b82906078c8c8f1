package share

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSC52Clipboard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OSC52Clipboard{Out: &buf}.WriteAll("hello"))

	out := buf.String()
	assert.Contains(t, out, "\x1b]52;c;")
	assert.Contains(t, out, base64.StdEncoding.EncodeToString([]byte("hello")))
}

func TestSystemClipboard(t *testing.T) {
	var got string
	old := clipboardWriteAll
	clipboardWriteAll = func(s string) error { got = s; return nil }
	defer func() { clipboardWriteAll = old }()

	err := SystemClipboard{}.WriteAll("link")
	if clipboard.Unsupported {
		assert.ErrorIs(t, err, ErrClipboardUnavailable)
		return
	}
	require.NoError(t, err)
	assert.Equal(t, "link", got)
}

func TestFallbackClipboard(t *testing.T) {
	primaryErr := errors.New("no xclip")

	t.Run("primary succeeds", func(t *testing.T) {
		primary, secondary := &fakeClipboard{}, &fakeClipboard{}
		require.NoError(t, FallbackClipboard{Primary: primary, Secondary: secondary}.WriteAll("x"))
		assert.Equal(t, []string{"x"}, primary.Writes())
		assert.Empty(t, secondary.Writes())
	})

	t.Run("falls back", func(t *testing.T) {
		secondary := &fakeClipboard{}
		require.NoError(t, FallbackClipboard{Primary: &fakeClipboard{err: primaryErr}, Secondary: secondary}.WriteAll("x"))
		assert.Equal(t, []string{"x"}, secondary.Writes())
	})

	t.Run("both fail", func(t *testing.T) {
		secondaryErr := errors.New("no tty")
		err := FallbackClipboard{
			Primary:   &fakeClipboard{err: primaryErr},
			Secondary: &fakeClipboard{err: secondaryErr},
		}.WriteAll("x")
		assert.ErrorIs(t, err, primaryErr)
		assert.ErrorIs(t, err, secondaryErr)
	})
}

func TestNewClipboard(t *testing.T) {
	for _, backend := range []string{"", "auto", "system", "osc52"} {
		c, err := NewClipboard(backend, &bytes.Buffer{})
		require.NoError(t, err, backend)
		assert.NotNil(t, c)
	}

	_, err := NewClipboard("fax", nil)
	assert.Error(t, err)
}
