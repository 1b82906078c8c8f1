package share

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// ErrClipboardUnavailable is returned when no clipboard utility is present.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Clipboard is a write-only clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// SystemClipboard writes through the platform clipboard utility
// (pbcopy, xclip, wl-copy, ...).
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboardWriteAll(text)
}

// OSC52Clipboard asks the terminal to set the clipboard with an OSC 52
// escape sequence. It works over SSH and, with passthrough, inside tmux.
type OSC52Clipboard struct {
	Out  io.Writer
	Tmux bool
}

// WriteAll implements Clipboard.
func (c OSC52Clipboard) WriteAll(text string) error {
	out := c.Out
	if out == nil {
		out = os.Stderr
	}
	seq := osc52.New(text)
	if c.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(out); err != nil {
		return fmt.Errorf("osc52 write: %w", err)
	}
	return nil
}

// FallbackClipboard tries Primary and, if that fails, Secondary.
type FallbackClipboard struct {
	Primary   Clipboard
	Secondary Clipboard
}

// WriteAll implements Clipboard.
func (c FallbackClipboard) WriteAll(text string) error {
	err := c.Primary.WriteAll(text)
	if err == nil {
		return nil
	}
	if err2 := c.Secondary.WriteAll(text); err2 != nil {
		return errors.Join(err, err2)
	}
	return nil
}

// NewClipboard returns the clipboard for a configured backend name.
// out receives OSC 52 sequences; nil means standard error.
func NewClipboard(backend string, out io.Writer) (Clipboard, error) {
	tmux := os.Getenv("TMUX") != ""
	switch backend {
	case "system":
		return SystemClipboard{}, nil
	case "osc52":
		return OSC52Clipboard{Out: out, Tmux: tmux}, nil
	case "", "auto":
		return FallbackClipboard{
			Primary:   SystemClipboard{},
			Secondary: OSC52Clipboard{Out: out, Tmux: tmux},
		}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q", backend)
	}
}
