package ui

import (
	"context"

	"storefront/internal/share"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// shareFeedbackMsg carries a change of the share acknowledgement flag. The
// channel identifies the subscription it came from.
type shareFeedbackMsg struct {
	ch     <-chan bool
	active bool
}

// shareResultMsg reports a finished clipboard write.
type shareResultMsg struct {
	err error
}

// ShareButton copies the listing link and shows "Copied" while the
// action's feedback window is open.
type ShareButton struct {
	action *share.Action
	link   string
	hidden bool
	active bool

	ch     <-chan bool
	cancel func()

	keys   KeyMap
	styles Styles
}

// NewShareButton creates a button for action. A nil action disables it.
func NewShareButton(action *share.Action, link string, styles Styles, keys KeyMap) ShareButton {
	return ShareButton{
		action: action,
		link:   link,
		keys:   keys,
		styles: styles,
	}
}

// Enabled reports whether the button is shown and reacts to its key.
func (b ShareButton) Enabled() bool {
	return b.action != nil && b.link != "" && !b.hidden
}

// Active reports whether the "Copied" tooltip is showing.
func (b ShareButton) Active() bool { return b.active }

// SetHidden hides the button on narrow layouts.
func (b ShareButton) SetHidden(hidden bool) ShareButton {
	b.hidden = hidden
	return b
}

// SetLink replaces the payload copied on share.
func (b ShareButton) SetLink(link string) ShareButton {
	b.link = link
	return b
}

// Mount subscribes to the action's flag. The subscription lives until
// Unmount.
func (b ShareButton) Mount() (ShareButton, tea.Cmd) {
	if b.action == nil || b.cancel != nil {
		return b, nil
	}
	b.ch, b.cancel = b.action.Subscribe()
	b.active = b.action.Active()
	return b, listenShare(b.ch)
}

// Unmount drops the subscription. Its listener ends when the channel
// closes.
func (b ShareButton) Unmount() ShareButton {
	if b.cancel != nil {
		b.cancel()
	}
	b.ch, b.cancel = nil, nil
	return b
}

func listenShare(ch <-chan bool) tea.Cmd {
	return func() tea.Msg {
		active, ok := <-ch
		if !ok {
			return nil
		}
		return shareFeedbackMsg{ch: ch, active: active}
	}
}

// Update handles the share key and flag changes.
func (b ShareButton) Update(msg tea.Msg) (ShareButton, tea.Cmd) {
	switch msg := msg.(type) {
	case shareFeedbackMsg:
		if b.ch == nil || msg.ch != b.ch {
			return b, nil
		}
		b.active = msg.active
		return b, listenShare(b.ch)

	case shareResultMsg:
		// Failures were logged by the action; the page stays as it is.
		if msg.err == nil && b.action != nil {
			b.active = b.action.Active()
		}

	case tea.KeyMsg:
		if !b.Enabled() || !key.Matches(msg, b.keys.Share) {
			return b, nil
		}
		action, link := b.action, b.link
		return b, func() tea.Msg {
			return shareResultMsg{err: action.Invoke(context.Background(), link)}
		}
	}
	return b, nil
}

// View renders the control, or nothing when disabled.
func (b ShareButton) View() string {
	if !b.Enabled() {
		return ""
	}
	out := b.styles.Link.Render("⇪ Share")
	if b.active {
		out += " " + b.styles.Tooltip.Render("Copied")
	}
	return out
}
