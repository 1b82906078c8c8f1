package ui

import (
	"strings"
	"time"

	"storefront/internal/textclamp"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// ExpansionState is whether an ExpandableText shows all of its text.
type ExpansionState int

const (
	Collapsed ExpansionState = iota
	Expanded
)

func (s ExpansionState) String() string {
	if s == Expanded {
		return "expanded"
	}
	return "collapsed"
}

const (
	DefaultDescriptionLines = 2
	DefaultSettleDelay      = 100 * time.Millisecond
)

// measureMsg is the deferred measurement scheduled by Mount. It is only
// honoured by the instance and mount generation that asked for it.
type measureMsg struct {
	id    string
	epoch int
}

// ExpandableText is a block of text clamped to a few lines, with a toggle
// that is offered only when the text does not fit.
type ExpandableText struct {
	id    string
	epoch int

	text     string
	width    int
	maxLines int
	settle   time.Duration

	state    ExpansionState
	overflow bool
	measured bool
	mounted  bool

	keys      KeyMap
	styles    Styles
	moreLabel string
	lessLabel string
}

// ExpandableOption configures an ExpandableText.
type ExpandableOption func(*ExpandableText)

// WithMaxLines sets the collapsed line count.
func WithMaxLines(n int) ExpandableOption {
	return func(e *ExpandableText) {
		if n > 0 {
			e.maxLines = n
		}
	}
}

// WithSettleDelay sets the delay between mount and the first measurement.
// Zero measures on the next update cycle.
func WithSettleDelay(d time.Duration) ExpandableOption {
	return func(e *ExpandableText) {
		if d >= 0 {
			e.settle = d
		}
	}
}

// WithTextStyles sets the styles used for the body and the toggle.
func WithTextStyles(s Styles) ExpandableOption {
	return func(e *ExpandableText) {
		e.styles = s
	}
}

// WithToggleLabels overrides the "more" / "show less" labels.
func WithToggleLabels(more, less string) ExpandableOption {
	return func(e *ExpandableText) {
		e.moreLabel = more
		e.lessLabel = less
	}
}

// WithToggleKeys overrides the key bindings.
func WithToggleKeys(k KeyMap) ExpandableOption {
	return func(e *ExpandableText) {
		e.keys = k
	}
}

// NewExpandableText creates a collapsed, unmounted instance.
func NewExpandableText(text string, opts ...ExpandableOption) ExpandableText {
	e := ExpandableText{
		id:        uuid.NewString(),
		text:      text,
		maxLines:  DefaultDescriptionLines,
		settle:    DefaultSettleDelay,
		state:     Collapsed,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		moreLabel: "more",
		lessLabel: "show less",
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// ID returns the instance id carried by its messages.
func (e ExpandableText) ID() string { return e.id }

// State returns the expansion state.
func (e ExpandableText) State() ExpansionState { return e.state }

// Overflow reports whether the text needs more than the collapsed lines at
// the current width.
func (e ExpandableText) Overflow() bool { return e.overflow }

// Mounted reports whether the instance receives resizes and measurements.
func (e ExpandableText) Mounted() bool { return e.mounted }

// Text returns the current text.
func (e ExpandableText) Text() string { return e.text }

// Mount starts listening for resizes and schedules the first measurement
// once layout has settled. Every mount starts collapsed and unmeasured.
func (e ExpandableText) Mount(width int) (ExpandableText, tea.Cmd) {
	e.mounted = true
	e.epoch++
	e.state = Collapsed
	e.overflow = false
	e.measured = false
	if width > 0 {
		e.width = width
	}

	msg := measureMsg{id: e.id, epoch: e.epoch}
	if e.settle <= 0 {
		return e, func() tea.Msg { return msg }
	}
	return e, tea.Tick(e.settle, func(time.Time) tea.Msg { return msg })
}

// Unmount stops listening. Measurements scheduled before now are dropped.
func (e ExpandableText) Unmount() ExpandableText {
	e.mounted = false
	e.epoch++
	return e
}

// SetText replaces the text. A changed text starts collapsed again and is
// re-measured immediately when a width is known.
func (e ExpandableText) SetText(text string) ExpandableText {
	if text == e.text {
		return e
	}
	e.text = text
	e.state = Collapsed
	if e.mounted {
		e.measure()
	}
	return e
}

// Update handles resizes, deferred measurements and the toggle key.
func (e ExpandableText) Update(msg tea.Msg) (ExpandableText, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !e.mounted {
			return e, nil
		}
		e.width = msg.Width
		e.measure()

	case measureMsg:
		if msg.id != e.id || msg.epoch != e.epoch || !e.mounted {
			return e, nil
		}
		e.measure()

	case tea.KeyMsg:
		if key.Matches(msg, e.keys.Toggle) {
			e.Toggle()
		}
	}
	return e, nil
}

// Toggle flips the expansion state. It does nothing unless the text
// overflows.
func (e *ExpandableText) Toggle() {
	if !e.overflow {
		return
	}
	if e.state == Collapsed {
		e.state = Expanded
	} else {
		e.state = Collapsed
	}
}

func (e *ExpandableText) measure() {
	m := textclamp.Measure(e.text, e.width, e.maxLines)
	e.measured = m.OK
	e.overflow = m.Overflow
}

// View renders the text. Before the first measurement the collapsed form
// is shown without a control.
func (e ExpandableText) View() string {
	if e.width <= 0 {
		return e.styles.Body.Render(e.text)
	}

	var lines []string
	if e.state == Collapsed && (e.overflow || !e.measured) {
		lines = []string{textclamp.Clamp(e.text, e.width, e.maxLines)}
		if e.overflow {
			lines = append(lines, e.styles.Link.Render(e.moreLabel))
		}
	} else {
		lines = []string{strings.Join(textclamp.Wrap(e.text, e.width), "\n")}
		if e.overflow {
			lines = append(lines, e.styles.Link.Render(e.lessLabel))
		}
	}

	lines[0] = e.styles.Body.Render(lines[0])
	return strings.Join(lines, "\n")
}
