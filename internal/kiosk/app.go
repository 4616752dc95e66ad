package kiosk

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/communiteer/welcomehub/internal/form"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Width(26).Foreground(lipgloss.Color("#AAAAAA"))
	focusStyle   = lipgloss.NewStyle().Width(26).Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	choiceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")).MarginTop(1)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#98C379")).MarginTop(1)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).MarginTop(1)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444444")).Padding(0, 1)
)

type changedMsg struct{}

type closedMsg struct{}

type submitDoneMsg struct{ err error }

// Option customizes App construction.
type Option func(*App)

// WithContext sets the context submissions run under.
func WithContext(ctx context.Context) Option {
	return func(a *App) {
		if ctx != nil {
			a.ctx = ctx
		}
	}
}

// WithTitle overrides the heading.
func WithTitle(title string) Option {
	return func(a *App) {
		a.title = title
	}
}

// App is the kiosk model. It renders one form and forwards edits to its
// controller.
type App struct {
	ctx     context.Context
	title   string
	session session
	fields  []Field
	cursor  int
	input   textinput.Model
	events  chan tea.Msg
	width   int
}

// NewCheckinApp builds a kiosk around a check-in controller.
func NewCheckinApp(c *form.CheckinForm, opts ...Option) *App {
	return newApp(bind(c, form.CheckinSpec()), CheckinFields(), "Welcome Hub · Check in", opts)
}

// NewEoiApp builds a kiosk around an EOI controller.
func NewEoiApp(c *form.EoiForm, opts ...Option) *App {
	return newApp(bind(c, form.EoiSpec()), EoiFields(), "Welcome Hub · Expression of interest", opts)
}

func newApp(s session, fields []Field, title string, opts []Option) *App {
	a := &App{
		ctx:     context.Background(),
		title:   title,
		session: s,
		fields:  fields,
		input:   textinput.New(),
		events:  make(chan tea.Msg, 16),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.input.Prompt = ""
	a.input.CharLimit = 200

	// Timer callbacks run on their own goroutines; hand their effects to the
	// event loop.
	s.Subscribe(
		func() { a.post(changedMsg{}) },
		func() { a.post(closedMsg{}) },
	)
	a.focus()
	return a
}

func (a *App) post(msg tea.Msg) {
	select {
	case a.events <- msg:
	default:
	}
}

func (a *App) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-a.events
	}
}

// Init starts listening for controller events.
func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.waitForEvent())
}

// Update handles keys and controller events.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil

	case changedMsg:
		a.syncInput()
		return a, a.waitForEvent()

	case closedMsg:
		a.cursor = 0
		a.focus()
		return a, a.waitForEvent()

	case submitDoneMsg:
		a.syncInput()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		a.session.Close()
		return a, tea.Quit
	case "ctrl+r":
		a.session.Reset()
		a.cursor = 0
		a.focus()
		return a, nil
	case "down", "tab":
		a.move(1)
		return a, nil
	case "up", "shift+tab":
		a.move(-1)
		return a, nil
	case "enter":
		return a, a.submit()
	}

	field, ok := a.current()
	if !ok {
		return a, nil
	}
	if len(field.Options) > 0 {
		switch msg.String() {
		case "right", " ":
			a.cycle(field, 1)
		case "left":
			a.cycle(field, -1)
		}
		return a, nil
	}

	var cmd tea.Cmd
	before := a.input.Value()
	a.input, cmd = a.input.Update(msg)
	if value := a.input.Value(); value != before {
		_ = a.session.Update(field.Key, value)
	}
	return a, cmd
}

func (a *App) submit() tea.Cmd {
	s, ctx := a.session, a.ctx
	return func() tea.Msg {
		return submitDoneMsg{err: s.Submit(ctx)}
	}
}

// visibleFields returns the indexes of rows currently shown.
func (a *App) visibleFields() []int {
	var out []int
	for i, f := range a.fields {
		if f.visible(a.session.Value) {
			out = append(out, i)
		}
	}
	return out
}

func (a *App) current() (Field, bool) {
	visible := a.visibleFields()
	if len(visible) == 0 {
		return Field{}, false
	}
	if a.cursor >= len(visible) {
		a.cursor = len(visible) - 1
	}
	return a.fields[visible[a.cursor]], true
}

func (a *App) move(delta int) {
	visible := a.visibleFields()
	if len(visible) == 0 {
		return
	}
	a.cursor = (a.cursor + delta + len(visible)) % len(visible)
	a.focus()
}

func (a *App) cycle(field Field, delta int) {
	current := a.session.Value(field.Key)
	next := 0
	for i, option := range field.Options {
		if option == current {
			next = (i + delta + len(field.Options)) % len(field.Options)
			break
		}
	}
	if current == "" && delta < 0 {
		next = len(field.Options) - 1
	}
	_ = a.session.Update(field.Key, field.Options[next])
}

func (a *App) focus() {
	field, ok := a.current()
	if !ok || len(field.Options) > 0 {
		a.input.Blur()
		return
	}
	a.input.SetValue(a.session.Value(field.Key))
	a.input.CursorEnd()
	a.input.Focus()
}

func (a *App) syncInput() {
	field, ok := a.current()
	if !ok || len(field.Options) > 0 {
		return
	}
	if value := a.session.Value(field.Key); value != a.input.Value() {
		a.input.SetValue(value)
	}
}

// View renders the form.
func (a *App) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.title))
	b.WriteString("\n")

	focused, _ := a.current()
	for _, i := range a.visibleFields() {
		field := a.fields[i]
		isFocused := field.Key == focused.Key

		label := labelStyle.Render(field.Label)
		if isFocused {
			label = focusStyle.Render("› " + field.Label)
		}

		var value string
		switch {
		case isFocused && len(field.Options) == 0:
			value = a.input.View()
		case len(field.Options) > 0:
			value = choiceStyle.Render(fmt.Sprintf("‹ %s ›", field.display(a.session.Value(field.Key))))
		default:
			value = a.session.Value(field.Key)
		}
		b.WriteString(label + value + "\n")
	}

	st := a.session.State()
	switch {
	case st.Status == form.StatusSubmitting:
		b.WriteString(footerStyle.Render("Submitting…") + "\n")
	case st.Error != "":
		b.WriteString(errorStyle.Render(st.Error) + "\n")
	}
	if st.SuccessVisible {
		b.WriteString(successStyle.Render(st.SuccessMessage) + "\n")
	}

	b.WriteString(footerStyle.Render("↑/↓ move · ←/→ choose · enter submit · ctrl+r reset · esc quit"))
	return boxStyle.Render(b.String())
}
