// Package bubbletea provides a terminal UI for filling and telling a story using the Bubble Tea framework.
package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/madlibs"
	"go.uber.org/zap"
)

// Model is the Bubble Tea model for the question form and the story.
type Model struct {
	page       *page
	controller *madlibs.Controller
	story      madlibs.Story
	clipboard  madlibs.Clipboard
	logger     *zap.Logger

	// UI state
	keymap   KeyMap
	help     help.Model
	styles   madlibs.Styles
	renderer *lipgloss.Renderer
	width    int
	status   string
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	renderer  *lipgloss.Renderer
	theme     madlibs.Theme
	story     *madlibs.Story
	clipboard madlibs.Clipboard
	logger    *zap.Logger
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.renderer = r
	}
}

// WithTheme sets the theme for the model.
func WithTheme(t madlibs.Theme) ModelOption {
	return func(cfg *modelConfig) {
		cfg.theme = t
	}
}

// WithStory replaces the built-in story.
func WithStory(s madlibs.Story) ModelOption {
	return func(cfg *modelConfig) {
		cfg.story = &s
	}
}

// WithClipboard enables copying the finished story.
func WithClipboard(c madlibs.Clipboard) ModelOption {
	return func(cfg *modelConfig) {
		cfg.clipboard = c
	}
}

// WithLogger sets the logger for transitions and clipboard failures.
func WithLogger(l *zap.Logger) ModelOption {
	return func(cfg *modelConfig) {
		cfg.logger = l
	}
}

// NewModel creates a Model showing an empty question form.
func NewModel(opts ...ModelOption) Model {
	cfg := &modelConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	story := madlibs.DefaultStory()
	if cfg.story != nil {
		story = *cfg.story
	}
	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	var styles madlibs.Styles
	if cfg.theme != nil {
		styles = cfg.theme.Styles()
	}

	keymap := DefaultKeyMap()
	keymap.Copy.SetEnabled(cfg.clipboard != nil)

	p := newPage(story)
	p.focusOn(0)

	m := Model{
		page:       p,
		controller: madlibs.NewController(p, madlibs.WithLogger(logger)),
		story:      story,
		clipboard:  cfg.clipboard,
		logger:     logger,
		keymap:     keymap,
		help:       help.New(),
		styles:     styles,
		renderer:   cfg.renderer,
	}
	m.help.Styles.ShortKey = m.style(styles.Help).Bold(true)
	m.help.Styles.ShortDesc = m.style(styles.Help)
	m.help.Styles.ShortSeparator = m.style(styles.Help)
	for i := range p.inputs {
		p.inputs[i].TextStyle = m.style(styles.Input)
		p.inputs[i].PlaceholderStyle = m.style(styles.Placeholder)
	}
	return m
}

// Mode returns the current view mode.
func (m Model) Mode() madlibs.ViewMode {
	return m.controller.Mode()
}

// FieldValue returns the text currently typed into field.
func (m Model) FieldValue(field string) string {
	return m.page.FieldValue(field)
}

// Slot returns the content last written to a story slot.
func (m Model) Slot(slot string) string {
	return m.page.slot(slot)
}

// StoryText returns the story as plain text with the current slot contents.
func (m Model) StoryText() string {
	return m.story.Render(m.page.slot)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.page.setWidth(max(msg.Width-labelWidth()-4, 10))
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.Cancel) {
			return m, tea.Quit
		}
		if m.controller.Mode() == madlibs.Displaying {
			return m.updateStory(msg)
		}
		return m.updateForm(msg)
	}

	if m.controller.Mode() == madlibs.Asking {
		return m.updateFocused(msg)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Submit):
		m.submit()
		return m, nil
	case key.Matches(msg, m.keymap.Advance):
		if m.page.onLastField() {
			m.submit()
			return m, nil
		}
		m.page.focusOn(m.page.focus + 1)
		return m, nil
	case key.Matches(msg, m.keymap.NextField):
		m.page.focusOn(m.page.focus + 1)
		return m, nil
	case key.Matches(msg, m.keymap.PrevField):
		m.page.focusOn(m.page.focus - 1)
		return m, nil
	}
	return m.updateFocused(msg)
}

func (m Model) updateStory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Replay):
		m.controller.Replay()
		m.page.focusOn(0)
		m.status = ""
		return m, textinput.Blink
	case key.Matches(msg, m.keymap.Copy):
		m.copyStory()
		return m, nil
	}
	return m, nil
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	i := m.page.focus
	m.page.inputs[i], cmd = m.page.inputs[i].Update(msg)
	return m, cmd
}

// submit runs the submit transition. The key that triggered it never reaches an input.
func (m *Model) submit() {
	m.controller.Submit()
	m.page.inputs[m.page.focus].Blur()
	m.status = ""
}

func (m *Model) copyStory() {
	if m.clipboard == nil {
		return
	}
	if err := m.clipboard.Copy(m.StoryText()); err != nil {
		m.logger.Warn("copy story", zap.Error(err))
		m.status = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.status = "story copied to clipboard"
}

// View implements tea.Model.
func (m Model) View() string {
	var parts []string
	if m.page.visible[madlibs.RegionQuestions] {
		parts = append(parts, m.formView(), m.help.View(formHelp{m.keymap}))
	}
	if m.page.visible[madlibs.RegionStory] {
		parts = append(parts, m.storyView())
		if m.status != "" {
			parts = append(parts, m.style(m.styles.Status).Render(m.status))
		}
		parts = append(parts, m.help.View(storyHelp{m.keymap}))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) formView() string {
	var b strings.Builder
	b.WriteString(m.style(m.styles.Title).Bold(true).Render("Fill in the blanks"))
	b.WriteString("\n\n")

	labelStyle := m.style(m.styles.Label).Width(labelWidth())
	for i, field := range m.page.fields {
		marker := "  "
		if i == m.page.focus {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(labelStyle.Render(madlibs.Labels[field]))
		b.WriteString(m.page.inputs[i].View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) storyView() string {
	textStyle := m.style(m.styles.Story)
	slotStyle := m.style(m.styles.Slot)
	body := m.story.RenderFunc(
		func(text string) string { return textStyle.Render(text) },
		func(slot string) string { return slotStyle.Render(m.page.slot(slot)) },
	)
	if m.width > 0 {
		body = m.newStyle().Width(m.width).Render(body)
	}

	var b strings.Builder
	b.WriteString(m.style(m.styles.Title).Bold(true).Render(m.story.Title))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	return b.String()
}

// labelWidth returns the column width that fits every field label.
func labelWidth() int {
	w := 0
	for _, label := range madlibs.Labels {
		w = max(w, lipgloss.Width(label))
	}
	return w + 2
}

// newStyle creates a new lipgloss style using the model's renderer.
func (m Model) newStyle() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// style creates a lipgloss style from a ColorPair.
func (m Model) style(cp madlibs.ColorPair) lipgloss.Style {
	style := m.newStyle()
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}
