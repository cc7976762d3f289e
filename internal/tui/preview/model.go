// ============================================================================
// mathemascii - AsciiMath to MathML
// ============================================================================
//
// Package:     preview
// Description: Live preview: AsciiMath input, MathML output, tokens and
//              warnings, re-rendered as the user types
// Author:      mathemascii authors
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package preview

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mathemascii/mathemascii/foundation/asciimath/diag"
	"github.com/mathemascii/mathemascii/internal/render/service"
)

// Renderer converts input for the preview
type Renderer interface {
	Render(ctx context.Context, req *service.RenderRequest) (*service.RenderResponse, error)
	Tokens(ctx context.Context, input string) (*service.TokensResponse, error)
}

// Pane selects what the output viewport shows
type Pane int

const (
	PaneMathML Pane = iota
	PaneTokens
)

// Config holds preview configuration
type Config struct {
	Renderer Renderer
	Input    string        // initial input
	Block    bool          // block display
	Indent   string        // MathML indentation, two spaces when empty
	Debounce time.Duration // delay between the last keystroke and rendering
}

// Model is the Bubbletea model of the preview
type Model struct {
	width  int
	height int
	ready  bool

	input    textarea.Model
	output   viewport.Model
	pane     Pane
	block    bool
	indent   string
	debounce time.Duration

	renderer Renderer
	copyFn   func(string) error

	seq     int
	current string
	render  *service.RenderResponse
	tokens  *service.TokensResponse
	err     error
	status  string
}

// New creates a preview model
func New(cfg Config) Model {
	ta := textarea.New()
	ta.Placeholder = "sum_(i=1)^n i^2 = (n(n+1)(2n+1))/6"
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.SetValue(cfg.Input)
	ta.Focus()

	indent := cfg.Indent
	if indent == "" {
		indent = "  "
	}
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = 150 * time.Millisecond
	}

	return Model{
		input:    ta,
		block:    cfg.Block,
		indent:   indent,
		debounce: debounce,
		renderer: cfg.Renderer,
		copyFn:   clipboard.WriteAll,
	}
}

// Init renders the initial input
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.renderCmd(m.seq))
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlY:
			return m, m.copyCmd()
		case tea.KeyCtrlB:
			m.block = !m.block
			return m.schedule(0)
		case tea.KeyTab:
			m.pane = (m.pane + 1) % 2
			m.updateOutput()
			return m, nil
		case tea.KeyPgUp:
			m.output.ViewUp()
			return m, nil
		case tea.KeyPgDown:
			m.output.ViewDown()
			return m, nil
		}

		before := m.input.Value()
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		if m.input.Value() != before {
			next, tick := m.schedule(m.debounce)
			m = next.(Model)
			cmds = append(cmds, tick)
		}
		return m, tea.Batch(cmds...)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(msg.Width - 4)

		outputHeight := max(msg.Height-m.input.Height()-10, 3)
		if !m.ready {
			m.output = viewport.New(msg.Width-4, outputHeight)
			m.ready = true
		} else {
			m.output.Width = msg.Width - 4
			m.output.Height = outputHeight
		}
		m.updateOutput()

	case renderTickMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		return m, m.renderCmd(msg.seq)

	case renderedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.err = msg.err
		if msg.err == nil {
			m.render = msg.render
			m.tokens = msg.tokens
			m.current = msg.render.Input
		}
		m.status = ""
		m.updateOutput()

	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "MathML copied to clipboard"
		}
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// schedule bumps the sequence and renders after delay
func (m Model) schedule(delay time.Duration) (tea.Model, tea.Cmd) {
	m.seq++
	seq := m.seq
	if delay <= 0 {
		return m, m.renderCmd(seq)
	}
	return m, tea.Tick(delay, func(time.Time) tea.Msg {
		return renderTickMsg{seq: seq}
	})
}

func (m Model) renderCmd(seq int) tea.Cmd {
	input := m.input.Value()
	display := "inline"
	if m.block {
		display = "block"
	}
	renderer, indent := m.renderer, m.indent

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		render, err := renderer.Render(ctx, &service.RenderRequest{Input: input, Display: display, Indent: indent, Source: "tui"})
		if err != nil {
			return renderedMsg{seq: seq, err: err}
		}
		tokens, err := renderer.Tokens(ctx, input)
		return renderedMsg{seq: seq, render: render, tokens: tokens, err: err}
	}
}

func (m Model) copyCmd() tea.Cmd {
	if m.render == nil {
		return nil
	}
	text, copyFn := m.render.MathML, m.copyFn
	return func() tea.Msg {
		return copiedMsg{err: copyFn(text)}
	}
}

func (m *Model) updateOutput() {
	if !m.ready {
		return
	}
	switch {
	case m.err != nil:
		m.output.SetContent(ErrorStyle.Render(m.err.Error()))
	case m.render == nil:
		m.output.SetContent(SubHeaderStyle.Render("rendering..."))
	case m.pane == PaneTokens:
		m.output.SetContent(m.tokenLines())
	default:
		m.output.SetContent(m.render.MathML)
	}
}

func (m Model) tokenLines() string {
	if m.tokens == nil || len(m.tokens.Tokens) == 0 {
		return SubHeaderStyle.Render("no tokens")
	}
	var b strings.Builder
	for _, t := range m.tokens.Tokens {
		kind := t.Kind
		if t.Name != "" {
			kind += "." + t.Name
		}
		fmt.Fprintf(&b, "%-8s %s %s\n", t.Span, TokenTextStyle.Render(t.Text), TokenKindStyle.Render(kind))
	}
	return strings.TrimRight(b.String(), "\n")
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading preview..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(PaneStyle.Width(m.width - 2).Render(m.input.View()))
	b.WriteString("\n")

	title := "MathML"
	if m.pane == PaneTokens {
		title = "Tokens"
	}
	b.WriteString(PaneTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(PaneStyle.Width(m.width - 2).Render(m.output.View()))
	b.WriteString("\n")
	b.WriteString(m.renderWarnings())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderHeader() string {
	display := "inline"
	if m.block {
		display = "block"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		LogoStyle.Render("mathemascii"),
		"  ",
		SubHeaderStyle.Render("live preview · "+display),
	)
}

func (m Model) renderWarnings() string {
	if m.status != "" {
		return StatusOKStyle.Render(m.status)
	}
	if m.render == nil || len(m.render.Warnings) == 0 {
		return StatusOKStyle.Render("no warnings")
	}
	lines := make([]string, 0, len(m.render.Warnings))
	for _, w := range m.render.Warnings {
		lines = append(lines, WarningStyle.Render(diag.Format(m.current, w, false)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHelp() string {
	return HelpStyle.Render("ctrl+b display · tab tokens/mathml · ctrl+y copy · pgup/pgdn scroll · esc quit")
}

// Run starts the preview TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
