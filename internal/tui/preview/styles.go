// ============================================================================
// mathemascii - AsciiMath to MathML
// ============================================================================
//
// Package:     preview
// Description: Styles for the live preview TUI
// Author:      mathemascii authors
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package preview

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorBorder    = lipgloss.Color("#334155") // Slate 700
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Italic(true)

	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	PaneTitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	TokenKindStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TokenTextStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)
