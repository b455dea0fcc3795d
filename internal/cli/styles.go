// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#46B5FF")
	// SuccessColor indicates successful operations or winning verdicts.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates warnings or pending verdicts.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates errors or losing verdicts.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// InfoColor indicates informational messages, including the
	// "no qualifying result" state, which is deliberately styled
	// apart from errors.
	InfoColor = lipgloss.Color("#95E1D3")
	// SubtleColor indicates less prominent output.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)
