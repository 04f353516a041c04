package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor    = lipgloss.Color("99")  // Purple
	errorColor      = lipgloss.Color("196") // Red
	mutedColor      = lipgloss.Color("245") // Gray
	accentColor     = lipgloss.Color("212") // Pink
	backgroundColor = lipgloss.Color("235") // Dark gray

	darkText  = lipgloss.Color("#000000")
	lightText = lipgloss.Color("#FFFFFF")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Align(lipgloss.Center).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor)

	blockStyle = lipgloss.NewStyle().
			Align(lipgloss.Center, lipgloss.Center)

	selectedBlockStyle = blockStyle.
				BorderStyle(lipgloss.DoubleBorder())

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true)

	theoryLabelStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor)

	// Popup styles
	popupBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 3).
			Background(backgroundColor)

	popupTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	highlightedOptionStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	swatchStyle = lipgloss.NewStyle().
			Width(16).
			Height(2).
			MarginTop(1)
)
