package tui

import "github.com/charmbracelet/lipgloss"

var (
	textPrimaryColor   = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#CCCCCC"}
	textMutedColor     = lipgloss.AdaptiveColor{Light: "#8C959F", Dark: "#696969"}
	accentColor        = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#3498DB"}
	statusWarningColor = lipgloss.AdaptiveColor{Light: "#B7791F", Dark: "#FECA57"}
	statusErrorColor   = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF8787"}
	dangerBgColor      = lipgloss.AdaptiveColor{Light: "#922B21", Dark: "#922B21"}

	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	metaStyle        = lipgloss.NewStyle().Foreground(textMutedColor)
	descriptionStyle = lipgloss.NewStyle().Foreground(textPrimaryColor)
	badgeStyle       = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(accentColor)
	selectedStyle    = lipgloss.NewStyle().Bold(true)
	viewerStyle      = lipgloss.NewStyle().Foreground(accentColor)
	cancelStyle      = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF")).Background(dangerBgColor)
	bannerStyle      = lipgloss.NewStyle().Foreground(statusWarningColor)
	errorStyle       = lipgloss.NewStyle().Bold(true).Foreground(statusErrorColor)
	helpStyle        = lipgloss.NewStyle().Foreground(textMutedColor)
	boxStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(textMutedColor).Padding(0, 1)
)
