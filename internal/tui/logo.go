package tui

import "github.com/charmbracelet/lipgloss"

// Logo style definitions for the home screen header.
var (
	styleLogoTrail = lipgloss.NewStyle().Foreground(colorPrimary)
	styleLogoCore  = lipgloss.NewStyle().Foreground(colorBrightWhite).Bold(true)
)

// Logo returns a styled single-line warren logo for the home screen header.
// The trails on either side lead into the burrow.
func Logo() string {
	sp := styleLogoTrail.Render(" ")
	return styleLogoTrail.Render("·∙●") +
		sp +
		styleLogoCore.Render("WARREN") +
		sp +
		styleLogoTrail.Render("●∙·")
}

// LogoPlain returns the unstyled logo text for plain contexts.
func LogoPlain() string {
	return "·∙● WARREN ●∙·"
}
