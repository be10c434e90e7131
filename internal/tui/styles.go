package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#FF5252") // Red: rabbit-hole accent
	colorAccent      = lipgloss.Color("#FFD700") // Gold: the watch
	colorMuted       = lipgloss.Color("#636363") // Gray: de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray: normal text
	colorWhite       = lipgloss.Color("#EEEEEE") // Off-white: primary text
	colorBrightWhite = lipgloss.Color("#FFFFFF") // Pure white: the rabbit
	colorSurfaceDim  = lipgloss.Color("#181825") // Darkest surface: footer bg
	colorVoid        = lipgloss.Color("#050505") // Near black: final overlay
	colorParticle    = lipgloss.Color("#5A1E1E") // Dim red: background streaks
)

// ink identifies how a canvas cell is drawn.
type ink int

const (
	inkBlank ink = iota
	inkParticle
	inkRabbit
	inkWatch
	inkCaption
	inkSubcaption
	inkPrompt
	inkPortalDim
	inkPortalMid
	inkPortalBright
	inkPortalCore
	inkOverlay
	inkHUD
	inkCount
)

// styleInk maps each ink to its lipgloss style.
var styleInk [inkCount]lipgloss.Style

func init() {
	styleInk[inkBlank] = lipgloss.NewStyle()
	styleInk[inkParticle] = lipgloss.NewStyle().Foreground(colorParticle)
	styleInk[inkRabbit] = lipgloss.NewStyle().Foreground(colorBrightWhite).Bold(true)
	styleInk[inkWatch] = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleInk[inkCaption] = lipgloss.NewStyle().Foreground(colorWhite)
	styleInk[inkSubcaption] = lipgloss.NewStyle().Foreground(colorPrimary).Faint(true)
	styleInk[inkPrompt] = lipgloss.NewStyle().Foreground(colorMutedLight).Italic(true)

	// Portal ramp, far halo to core. Adapted from the binary-star Doppler ramps.
	styleInk[inkPortalDim] = lipgloss.NewStyle().Foreground(lipgloss.Color("#2a1030"))
	styleInk[inkPortalMid] = lipgloss.NewStyle().Foreground(lipgloss.Color("#6a2060"))
	styleInk[inkPortalBright] = lipgloss.NewStyle().Foreground(lipgloss.Color("#c04080"))
	styleInk[inkPortalCore] = lipgloss.NewStyle().Foreground(lipgloss.Color("#f0a0c0")).Bold(true)

	styleInk[inkOverlay] = lipgloss.NewStyle().Foreground(colorVoid)
	styleInk[inkHUD] = lipgloss.NewStyle().Foreground(colorPrimary)
}

// Home screen styles.
var (
	styleHomeTitle = lipgloss.NewStyle().
			Foreground(colorBrightWhite).
			Bold(true)

	styleHomeSubtitle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Faint(true)

	styleMenuNormal = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleSelectionIndicator = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)
)

// Footer styles: top border, clear key/desc contrast.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleFooterNotice = lipgloss.NewStyle().
				Foreground(colorAccent)
)

// Selection indicator prepended to the active menu row.
const selectionIndicator = "▎"
