package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// CompactWidth is the terminal width below which the footer drops
// binding descriptions.
const CompactWidth = 60

// Footer renders context-sensitive keybinding hints and an optional notice.
type Footer struct {
	Width    int
	Bindings []key.Binding
	Notice   string
}

// View renders the footer as a single line of keybinding hints.
// In compact mode (narrow terminals), shows only key hints without descriptions.
func (f Footer) View() string {
	compact := f.Width < CompactWidth

	var parts []string
	for _, b := range f.Bindings {
		if !b.Enabled() {
			continue
		}
		help := b.Help()
		var part string
		if compact {
			part = styleFooterKey.Render(help.Key)
		} else {
			part = styleFooterKey.Render(help.Key) + styleFooterSep.Render(":") + styleFooterDesc.Render(help.Desc)
		}
		parts = append(parts, part)
	}
	sep := styleFooterSep.Render("  ")
	if compact {
		sep = styleFooterSep.Render(" ")
	}
	line := strings.Join(parts, sep)
	if f.Notice != "" {
		line += sep + styleFooterNotice.Render(f.Notice)
	}
	return styleFooter.Width(f.Width).Render(line)
}

// IntroFooterBindings returns footer bindings for the intro screen.
func IntroFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Activate, km.ForcePhase, km.ForceNavigate, km.Teardown, km.Quit}
}

// HomeFooterBindings returns footer bindings for the home screen.
func HomeFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Back, km.Quit}
}
