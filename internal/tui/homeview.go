package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RouteIntro is the navigation target that remounts the intro.
const RouteIntro = "intro"

// HomeModel is the screen the intro navigates to.
type HomeModel struct {
	Width  int
	Height int
	keys   KeyMap
}

// NewHome returns the home screen.
func NewHome() HomeModel {
	return HomeModel{keys: HomeKeyMap()}
}

// Update handles the home screen's own bindings. Quitting is handled by the
// app.
func (h HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, h.keys.Back) {
		return h, func() tea.Msg { return MsgNavigate{Target: RouteIntro} }
	}
	return h, nil
}

// Keys returns the bindings active on the home screen.
func (h HomeModel) Keys() KeyMap {
	return h.keys
}

// View renders the title block centered in the available space.
func (h HomeModel) View() string {
	block := lipgloss.JoinVertical(lipgloss.Center,
		Logo(),
		"",
		styleHomeTitle.Render("welcome to wonderland"),
		styleHomeSubtitle.Render("you followed the rabbit all the way down"),
		"",
		styleMenuNormal.Render(styleSelectionIndicator.Render(selectionIndicator)+" press b to meet the rabbit again"),
	)
	if h.Width <= 0 || h.Height <= 0 {
		return block
	}
	return lipgloss.Place(h.Width, h.Height, lipgloss.Center, lipgloss.Center, block)
}
