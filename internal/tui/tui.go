package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program that plays the intro. The program
// uses the alternate screen buffer and reports mouse presses so a click can
// activate the rabbit.
func NewProgram(opts IntroOptions, extra ...tea.ProgramOption) *Program {
	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
	allOpts = append(allOpts, extra...)
	return tea.NewProgram(NewAppModel(opts), allOpts...)
}

// Run plays the intro, blocking until the program exits, and returns the
// final app state.
func Run(opts IntroOptions, extra ...tea.ProgramOption) (AppModel, error) {
	final, err := NewProgram(opts, extra...).Run()
	if err != nil {
		return AppModel{}, fmt.Errorf("TUI error: %w", err)
	}
	app, _ := final.(AppModel)
	return app, nil
}

// WithOutput returns a program option that directs TUI output to the given writer.
// Useful for testing or redirecting output.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}
