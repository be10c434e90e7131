package tui

import (
	"strings"
	"testing"
)

func TestLogo(t *testing.T) {
	t.Parallel()

	t.Run("contains WARREN text", func(t *testing.T) {
		t.Parallel()
		got := Logo()
		if !strings.Contains(got, "WARREN") {
			t.Errorf("Logo() should contain WARREN, got: %s", got)
		}
	})

	t.Run("is single line", func(t *testing.T) {
		t.Parallel()
		if got := Logo(); strings.Contains(got, "\n") {
			t.Errorf("Logo() should be a single line, got: %s", got)
		}
	})
}

func TestLogoPlain(t *testing.T) {
	t.Parallel()

	if got, want := LogoPlain(), "·∙● WARREN ●∙·"; got != want {
		t.Errorf("LogoPlain() = %q, want %q", got, want)
	}
}
