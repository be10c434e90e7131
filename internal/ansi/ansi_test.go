package ansi

import (
	"bytes"
	"os"
	"testing"
)

func TestFor_NonTerminal(t *testing.T) {
	t.Parallel()

	if got := For(&bytes.Buffer{}); got != (Palette{}) {
		t.Errorf("For(buffer) = %+v, want zero palette", got)
	}

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if Enabled(f) {
		t.Error("Enabled(regular file) = true, want false")
	}
}

func TestColors(t *testing.T) {
	t.Parallel()

	c := Colors()
	if c.Reset != Reset || c.Bold != Bold || c.Magenta != Magenta {
		t.Errorf("Colors() = %+v, missing codes", c)
	}
}

func TestEnabled_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if Enabled(os.Stdout) {
		t.Error("Enabled with NO_COLOR set = true, want false")
	}
}
