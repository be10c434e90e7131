package tui

import "strings"

// canvas is a fixed grid of runes with one ink per cell. Layers are stamped
// back to front, so later stamps cover earlier ones.
type canvas struct {
	w, h  int
	cells []rune
	inks  []ink
}

func newCanvas(w, h int) *canvas {
	w, h = max(w, 1), max(h, 1)
	c := &canvas{
		w:     w,
		h:     h,
		cells: make([]rune, w*h),
		inks:  make([]ink, w*h),
	}
	for i := range c.cells {
		c.cells[i] = ' '
	}
	return c
}

func (c *canvas) in(x, y int) bool {
	return x >= 0 && x < c.w && y >= 0 && y < c.h
}

func (c *canvas) set(x, y int, r rune, k ink) {
	if !c.in(x, y) {
		return
	}
	c.cells[y*c.w+x] = r
	c.inks[y*c.w+x] = k
}

func (c *canvas) at(x, y int) (rune, ink) {
	if !c.in(x, y) {
		return ' ', inkBlank
	}
	return c.cells[y*c.w+x], c.inks[y*c.w+x]
}

// text writes s starting at (x, y). Spaces overwrite.
func (c *canvas) text(x, y int, s string, k ink) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r, k)
	}
}

// centerText writes s horizontally centered on row y.
func (c *canvas) centerText(y int, s string, k ink) {
	c.text((c.w-len([]rune(s)))/2, y, s, k)
}

// stamp draws art with its top-left corner at (x, y). Spaces in the art are
// transparent.
func (c *canvas) stamp(x, y int, art []string, k ink) {
	for dy, line := range art {
		for dx, r := range []rune(line) {
			if r == ' ' {
				continue
			}
			c.set(x+dx, y+dy, r, k)
		}
	}
}

// stampCentered draws art centered on (cx, cy).
func (c *canvas) stampCentered(cx, cy int, art []string, k ink) {
	w := 0
	for _, line := range art {
		w = max(w, len([]rune(line)))
	}
	c.stamp(cx-w/2, cy-len(art)/2, art, k)
}

func (c *canvas) fill(r rune, k ink) {
	for i := range c.cells {
		c.cells[i] = r
		c.inks[i] = k
	}
}

// String renders the grid, styling runs of equal ink together.
func (c *canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		row := y * c.w
		start := 0
		for x := 1; x <= c.w; x++ {
			if x < c.w && c.inks[row+x] == c.inks[row+start] {
				continue
			}
			run := string(c.cells[row+start : row+x])
			if k := c.inks[row+start]; k == inkBlank {
				sb.WriteString(run)
			} else {
				sb.WriteString(styleInk[k].Render(run))
			}
			start = x
		}
		if y < c.h-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// plain returns the grid without styling.
func (c *canvas) plain() string {
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		sb.WriteString(string(c.cells[y*c.w : (y+1)*c.w]))
		if y < c.h-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
