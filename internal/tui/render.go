package tui

import (
	"math"
	"time"

	"github.com/papapumpkin/warren/internal/layers"
	"github.com/papapumpkin/warren/internal/particles"
	"github.com/papapumpkin/warren/internal/phase"
)

// Caption text.
const (
	captionTitle    = "follow the white rabbit..."
	captionIdle     = "click the rabbit to begin the journey"
	captionUnderway = "down the rabbit hole we go..."
	entryPrompt     = "[ enter ]"
)

// scene is everything needed to draw one intro frame.
type scene struct {
	width, height int
	phase         phase.Phase
	layers        []layers.Layer
	frame         int
	progress      float64 // fraction of the current phase elapsed
	elapsed       time.Duration
	particles     []particles.Spec
	hud           bool
}

// render draws the particle field, then the mounted layers. The portal is a
// backdrop and is drawn before any other layer so the rabbit stays in front
// of the hole.
func (s scene) render() *canvas {
	c := newCanvas(s.width, s.height)
	drawParticles(c, s.particles, s.elapsed)

	cx, cy := c.w/2, c.h/2-1
	if l, ok := layers.Has(s.layers, layers.KindPortal); ok {
		cfg := defaultPortalConfig()
		drawPortal(c, float64(cx), float64(cy), cfg, cfg.stageFor(l.Variant, s.progress, s.frame))
	}

	for _, l := range s.layers {
		switch l.Kind {
		case layers.KindEntry:
			drawEntry(c, cx, cy)
		case layers.KindCaption:
			drawCaption(c, s.phase)
		case layers.KindActor:
			drawActor(c, cx, cy, l.Variant)
		case layers.KindOverlay:
			drawOverlay(c, s.progress)
		}
	}

	if s.hud {
		c.text(1, 0, " phase: "+s.phase.String()+" ", inkHUD)
	}
	return c
}

func drawParticles(c *canvas, specs []particles.Spec, elapsed time.Duration) {
	for i, sp := range specs {
		p, ok := sp.At(elapsed)
		if !ok {
			continue
		}
		x := int(math.Round(p.X * float64(c.w-1)))
		y := int(math.Round(p.Y * float64(c.h-1)))
		r := '|'
		if i%3 == 0 {
			r = '·'
		}
		c.set(x, y, r, inkParticle)
	}
}

func drawEntry(c *canvas, cx, cy int) {
	c.stampCentered(cx, cy, artEntry, inkRabbit)
	c.centerText(cy+len(artEntry)/2+2, entryPrompt, inkPrompt)
}

func drawCaption(c *canvas, p phase.Phase) {
	sub := captionUnderway
	if p == phase.Idle {
		sub = captionIdle
	}
	c.centerText(c.h-3, captionTitle, inkCaption)
	c.centerText(c.h-2, sub, inkSubcaption)
}

func drawActor(c *canvas, cx, cy int, pose string) {
	art := artForPose(pose)
	w := len([]rune(art[0]))
	x0, y0 := cx-w/2, cy-len(art)/2
	c.stamp(x0, y0, art, inkRabbit)
	if pose == layers.PoseLooking {
		c.set(x0+artWatchOffset[0], y0+artWatchOffset[1], 'o', inkWatch)
	}
}

var overlayShades = []rune{'░', '▒', '▓', '█'}

// drawOverlay covers the whole canvas, darkening as progress reaches 1.
func drawOverlay(c *canvas, progress float64) {
	i := int(progress * float64(len(overlayShades)))
	i = max(0, min(i, len(overlayShades)-1))
	c.fill(overlayShades[i], inkOverlay)
}
