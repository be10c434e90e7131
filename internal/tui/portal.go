package tui

import (
	"math"

	"github.com/papapumpkin/warren/internal/phase"
)

// portalConfig controls the vortex drawn for the portal layer.
type portalConfig struct {
	MaxRadius float64 // in columns; rows are scaled by portalAspect
	Arms      int
	Twist     float64 // radians of spiral per column of radius
	SpinDeg   float64 // rotation per frame, degrees
}

func defaultPortalConfig() portalConfig {
	return portalConfig{
		MaxRadius: 16,
		Arms:      3,
		Twist:     0.45,
		SpinDeg:   6,
	}
}

// Terminal cells are roughly twice as tall as they are wide.
const portalAspect = 2.1

// portalStage is the vortex geometry for one frame.
type portalStage struct {
	radius float64
	angle  float64
	hole   float64 // fraction of radius left dark in the middle
}

// stageFor computes the vortex for the given portal variant. progress is how
// far the current phase has run, in [0, 1]; frame drives the rotation.
func (cfg portalConfig) stageFor(variant string, progress float64, frame int) portalStage {
	progress = math.Max(0, math.Min(1, progress))
	spin := float64(frame) * cfg.SpinDeg * math.Pi / 180.0

	switch variant {
	case phase.HoleAppearing.String():
		// Ease-out opening, spinning up as it grows.
		eased := 1.0 - math.Pow(1.0-progress, 2.5)
		return portalStage{radius: cfg.MaxRadius * eased, angle: spin * eased, hole: 0.15}
	case phase.Falling.String():
		// The vortex swallows the screen while spinning faster.
		return portalStage{radius: cfg.MaxRadius * (1 + 2*progress), angle: spin * (1 + progress), hole: 0.25 + 0.5*progress}
	default:
		return portalStage{radius: cfg.MaxRadius, angle: spin, hole: 0.2}
	}
}

// drawPortal stamps the vortex centered on (cx, cy).
func drawPortal(c *canvas, cx, cy float64, cfg portalConfig, st portalStage) {
	if st.radius < 0.5 {
		return
	}
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			d := portalDist(float64(x), float64(y), cx, cy)
			if d > st.radius {
				continue
			}
			norm := d / st.radius
			if norm < st.hole {
				c.set(x, y, ' ', inkBlank)
				continue
			}
			theta := math.Atan2((float64(y)-cy)*portalAspect, float64(x)-cx)
			swirl := math.Sin(float64(cfg.Arms)*theta + d*cfg.Twist - st.angle)
			intensity := (1-norm)*0.8 + 0.35*swirl
			r, k := portalCell(intensity)
			if r == ' ' {
				continue
			}
			c.set(x, y, r, k)
		}
	}
}

var portalDensityRamp = []rune{' ', '.', '·', ':', '*', '@'}

func portalCell(v float64) (rune, ink) {
	switch {
	case v > 0.85:
		return portalDensityRamp[5], inkPortalCore
	case v > 0.6:
		return portalDensityRamp[4], inkPortalBright
	case v > 0.4:
		return portalDensityRamp[3], inkPortalBright
	case v > 0.25:
		return portalDensityRamp[2], inkPortalMid
	case v > 0.1:
		return portalDensityRamp[1], inkPortalDim
	default:
		return portalDensityRamp[0], inkBlank
	}
}

func portalDist(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := (y1 - y2) * portalAspect
	return math.Sqrt(dx*dx + dy*dy)
}
