// Package layers maps an intro phase to the visual layers that should be
// mounted while it is active. The mapping is a pure function of the phase:
// renderers can call it at any time and get the same answer.
package layers

import "github.com/papapumpkin/warren/internal/phase"

// Kind identifies a visual layer. Kinds are ordered back to front.
type Kind int

const (
	KindEntry Kind = iota
	KindCaption
	KindActor
	KindPortal
	KindOverlay
)

var kindNames = [...]string{
	KindEntry:   "entry",
	KindCaption: "caption",
	KindActor:   "actor",
	KindPortal:  "portal",
	KindOverlay: "overlay",
}

// String returns the layer kind name.
func (k Kind) String() string {
	if k < KindEntry || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Actor poses.
const (
	PoseNeutral  = "neutral"
	PoseLooking  = "looking"
	PoseEntering = "entering"
)

// Layer is one mounted visual layer and the variant it should draw.
// Layers without variants carry an empty Variant.
type Layer struct {
	Kind    Kind
	Variant string
}

// String renders the layer as kind or kind:variant.
func (l Layer) String() string {
	if l.Variant == "" {
		return l.Kind.String()
	}
	return l.Kind.String() + ":" + l.Variant
}

// ShowCaption reports whether the caption is visible in p. The caption shows
// from the start until looking-watch hides it.
func ShowCaption(p phase.Phase) bool {
	return p < phase.LookingWatch
}

// For returns the layers mounted during p, back to front.
func For(p phase.Phase) []Layer {
	var out []Layer
	if p == phase.Idle {
		out = append(out, Layer{Kind: KindEntry})
	}
	if ShowCaption(p) {
		out = append(out, Layer{Kind: KindCaption})
	}
	switch p {
	case phase.Transforming, phase.LookingWatch, phase.EnteringHole:
		out = append(out, Layer{Kind: KindActor, Variant: Pose(p)})
	}
	switch p {
	case phase.HoleAppearing, phase.HoleSpinning, phase.EnteringHole, phase.Falling:
		out = append(out, Layer{Kind: KindPortal, Variant: p.String()})
	}
	if p == phase.Transitioning {
		out = append(out, Layer{Kind: KindOverlay})
	}
	return out
}

// Pose returns the actor pose for p.
func Pose(p phase.Phase) string {
	switch p {
	case phase.LookingWatch:
		return PoseLooking
	case phase.EnteringHole:
		return PoseEntering
	default:
		return PoseNeutral
	}
}

// Has reports whether set contains a layer of kind k and returns it.
func Has(set []Layer, k Kind) (Layer, bool) {
	for _, l := range set {
		if l.Kind == k {
			return l, true
		}
	}
	return Layer{}, false
}

// Row pairs a phase with its layer set.
type Row struct {
	Phase  phase.Phase
	Layers []Layer
}

// Table returns the layer set for every phase in timeline order.
func Table() []Row {
	all := phase.All()
	rows := make([]Row, 0, len(all))
	for _, p := range all {
		rows = append(rows, Row{Phase: p, Layers: For(p)})
	}
	return rows
}
