// Package viewer defines the boundary to the molecular rendering
// engine.
//
// The engine is an external collaborator: it receives a structure
// payload and per-atom coloring/selection instructions, owns its own
// canvas and mouse-driven rotate/zoom/pan loop, and reports hover and
// click events back through registered callbacks. Nothing in this
// module renders pixels; Renderer is the contract an engine binding
// implements.
package viewer

import "github.com/maheshreddyy345/protein-structure-visualizer-sub000/structure"

// Representation selects among the engine's fixed set of styles.
type Representation string

const (
	Cartoon Representation = "cartoon"
	Surface Representation = "surface"
	Stick   Representation = "stick"
)

// StyleSpec describes one style pass: a representation plus either a
// flat color or a per-residue color function. When ColorFunc is set it
// takes precedence over FlatColor.
type StyleSpec struct {
	Representation Representation
	FlatColor      string
	ColorFunc      structure.ColorFunc
}

// AtomEvent identifies the residue under the pointer for hover/click
// callbacks.
type AtomEvent struct {
	ResidueNumber int
	Chain         string
}

// Renderer is implemented by a rendering engine binding. Style and
// selection calls return nothing beyond an error; the engine applies
// them to its own canvas.
type Renderer interface {
	// LoadStructure replaces the displayed structure with the given
	// payload and applies the initial style.
	LoadStructure(payload []byte, style StyleSpec) error

	// SetStyle re-runs a style pass over the loaded structure.
	SetStyle(style StyleSpec) error

	// Highlight marks one residue, keyed by (residue number, chain).
	Highlight(residueNumber int, chain string)

	// ClearHighlight removes any active highlight.
	ClearHighlight()

	// OnHover registers the hover callback. A nil callback unregisters.
	OnHover(fn func(AtomEvent))

	// OnClick registers the click callback. A nil callback unregisters.
	OnClick(fn func(AtomEvent))
}
