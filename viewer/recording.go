package viewer

import (
	"errors"
	"sync"

	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/structure"
)

// Recording is a Renderer that records calls instead of drawing.
// Used by tests and by the CLI, which has no canvas to hand the real
// engine.
type Recording struct {
	mu sync.Mutex

	payload    []byte
	style      StyleSpec
	loaded     bool
	highlights []AtomEvent
	onHover    func(AtomEvent)
	onClick    func(AtomEvent)
}

// NewRecording creates an empty recording renderer.
func NewRecording() *Recording {
	return &Recording{}
}

// LoadStructure implements Renderer.
func (r *Recording) LoadStructure(payload []byte, style StyleSpec) error {
	if len(payload) == 0 {
		return errors.New("recording renderer: empty payload")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payload = payload
	r.style = style
	r.loaded = true
	r.highlights = nil
	return nil
}

// SetStyle implements Renderer.
func (r *Recording) SetStyle(style StyleSpec) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.loaded {
		return errors.New("recording renderer: no structure loaded")
	}
	r.style = style
	return nil
}

// Highlight implements Renderer.
func (r *Recording) Highlight(residueNumber int, chain string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.highlights = append(r.highlights, AtomEvent{ResidueNumber: residueNumber, Chain: chain})
}

// ClearHighlight implements Renderer.
func (r *Recording) ClearHighlight() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.highlights = nil
}

// OnHover implements Renderer.
func (r *Recording) OnHover(fn func(AtomEvent)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onHover = fn
}

// OnClick implements Renderer.
func (r *Recording) OnClick(fn func(AtomEvent)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onClick = fn
}

// ColorOf resolves the color the engine would paint for a residue
// under the current style: the color function when set, otherwise the
// flat color, otherwise the neutral color.
func (r *Recording) ColorOf(residueNumber int, chain string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.style.ColorFunc != nil {
		return r.style.ColorFunc(residueNumber, chain)
	}
	if r.style.FlatColor != "" {
		return r.style.FlatColor
	}
	return structure.ColorNeutral
}

// Loaded reports whether a structure has been loaded.
func (r *Recording) Loaded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loaded
}

// Style returns the current style.
func (r *Recording) Style() StyleSpec {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.style
}

// Highlights returns the active highlights in call order.
func (r *Recording) Highlights() []AtomEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]AtomEvent, len(r.highlights))
	copy(out, r.highlights)
	return out
}

// EmitHover simulates a pointer hover from the engine side.
func (r *Recording) EmitHover(ev AtomEvent) {
	r.mu.Lock()
	fn := r.onHover
	r.mu.Unlock()
	if fn != nil {
		fn(ev)
	}
}

// EmitClick simulates a pointer click from the engine side.
func (r *Recording) EmitClick(ev AtomEvent) {
	r.mu.Lock()
	fn := r.onClick
	r.mu.Unlock()
	if fn != nil {
		fn(ev)
	}
}

// Verify Recording implements the renderer boundary.
var _ Renderer = (*Recording)(nil)
