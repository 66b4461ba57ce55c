package t2048

import "github.com/vovakirdan/tui-2048/internal/core"

// Animation constants
const (
	slideAnimationDuration = 8 // ~133ms at 60fps
	popAnimationDuration   = 6 // ~100ms at 60fps
)

// TileAnimation represents an animated tile.
type TileAnimation struct {
	Value    int      // Value drawn while animating
	From     Position // Start cell
	To       Position // End cell
	Progress float64  // 0.0 → 1.0
	Merged   bool     // Result of a merge (flash)
	IsNew    bool     // New tile (pop)
}

// AnimationPhase represents the current phase of animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// animation drives the two-phase transition between consecutive views:
// tiles slide from their previous cells, then merged and new tiles pop.
type animation struct {
	phase AnimationPhase
	ticks int

	slides []TileAnimation
	pops   []TileAnimation

	// hidden cells of the target view are not drawn while sliding.
	hidden map[Position]bool
}

// start prepares the animation for a freshly actuated view.
func (a *animation) start(view View) {
	*a = animation{hidden: make(map[Position]bool)}

	for _, t := range view.Tiles() {
		switch {
		case t.IsMerged:
			for _, from := range t.MergedFrom {
				a.slides = append(a.slides, TileAnimation{
					Value: t.Value / 2,
					From:  from,
					To:    t.Position,
				})
			}
			a.pops = append(a.pops, TileAnimation{
				Value:  t.Value,
				From:   t.Position,
				To:     t.Position,
				Merged: true,
			})
			a.hidden[t.Position] = true
		case t.IsNew:
			a.pops = append(a.pops, TileAnimation{
				Value: t.Value,
				From:  t.Position,
				To:    t.Position,
				IsNew: true,
			})
			a.hidden[t.Position] = true
		case t.PreviousPosition != nil && *t.PreviousPosition != t.Position:
			a.slides = append(a.slides, TileAnimation{
				Value: t.Value,
				From:  *t.PreviousPosition,
				To:    t.Position,
			})
			a.hidden[t.Position] = true
		}
	}

	switch {
	case len(a.slides) > 0:
		a.phase = PhaseSlide
	case len(a.pops) > 0:
		a.phase = PhasePop
	}
}

// active reports whether any phase is running.
func (a *animation) active() bool {
	return a.phase != PhaseNone
}

// update advances the animation state by one tick.
// Returns true if animation is still in progress.
func (a *animation) update() bool {
	if !a.active() {
		return false
	}

	a.ticks++

	var duration int
	var current []TileAnimation
	switch a.phase {
	case PhaseSlide:
		duration = slideAnimationDuration
		current = a.slides
	case PhasePop:
		duration = popAnimationDuration
		current = a.pops
	}

	progress := core.ClampF(float64(a.ticks)/float64(duration), 0, 1)
	for i := range current {
		current[i].Progress = progress
	}

	if a.ticks >= duration {
		a.advance()
		return a.active()
	}
	return true
}

// advance completes the current phase.
func (a *animation) advance() {
	a.ticks = 0
	if a.phase == PhaseSlide && len(a.pops) > 0 {
		a.phase = PhasePop
		a.slides = nil
		clear(a.hidden)
		return
	}
	a.finish()
}

// finish drops every pending phase.
func (a *animation) finish() {
	*a = animation{}
}

// isHidden reports whether the view tile at pos is drawn by the animation
// instead of the static board.
func (a *animation) isHidden(pos Position) bool {
	return a.phase == PhaseSlide && a.hidden[pos]
}

// popAt returns the pop animation for pos during the pop phase.
func (a *animation) popAt(pos Position) (TileAnimation, bool) {
	if a.phase != PhasePop {
		return TileAnimation{}, false
	}
	for _, p := range a.pops {
		if p.To == pos {
			return p, true
		}
	}
	return TileAnimation{}, false
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// interpolatePosition calculates the current position during animation, in cells.
func (t *TileAnimation) interpolatePosition() (x, y float64) {
	p := easeOutQuad(t.Progress)
	x = float64(t.From.X) + (float64(t.To.X)-float64(t.From.X))*p
	y = float64(t.From.Y) + (float64(t.To.Y)-float64(t.From.Y))*p
	return x, y
}
