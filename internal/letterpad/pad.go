// Package letterpad implements the hive tile picker: which tile is held
// down, which letter a completed tap emits, and the two-phase shuffle.
// It has no knowledge of words or scoring.
package letterpad

import (
	"time"

	"github.com/vovakirdan/hive/internal/puzzle"
)

// Tile identifies a tile on the pad: an outer index or Center.
type Tile int

// Center is the fixed middle tile. Outer tiles are 0..OuterTiles-1.
const Center Tile = -1

// OuterTiles is the number of tiles around the center.
const OuterTiles = puzzle.MaxOuterLetters

// Valid reports whether t names a tile on the pad.
func (t Tile) Valid() bool {
	return t == Center || (t >= 0 && t < OuterTiles)
}

// State is the pad's current state. Pressed carries the active tile
// separately (see Pad.Active).
type State int

const (
	Idle State = iota
	Pressed
	Shuffling
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Pressed:
		return "Pressed"
	case Shuffling:
		return "Shuffling"
	default:
		return "Unknown"
	}
}

// shufflePhase is the sub-state of Shuffling.
type shufflePhase int

const (
	phaseNone shufflePhase = iota
	phaseCollapse
	phaseExpand
)

// Timing holds the two fixed shuffle delays.
type Timing struct {
	Collapse time.Duration // Tiles shrink, then reorder
	Expand   time.Duration // Tiles grow back
}

// DefaultTiming matches the 200ms shrink and 200ms grow of the hex picker.
func DefaultTiming() Timing {
	return Timing{
		Collapse: 200 * time.Millisecond,
		Expand:   200 * time.Millisecond,
	}
}

// Pad is the letter pad state machine. It is not safe for concurrent use;
// one UI loop owns it.
type Pad struct {
	outer  [OuterTiles]rune
	center rune

	state   State
	active  Tile
	phase   shufflePhase
	elapsed time.Duration

	timing Timing
	rng    Random
}

// Option configures a Pad.
type Option func(*Pad)

// WithTiming sets the shuffle delays.
func WithTiming(t Timing) Option {
	return func(p *Pad) {
		p.timing = t
	}
}

// WithRandom sets the shuffle randomness source.
func WithRandom(r Random) Option {
	return func(p *Pad) {
		p.rng = r
	}
}

// New creates an idle pad. The center tile shows center; outer letters fill
// the ring in order and missing positions are blank.
func New(center rune, outer []rune, opts ...Option) *Pad {
	p := &Pad{
		center: center,
		active: Center,
		timing: DefaultTiming(),
	}
	for i := range p.outer {
		p.outer[i] = puzzle.Blank
		if i < len(outer) {
			p.outer[i] = outer[i]
		}
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = NewSeededRandom(time.Now().UnixNano())
	}
	return p
}

// FromPuzzle creates a pad for def: the required letter in the center and
// the other letters around it.
func FromPuzzle(def puzzle.Definition, opts ...Option) *Pad {
	return New(def.Required(), def.Others(), opts...)
}

// Press starts a press on t. Only an idle pad accepts a press.
func (p *Pad) Press(t Tile) bool {
	if p.state != Idle || !t.Valid() {
		return false
	}
	p.state = Pressed
	p.active = t
	return true
}

// Release ends the current press. The tile's letter is emitted only when t
// is the tile that was pressed; a release elsewhere just returns to Idle.
// Releasing without a press does nothing.
func (p *Pad) Release(t Tile) (rune, bool) {
	if p.state != Pressed {
		return 0, false
	}
	pressed := p.active
	p.state = Idle
	p.active = Center

	if t != pressed {
		return 0, false
	}
	return p.emit(t)
}

// Tap is a press and release on the same tile.
func (p *Pad) Tap(t Tile) (rune, bool) {
	if !p.Press(t) {
		return 0, false
	}
	return p.Release(t)
}

// Cancel drops the current press without emitting.
func (p *Pad) Cancel() {
	if p.state == Pressed {
		p.state = Idle
		p.active = Center
	}
}

// emit returns the letter for t. Blank tiles emit nothing.
func (p *Pad) emit(t Tile) (rune, bool) {
	r := p.Letter(t)
	if r == puzzle.Blank || r == 0 {
		return 0, false
	}
	return r, true
}

// RequestShuffle starts the shuffle transition. Requests while pressed or
// already shuffling are ignored.
func (p *Pad) RequestShuffle() bool {
	if p.state != Idle {
		return false
	}
	p.state = Shuffling
	p.phase = phaseCollapse
	p.elapsed = 0
	return true
}

// Advance moves the shuffle forward by dt. The outer tiles are reordered when
// the collapse delay has passed and the pad returns to Idle after the expand
// delay. A large dt may complete both phases at once.
func (p *Pad) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	for p.state == Shuffling {
		remaining := p.phaseDuration() - p.elapsed
		if dt < remaining {
			p.elapsed += dt
			return
		}
		dt -= remaining
		p.elapsed = 0

		switch p.phase {
		case phaseCollapse:
			p.shuffle()
			p.phase = phaseExpand
		default:
			p.state = Idle
			p.phase = phaseNone
		}
	}
}

func (p *Pad) phaseDuration() time.Duration {
	switch p.phase {
	case phaseCollapse:
		return p.timing.Collapse
	case phaseExpand:
		return p.timing.Expand
	default:
		return 0
	}
}

// shuffle applies a Fisher-Yates permutation to the outer ring.
func (p *Pad) shuffle() {
	for i := len(p.outer) - 1; i > 0; i-- {
		j := p.rng.Intn(i + 1)
		p.outer[i], p.outer[j] = p.outer[j], p.outer[i]
	}
}

// State returns the current state.
func (p *Pad) State() State {
	return p.state
}

// Active returns the pressed tile, if any.
func (p *Pad) Active() (Tile, bool) {
	if p.state != Pressed {
		return 0, false
	}
	return p.active, true
}

// Shuffling reports whether a shuffle transition is in flight.
func (p *Pad) Shuffling() bool {
	return p.state == Shuffling
}

// Collapsed reports whether the tiles are in the shrinking half of a shuffle.
func (p *Pad) Collapsed() bool {
	return p.state == Shuffling && p.phase == phaseCollapse
}

// Scale is the visual tile scale: 1 at rest, falling to 0 while collapsing
// and rising back to 1 while expanding.
func (p *Pad) Scale() float64 {
	if p.state != Shuffling {
		return 1
	}
	d := p.phaseDuration()
	switch p.phase {
	case phaseCollapse:
		if d <= 0 {
			return 0
		}
		return 1 - float64(p.elapsed)/float64(d)
	case phaseExpand:
		if d <= 0 {
			return 1
		}
		return float64(p.elapsed) / float64(d)
	default:
		return 1
	}
}

// Outer returns the outer letters in ring order.
func (p *Pad) Outer() []rune {
	out := make([]rune, len(p.outer))
	copy(out, p.outer[:])
	return out
}

// Center returns the center letter.
func (p *Pad) Center() rune {
	return p.center
}

// Letter returns the letter shown on t, or 0 for an invalid tile.
func (p *Pad) Letter(t Tile) rune {
	switch {
	case t == Center:
		return p.center
	case t.Valid():
		return p.outer[t]
	default:
		return 0
	}
}

// TileFor finds the tile currently showing letter. Blank never matches.
func (p *Pad) TileFor(letter rune) (Tile, bool) {
	if letter == puzzle.Blank || letter == 0 {
		return 0, false
	}
	if letter == p.center {
		return Center, true
	}
	for i, r := range p.outer {
		if r == letter {
			return Tile(i), true
		}
	}
	return 0, false
}
