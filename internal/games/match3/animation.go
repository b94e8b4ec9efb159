package match3

import (
	"sync"

	"github.com/vovakirdan/tilematch/internal/config"
	"github.com/vovakirdan/tilematch/internal/games/match3/board"
	"github.com/vovakirdan/tilematch/internal/games/match3/engine"
)

// AnimationPhase represents the current phase of animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSwap
	PhasePop
	PhaseRefill
)

func (p AnimationPhase) String() string {
	switch p {
	case PhaseSwap:
		return "swap"
	case PhasePop:
		return "pop"
	case PhaseRefill:
		return "refill"
	default:
		return "none"
	}
}

// Frame is what the renderer needs to draw the running animation.
type Frame struct {
	Phase    AnimationPhase
	Cells    []board.Cell
	Progress float64 // 0.0 → 1.0
}

type animation struct {
	phase    AnimationPhase
	cells    []board.Cell
	duration int
	ticks    int
	done     chan struct{}
}

// Animator is the engine's Presenter for the terminal. Requests queue up
// and play one after another, advanced by Tick from the game loop; each
// request's channel is closed when its phase ends.
type Animator struct {
	mu      sync.Mutex
	timing  config.AnimationConfig
	current *animation
	queue   []*animation
	closed  bool
	sound   func(engine.SoundCue)
	lastCue engine.SoundCue
	cues    int
}

var _ engine.Presenter = (*Animator)(nil)

// NewAnimator creates an animator with the given phase lengths. sound may
// be nil.
func NewAnimator(timing config.AnimationConfig, sound func(engine.SoundCue)) *Animator {
	return &Animator{timing: timing, sound: sound}
}

func (a *Animator) AnimateSwap(x, y board.Cell) <-chan struct{} {
	return a.enqueue(PhaseSwap, []board.Cell{x, y}, a.timing.SwapTicks)
}

func (a *Animator) AnimatePop(cells []board.Cell) <-chan struct{} {
	return a.enqueue(PhasePop, cells, a.timing.PopTicks)
}

func (a *Animator) AnimateRefill(cells []board.Cell) <-chan struct{} {
	return a.enqueue(PhaseRefill, cells, a.timing.RefillTicks)
}

// PlaySound forwards the cue to the sound sink and remembers it.
func (a *Animator) PlaySound(cue engine.SoundCue) {
	a.mu.Lock()
	a.lastCue = cue
	a.cues++
	sound := a.sound
	a.mu.Unlock()

	if sound != nil {
		sound(cue)
	}
}

// LastCue returns the most recent sound cue and how many were played.
func (a *Animator) LastCue() (engine.SoundCue, int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastCue, a.cues
}

func (a *Animator) enqueue(phase AnimationPhase, cells []board.Cell, duration int) <-chan struct{} {
	done := make(chan struct{})

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed || duration <= 0 {
		close(done)
		return done
	}

	anim := &animation{
		phase:    phase,
		cells:    append([]board.Cell(nil), cells...),
		duration: duration,
		done:     done,
	}
	if a.current == nil {
		a.current = anim
	} else {
		a.queue = append(a.queue, anim)
	}
	return done
}

// Tick advances the running animation by one simulation tick.
func (a *Animator) Tick() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current == nil {
		return
	}
	a.current.ticks++
	if a.current.ticks < a.current.duration {
		return
	}

	close(a.current.done)
	a.current = nil
	if len(a.queue) > 0 {
		a.current = a.queue[0]
		a.queue = a.queue[1:]
	}
}

// Frame returns the running animation, if any.
func (a *Animator) Frame() (Frame, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current == nil {
		return Frame{}, false
	}
	progress := float64(a.current.ticks) / float64(a.current.duration)
	return Frame{
		Phase:    a.current.phase,
		Cells:    a.current.cells,
		Progress: min(progress, 1.0),
	}, true
}

// Idle reports whether nothing is playing or queued.
func (a *Animator) Idle() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current == nil
}

// Close finishes every pending animation at once. Later requests complete
// immediately.
func (a *Animator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current != nil {
		close(a.current.done)
		a.current = nil
	}
	for _, anim := range a.queue {
		close(anim.done)
	}
	a.queue = nil
	a.closed = true
}
