package engine

import "github.com/vovakirdan/tilematch/internal/games/match3/board"

// SoundCue names a sound the engine asks the presenter to play.
type SoundCue int

const (
	CueSwap    SoundCue = iota // two cells start exchanging items
	CueRevert                  // a swap made no match and is undone
	CuePop                     // the first match of a swap is collected
	CueCascade                 // a later match in the same swap is collected
)

func (c SoundCue) String() string {
	switch c {
	case CueSwap:
		return "swap"
	case CueRevert:
		return "revert"
	case CuePop:
		return "pop"
	case CueCascade:
		return "cascade"
	default:
		return "unknown"
	}
}

// Presenter shows what the engine does. Each Animate method returns a
// channel the presenter closes once the animation has finished; the engine
// waits on it before moving on. PlaySound must not block.
type Presenter interface {
	AnimateSwap(a, b board.Cell) <-chan struct{}
	AnimatePop(cells []board.Cell) <-chan struct{}
	AnimateRefill(cells []board.Cell) <-chan struct{}
	PlaySound(cue SoundCue)
}

var closedCh = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// Instant is a Presenter whose animations finish immediately. Sound, when
// set, receives every cue.
type Instant struct {
	Sound func(SoundCue)
}

func (Instant) AnimateSwap(_, _ board.Cell) <-chan struct{} { return closedCh }

func (Instant) AnimatePop(_ []board.Cell) <-chan struct{} { return closedCh }

func (Instant) AnimateRefill(_ []board.Cell) <-chan struct{} { return closedCh }

func (p Instant) PlaySound(cue SoundCue) {
	if p.Sound != nil {
		p.Sound(cue)
	}
}
