package animations

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoFrames is returned when an animator is built without any images.
var ErrNoFrames = errors.New("animation needs at least one frame")

// Animator steps through a fixed list of images on a millisecond clock.
//
// Restart rewinds to the first frame but leaves Done untouched. A one-shot
// animation that has finished stays finished after Restart; callers that
// want a fresh replay build a new Animator.
type Animator struct {
	frames    []*ebiten.Image
	frame     int
	lastFrame int64
	Delay     int64 // milliseconds between frames
	Repeat    bool
	done      bool
	clock     Clock
}

func NewAnimator(clock Clock, frames []*ebiten.Image, delay int64, repeat bool) (*Animator, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	return &Animator{
		frames:    frames,
		lastFrame: clock.Millis(),
		Delay:     delay,
		Repeat:    repeat,
		clock:     clock,
	}, nil
}

// MustNewAnimator is NewAnimator for image sets known to be non-empty.
func MustNewAnimator(clock Clock, frames []*ebiten.Image, delay int64, repeat bool) *Animator {
	a, err := NewAnimator(clock, frames, delay, repeat)
	if err != nil {
		panic(err)
	}
	return a
}

// Advance moves to the next frame once the delay has elapsed.
func (a *Animator) Advance() {
	now := a.clock.Millis()
	elapsed := now - a.lastFrame
	if elapsed < 0 {
		elapsed = -elapsed
	}
	if elapsed <= a.Delay {
		return
	}

	switch {
	case a.Repeat:
		a.frame = (a.frame + 1) % len(a.frames)
		a.lastFrame = now
	case a.frame < len(a.frames)-1:
		a.frame++
		a.lastFrame = now
	default:
		a.done = true
	}
}

func (a *Animator) Frame() *ebiten.Image {
	return a.frames[a.frame]
}

func (a *Animator) Index() int {
	return a.frame
}

func (a *Animator) Len() int {
	return len(a.frames)
}

func (a *Animator) Restart() {
	a.frame = 0
}

// Done always reports true for repeating animations.
func (a *Animator) Done() bool {
	if a.Repeat {
		return true
	}
	return a.done
}
