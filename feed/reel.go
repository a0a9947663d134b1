package feed

import (
	"errors"
	"fmt"
)

// SwipeThreshold is the vertical touch distance a swipe must exceed to move.
const SwipeThreshold = 50.0

type Direction int

const (
	Previous Direction = iota
	Next
)

func (d Direction) String() string {
	if d == Next {
		return "next"
	}
	return "previous"
}

// Item is one video in the reel.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Video       string `json:"video"`
	FoodPartner string `json:"foodPartner"`
}

// Player renders videos. Only the item at the cursor should be playing.
type Player interface {
	Play(index int, item Item)
	Pause(index int, item Item)
}

var ErrIndexOutOfRange = errors.New("index out of range")

// Reel is not safe for concurrent use; it is driven by one input loop.
type Reel struct {
	items  []Item
	cursor int
	player Player

	touchStart, touchEnd float64
	touching, moved      bool

	liked map[string]bool
}

// NewReel copies items and syncs the player to the first one. player may be nil.
func NewReel(items []Item, player Player) *Reel {
	r := &Reel{
		items:  append([]Item(nil), items...),
		player: player,
		liked:  make(map[string]bool),
	}
	r.sync()
	return r
}

func (r *Reel) Len() int    { return len(r.items) }
func (r *Reel) Cursor() int { return r.cursor }

func (r *Reel) Items() []Item {
	return append([]Item(nil), r.items...)
}

// Current returns the active item, false on an empty reel.
func (r *Reel) Current() (Item, bool) {
	if len(r.items) == 0 {
		return Item{}, false
	}
	return r.items[r.cursor], true
}

// Advance moves one step, wrapping at both ends.
func (r *Reel) Advance(d Direction) {
	n := len(r.items)
	if n == 0 {
		return
	}
	switch d {
	case Next:
		if r.cursor < n-1 {
			r.cursor++
		} else {
			r.cursor = 0
		}
	case Previous:
		if r.cursor > 0 {
			r.cursor--
		} else {
			r.cursor = n - 1
		}
	default:
		return
	}
	r.sync()
}

// Select jumps straight to index i, as a navigation dot does.
func (r *Reel) Select(i int) error {
	if i < 0 || i >= len(r.items) {
		return fmt.Errorf("select %d of %d: %w", i, len(r.items), ErrIndexOutOfRange)
	}
	if i == r.cursor {
		return nil
	}
	r.cursor = i
	r.sync()
	return nil
}

// Wheel maps a scroll delta: down (positive) is next, up (negative) is previous.
func (r *Reel) Wheel(deltaY float64) {
	switch {
	case deltaY > 0:
		r.Advance(Next)
	case deltaY < 0:
		r.Advance(Previous)
	}
}

func (r *Reel) TouchStart(y float64) {
	r.touchStart = y
	r.touchEnd = y
	r.touching = true
	r.moved = false
}

func (r *Reel) TouchMove(y float64) {
	if !r.touching {
		return
	}
	r.touchEnd = y
	r.moved = true
}

// TouchEnd resolves the swipe. A tap without movement never navigates.
func (r *Reel) TouchEnd() {
	if !r.touching {
		return
	}
	start, end, moved := r.touchStart, r.touchEnd, r.moved
	r.touching, r.moved = false, false
	if !moved {
		return
	}
	if d, ok := SwipeDirection(start - end); ok {
		r.Advance(d)
	}
}

// SwipeDirection maps startY-endY to a move. Distances within the threshold
// are a dead zone so taps do not navigate.
func SwipeDirection(distance float64) (Direction, bool) {
	switch {
	case distance > SwipeThreshold:
		return Next, true
	case distance < -SwipeThreshold:
		return Previous, true
	default:
		return 0, false
	}
}

// ToggleLike flips the local like flag for id and returns the new state.
func (r *Reel) ToggleLike(id string) bool {
	if r.liked[id] {
		delete(r.liked, id)
		return false
	}
	r.liked[id] = true
	return true
}

func (r *Reel) Liked(id string) bool { return r.liked[id] }

func (r *Reel) sync() {
	if r.player == nil || len(r.items) == 0 {
		return
	}
	for i, it := range r.items {
		if i != r.cursor {
			r.player.Pause(i, it)
		}
	}
	r.player.Play(r.cursor, r.items[r.cursor])
}
