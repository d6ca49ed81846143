package tui

import (
	"time"

	"github.com/hblok/starfighter/internal/core"
)

// keyHoldWindow is how long a key is considered "held" after its last
// press. Terminal autorepeat refreshes the timestamp while a key stays
// down; the window must outlast the repeat interval.
const keyHoldWindow = 150 * time.Millisecond

// HeldKeys tracks the last press time of hold-style actions (steering,
// thrust, fire). Edge actions (pause, confirm) bypass it and are set on
// the input frame directly.
type HeldKeys struct {
	last map[core.Action]time.Time
	now  func() time.Time
}

// NewHeldKeys creates an empty tracker.
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{
		last: make(map[core.Action]time.Time),
		now:  time.Now,
	}
}

// Press records that the action's key was seen now.
func (h *HeldKeys) Press(a core.Action) {
	h.last[a] = h.now()
}

// Apply sets every action still inside the hold window on the frame.
func (h *HeldKeys) Apply(frame *core.InputFrame) {
	now := h.now()
	for a, t := range h.last {
		if now.Sub(t) < keyHoldWindow {
			frame.Set(a)
		}
	}
}
