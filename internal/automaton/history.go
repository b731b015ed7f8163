package automaton

// DefaultHistoryCapacity is the number of frames kept for time travel.
const DefaultHistoryCapacity = 1000

// Frame is one recorded grid and the generation number it represents.
type Frame struct {
	Grid       *Grid
	Generation int
}

// Stepper computes the generation that follows a grid.
// *Simulator implements it.
type Stepper interface {
	Step(g *Grid) (*Grid, error)
}

// History is a bounded undo log of frames with a cursor.
//
// Invariant: 1 <= Len() <= Capacity() and 0 <= Index() < Len().
// Recording truncates every frame after the cursor, so a discarded branch
// can never be revisited. When full, the oldest frame is evicted.
//
// History is not safe for concurrent use. Recorded grids are owned by the
// history and must not be modified afterwards.
type History struct {
	entries  []Frame
	index    int
	capacity int
	stepper  Stepper
}

// NewHistory creates a history holding initial as generation 0.
func NewHistory(capacity int, stepper Stepper, initial *Grid) (*History, error) {
	if capacity < 1 {
		return nil, &CapacityError{Capacity: capacity}
	}
	h := &History{capacity: capacity, stepper: stepper}
	h.Reset(initial)
	return h, nil
}

// Record truncates the future, appends a frame and makes it current.
func (h *History) Record(g *Grid, generation int) Frame {
	h.entries = h.entries[:h.index+1]
	h.entries = append(h.entries, Frame{Grid: g, Generation: generation})
	if len(h.entries) > h.capacity {
		h.entries[0] = Frame{}
		h.entries = h.entries[1:]
	}
	h.index = len(h.entries) - 1
	return h.entries[h.index]
}

// Back moves the cursor one frame towards the past. At the oldest frame
// it is a no-op and returns the current frame.
func (h *History) Back() Frame {
	if h.index > 0 {
		h.index--
	}
	return h.entries[h.index]
}

// Next moves the cursor one frame forward. At the newest frame it computes
// the following generation and records it.
func (h *History) Next() (Frame, error) {
	if h.index < len(h.entries)-1 {
		h.index++
		return h.entries[h.index], nil
	}
	cur := h.entries[h.index]
	g, err := h.stepper.Step(cur.Grid)
	if err != nil {
		return cur, err
	}
	return h.Record(g, cur.Generation+1), nil
}

// Reset discards every frame and starts over from g at generation 0.
func (h *History) Reset(g *Grid) {
	h.Restore(Frame{Grid: g})
}

// Restore discards every frame and starts over from f.
func (h *History) Restore(f Frame) {
	clear(h.entries)
	h.entries = append(h.entries[:0], f)
	h.index = 0
}

// SetStepper replaces the function used by Next to extend the timeline.
func (h *History) SetStepper(s Stepper) {
	h.stepper = s
}

// Current returns the frame under the cursor.
func (h *History) Current() Frame {
	return h.entries[h.index]
}

// Index returns the cursor position.
func (h *History) Index() int { return h.index }

// Len returns the number of stored frames.
func (h *History) Len() int { return len(h.entries) }

// Capacity returns the maximum number of stored frames.
func (h *History) Capacity() int { return h.capacity }

// AtEnd reports whether the cursor is on the newest frame.
func (h *History) AtEnd() bool { return h.index == len(h.entries)-1 }
