package game

// DirectionArbiter buffers at most one pending direction change between
// ticks. Requests are validated against the committed direction of the last
// performed move, not against earlier pending requests, so a reversal can
// never slip through by chaining two quick inputs within one tick.
type DirectionArbiter struct {
	pending    Direction
	hasPending bool
}

// Submit requests a direction change. A request that would reverse the
// committed direction is dropped. A later request in the same tick replaces
// an earlier one. It reports whether the request was buffered.
func (a *DirectionArbiter) Submit(requested, committed Direction) bool {
	if requested == committed.Opposite() {
		return false
	}
	a.pending = requested
	a.hasPending = true
	return true
}

// ConsumePending returns the buffered direction, if any, and clears the
// slot. The engine calls this exactly once per tick.
func (a *DirectionArbiter) ConsumePending() (Direction, bool) {
	if !a.hasPending {
		return 0, false
	}
	a.hasPending = false
	return a.pending, true
}

// Peek returns the buffered direction, if any, without clearing the slot.
func (a *DirectionArbiter) Peek() (Direction, bool) {
	return a.pending, a.hasPending
}
