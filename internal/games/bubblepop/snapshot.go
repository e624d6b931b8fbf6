package bubblepop

// Snapshot captures session state for determinism testing.
type Snapshot struct {
	Frames        uint64
	Phase         Phase
	Score         int
	TimeRemaining int
	Bubbles       int
	Popped        int
	// Sum of bubble centers, a cheap fingerprint of the field layout
	SumX, SumY float64
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Frames:        s.frames,
		Phase:         s.round.Phase(),
		Score:         s.round.Score(),
		TimeRemaining: s.round.TimeRemaining(),
		Bubbles:       s.field.Len(),
	}
	for _, b := range s.field.bubbles {
		if b.Popped {
			snap.Popped++
		}
		snap.SumX += b.Pos.X
		snap.SumY += b.Pos.Y
	}
	return snap
}
