package bubblepop

// Phase is the stage of a round.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseRunning:
		return "Running"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Round tracks phase, score and the countdown of one session.
// Calls that are illegal in the current phase are ignored.
type Round struct {
	phase         Phase
	score         int
	timeRemaining int
	pointsPerPop  int
}

// NewRound creates a round that has not started yet.
func NewRound(duration, pointsPerPop int) *Round {
	return &Round{
		phase:         PhaseNotStarted,
		timeRemaining: duration,
		pointsPerPop:  pointsPerPop,
	}
}

// Start moves a fresh round to Running. Returns false if it already started.
func (r *Round) Start() bool {
	if r.phase != PhaseNotStarted {
		return false
	}
	r.phase = PhaseRunning
	return true
}

// Tick takes one second off the countdown while running.
// Returns true when this tick ended the round.
func (r *Round) Tick() bool {
	if r.phase != PhaseRunning {
		return false
	}
	r.timeRemaining--
	if r.timeRemaining <= 0 {
		r.phase = PhaseOver
		return true
	}
	return false
}

// RegisterPop adds the pop reward while running. Returns whether it scored.
func (r *Round) RegisterPop() bool {
	if r.phase != PhaseRunning {
		return false
	}
	r.score += r.pointsPerPop
	return true
}

// IsAcceptingInput reports whether clicks should be hit-tested.
func (r *Round) IsAcceptingInput() bool {
	return r.phase == PhaseRunning
}

// Phase returns the current phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Score returns the points collected so far.
func (r *Round) Score() int {
	return r.score
}

// TimeRemaining returns the raw countdown value in seconds.
func (r *Round) TimeRemaining() int {
	return r.timeRemaining
}

// DisplayTime returns the countdown floored at zero.
func (r *Round) DisplayTime() int {
	return max(r.timeRemaining, 0)
}
