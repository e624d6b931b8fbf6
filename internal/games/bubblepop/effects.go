package bubblepop

// AudioCue plays feedback sounds. Calls are fire-and-forget.
type AudioCue interface {
	PlayPop()
}

// Display receives score and countdown updates. It is push-only: the game
// never reads values back from it.
type Display interface {
	ShowScore(score int)
	ShowTime(seconds int)
}

type nopAudio struct{}

func (nopAudio) PlayPop() {}

type nopDisplay struct{}

func (nopDisplay) ShowScore(int) {}
func (nopDisplay) ShowTime(int)  {}
