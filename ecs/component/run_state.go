package component

// RunState is the singleton holding the run lifecycle and flag sequence.
type RunState struct {
	Running         bool
	Paused          bool
	HeartsCollected int
	AnimTime        int
	FlagReached     bool
	FlagSliding     bool
	FlagY           float64
	Completed       bool
}

var RunStateComponent = NewComponent[RunState]()
