package simulator

// State is the simulator lifecycle stage.
type State string

const (
	StateIdle             State = "idle"
	StateInitialTree      State = "initialTree"
	StateApplying         State = "applying"
	StateIntermediateTree State = "intermediateTree"
	StateFinalTree        State = "finalTree"
	StateDone             State = "done"
)
