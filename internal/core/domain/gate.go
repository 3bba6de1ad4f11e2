package domain

// GateState names the state reached when a gate passes. The run advances
// through the states in order; OutputVerified is the only success terminal.
type GateState string

const (
	StatePathResolved   GateState = "PathResolved"
	StateValidated      GateState = "Validated"
	StateDiscovered     GateState = "Discovered"
	StateUnlocked       GateState = "Unlocked"
	StateActivated      GateState = "Activated"
	StateDepsInstalled  GateState = "DepsInstalled"
	StateSyntaxOk       GateState = "SyntaxOk"
	StatePipelineRan    GateState = "PipelineRan"
	StateOutputVerified GateState = "OutputVerified"
)

// ProcessOutcome captures the observable result of one child process
// invocation: the exit code and the accumulated stdout/stderr text.
type ProcessOutcome struct {
	// Command is the rendered command line, for diagnostics.
	Command string

	// ExitCode is the process exit code. -1 means the process never ran
	// to completion (spawn failure or signal).
	ExitCode int

	// Output is the combined stdout/stderr text, interleaved as produced.
	Output string
}

// Ok reports whether the process ran and exited zero.
func (o ProcessOutcome) Ok() bool {
	return o.ExitCode == 0
}
