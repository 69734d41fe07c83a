package domain

// ProcessOutcome distinguishes the two success results of webhook
// processing. Validation and storage failures travel as errors alongside.
type ProcessOutcome string

const (
	// OutcomeCreated means a new payment was recorded and the balance credited.
	OutcomeCreated ProcessOutcome = "CREATED"
	// OutcomeDuplicate means the operation id was seen before; nothing was written.
	OutcomeDuplicate ProcessOutcome = "DUPLICATE"
)
