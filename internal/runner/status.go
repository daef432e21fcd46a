package runner

// Status is the outcome of one executed part.
type Status int

const (
	// StatusUnknown means no expected answer is registered.
	StatusUnknown Status = iota
	// StatusFailure means the answer differs from the expected one or the solver failed.
	StatusFailure
	// StatusSuccess means the answer equals the expected one.
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Glyph returns the symbol printed in status lines.
func (s Status) Glyph() string {
	switch s {
	case StatusSuccess:
		return "✓"
	case StatusFailure:
		return "✗"
	default:
		return "?"
	}
}

// Check compares a solver result with the expected answer. A solver error is
// a failure and its text becomes the displayed value.
func Check(expected string, hasExpected bool, value string, err error) (Status, string) {
	if err != nil {
		return StatusFailure, err.Error()
	}
	if !hasExpected {
		return StatusUnknown, value
	}
	if expected == value {
		return StatusSuccess, value
	}
	return StatusFailure, value
}
