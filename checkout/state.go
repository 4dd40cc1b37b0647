package checkout

// State tracks one checkout attempt: Idle -> Validating -> Submitting ->
// Confirmed or Failed. Confirmed is terminal and clears the cart; Failed
// keeps the cart so the user can edit and retry.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateConfirmed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateConfirmed:
		return "confirmed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
