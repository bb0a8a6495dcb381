// Package logic contains pure decision logic for threshold actuation.
// Nothing here touches sysfs, GPIO, HTTP, or the clock. A decision is a
// function of the cycle's readings alone — there is no hysteresis and no
// memory of prior cycles.
package logic

// Decision is the actuation outcome of one polling cycle.
type Decision struct {
	// MinC is the minimum rounded temperature across all probes (°C).
	// The coldest probe dominates: one freezing sensor activates the
	// output even if every other probe is warm.
	MinC int

	// ThresholdC is the configured threshold the minimum was compared
	// against (°C). Fixed for the process lifetime.
	ThresholdC int

	// Active is true when MinC is strictly below ThresholdC.
	Active bool
}

// State represents the display form of an actuator state.
type State string

const (
	StateActive   State = "ACTIVE"
	StateInactive State = "INACTIVE"
)

// State returns the display form of the decision.
func (d Decision) State() State {
	if d.Active {
		return StateActive
	}
	return StateInactive
}
