// Package gpio provides the actuator output with hardware abstraction.
// The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package gpio

// Output drives a single binary digital output.
type Output interface {
	// Apply sets the output to the given state. Applying the state the
	// line already holds is a no-op — no second hardware write happens.
	Apply(active bool) error

	// SafeDefault forces the output to the inactive level, bypassing the
	// idempotence cache. Called once before the first cycle and once on
	// every termination path.
	SafeDefault() error

	// Close releases GPIO resources.
	Close() error
}

// DefaultPin is the actuator line (BCM numbering).
const DefaultPin = 17
