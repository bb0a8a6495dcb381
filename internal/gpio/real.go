//go:build linux

package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// RealOutput drives a GPIO line on actual hardware using the Linux GPIO
// character device.
type RealOutput struct {
	chip *gpiocdev.Chip
	line *gpiocdev.Line

	// last mirrors the level last written to the line: 0, 1, or -1 when
	// unknown. This is the only state that survives across cycles; it
	// exists to make repeated writes of the same state a no-op.
	last int
}

// NewRealOutput requests the given pin as an output at the inactive level.
// The line is low from the moment it is requested, so construction itself
// establishes the safe default.
func NewRealOutput(pin int) (*RealOutput, error) {
	chip, err := gpiocdev.NewChip("gpiochip0")
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	line, err := chip.RequestLine(pin, gpiocdev.AsOutput(0))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request output pin %d: %w", pin, err)
	}

	return &RealOutput{
		chip: chip,
		line: line,
		last: 0,
	}, nil
}

// Apply writes the requested level unless the line already holds it.
func (o *RealOutput) Apply(active bool) error {
	level := 0
	if active {
		level = 1
	}

	if o.last == level {
		return nil
	}

	if err := o.line.SetValue(level); err != nil {
		o.last = -1
		return fmt.Errorf("set output: %w", err)
	}
	o.last = level
	return nil
}

// SafeDefault drives the line low unconditionally.
func (o *RealOutput) SafeDefault() error {
	if err := o.line.SetValue(0); err != nil {
		o.last = -1
		return fmt.Errorf("set safe default: %w", err)
	}
	o.last = 0
	return nil
}

// Close releases GPIO resources.
// Reconfigures the line to input with pull-down (matching Pi boot defaults)
// before closing so external hardware sees a clean state after exit.
func (o *RealOutput) Close() error {
	var errs []error

	if o.line != nil {
		if err := o.line.Reconfigure(gpiocdev.AsInput, gpiocdev.WithPullDown); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure pin: %w", err))
		}
		if err := o.line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close pin: %w", err))
		}
	}
	if o.chip != nil {
		if err := o.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
