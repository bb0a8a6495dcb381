package gpio

// FakeOutput is a test double that records every physical write.
type FakeOutput struct {
	// Active is the level the output currently holds.
	Active bool

	// Writes records each physical write in order. An idempotent Apply
	// (same state as the line already holds) records nothing.
	Writes []bool

	// ApplyCalls counts calls to Apply, including no-ops.
	ApplyCalls int

	// SafeDefaultCalls counts calls to SafeDefault.
	SafeDefaultCalls int

	// ApplyError, if set, will be returned by Apply.
	ApplyError error

	// SafeDefaultError, if set, will be returned by SafeDefault.
	SafeDefaultError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeOutput creates a FakeOutput at the inactive level.
func NewFakeOutput() *FakeOutput {
	return &FakeOutput{}
}

// Apply records a physical write only when the state changes.
func (f *FakeOutput) Apply(active bool) error {
	f.ApplyCalls++
	if f.ApplyError != nil {
		return f.ApplyError
	}

	if f.Active == active {
		return nil
	}

	f.Active = active
	f.Writes = append(f.Writes, active)
	return nil
}

// SafeDefault drives the output inactive unconditionally.
func (f *FakeOutput) SafeDefault() error {
	f.SafeDefaultCalls++
	if f.SafeDefaultError != nil {
		return f.SafeDefaultError
	}

	f.Active = false
	f.Writes = append(f.Writes, false)
	return nil
}

// Close marks the output as closed.
func (f *FakeOutput) Close() error {
	f.Closed = true
	return nil
}

// Reset clears recorded state.
func (f *FakeOutput) Reset() {
	f.Active = false
	f.Writes = nil
	f.ApplyCalls = 0
	f.SafeDefaultCalls = 0
	f.ApplyError = nil
	f.SafeDefaultError = nil
	f.Closed = false
}
