package gpio

import (
	"errors"
	"testing"
)

func TestFakeOutputApplyIdempotent(t *testing.T) {
	f := NewFakeOutput()

	// Two identical applies → exactly one physical write.
	if err := f.Apply(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.Apply(true); err != nil {
		t.Fatalf("unexpected error on repeat: %v", err)
	}

	if len(f.Writes) != 1 {
		t.Errorf("expected 1 physical write, got %d", len(f.Writes))
	}
	if f.ApplyCalls != 2 {
		t.Errorf("expected 2 Apply calls, got %d", f.ApplyCalls)
	}
	if !f.Active {
		t.Error("expected Active=true")
	}
}

func TestFakeOutputApplyTransitions(t *testing.T) {
	f := NewFakeOutput()

	f.Apply(true)
	f.Apply(false)
	f.Apply(true)

	want := []bool{true, false, true}
	if len(f.Writes) != len(want) {
		t.Fatalf("expected %d writes, got %d", len(want), len(f.Writes))
	}
	for i, w := range want {
		if f.Writes[i] != w {
			t.Errorf("write %d: got %v, want %v", i, f.Writes[i], w)
		}
	}
}

func TestFakeOutputApplyInactiveNoop(t *testing.T) {
	f := NewFakeOutput()

	// Output starts inactive; applying inactive writes nothing.
	if err := f.Apply(false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Writes) != 0 {
		t.Errorf("expected no physical writes, got %d", len(f.Writes))
	}
}

func TestFakeOutputSafeDefault(t *testing.T) {
	f := NewFakeOutput()
	f.Apply(true)

	if err := f.SafeDefault(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.Active {
		t.Error("expected Active=false after SafeDefault")
	}
	if f.SafeDefaultCalls != 1 {
		t.Errorf("expected 1 SafeDefault call, got %d", f.SafeDefaultCalls)
	}
	// SafeDefault writes unconditionally, even when already inactive.
	f.SafeDefault()
	if len(f.Writes) != 3 {
		t.Errorf("expected 3 writes (apply + 2 safe defaults), got %d", len(f.Writes))
	}
}

func TestFakeOutputApplyError(t *testing.T) {
	f := NewFakeOutput()
	f.ApplyError = errors.New("simulated error")

	if err := f.Apply(true); err == nil {
		t.Error("expected error to be returned")
	}
	if f.Active {
		t.Error("state should not change on error")
	}
}

func TestFakeOutputClose(t *testing.T) {
	f := NewFakeOutput()

	if f.Closed {
		t.Error("should not be closed initially")
	}
	if err := f.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !f.Closed {
		t.Error("should be closed after Close()")
	}
}
