package logic

import (
	"errors"
	"testing"

	"github.com/sweeney/frost-monitor/internal/sensor"
)

func TestRoundMilli(t *testing.T) {
	tests := []struct {
		milli int
		want  int
	}{
		{9499, 9},
		{9500, 10}, // tie rounds away from zero
		{9501, 10},
		{10000, 10},
		{10499, 10},
		{10500, 11},
		{0, 0},
		{499, 0},
		{500, 1},
		{-499, 0},
		{-500, -1}, // tie rounds away from zero
		{-9499, -9},
		{-9500, -10},
		{-18750, -19},
	}

	for _, tt := range tests {
		if got := RoundMilli(tt.milli); got != tt.want {
			t.Errorf("RoundMilli(%d): got %d, want %d", tt.milli, got, tt.want)
		}
	}
}

func TestDecideThresholdStrict(t *testing.T) {
	tests := []struct {
		name       string
		milli      int
		threshold  int
		wantMin    int
		wantActive bool
	}{
		{"below threshold", 9499, 10, 9, true},
		{"rounds up to threshold", 9500, 10, 10, false}, // exactly at threshold is inactive
		{"at threshold", 10000, 10, 10, false},
		{"above threshold", 10500, 10, 11, false},
		{"well below", -5000, 10, -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample := sensor.Sample{{ProbeID: "28-a", MilliC: tt.milli}}
			d, err := Decide(sample, tt.threshold)
			if err != nil {
				t.Fatalf("Decide: %v", err)
			}
			if d.MinC != tt.wantMin {
				t.Errorf("MinC: got %d, want %d", d.MinC, tt.wantMin)
			}
			if d.Active != tt.wantActive {
				t.Errorf("Active: got %v, want %v", d.Active, tt.wantActive)
			}
			if d.ThresholdC != tt.threshold {
				t.Errorf("ThresholdC: got %d, want %d", d.ThresholdC, tt.threshold)
			}
		})
	}
}

func TestDecideMinimumOfSet(t *testing.T) {
	// {A: 12°, B: 8°}, threshold 10 → min 8, active. The coldest probe
	// dominates even when the others are warm.
	sample := sensor.Sample{
		{ProbeID: "28-a", MilliC: 12000},
		{ProbeID: "28-b", MilliC: 8000},
	}

	d, err := Decide(sample, 10)
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if d.MinC != 8 {
		t.Errorf("MinC: got %d, want 8", d.MinC)
	}
	if !d.Active {
		t.Error("expected Active=true")
	}
}

func TestDecideOrderIndependent(t *testing.T) {
	forward := sensor.Sample{
		{ProbeID: "28-a", MilliC: 12000},
		{ProbeID: "28-b", MilliC: 8000},
		{ProbeID: "28-c", MilliC: 9750},
	}
	reversed := sensor.Sample{forward[2], forward[1], forward[0]}

	df, err := Decide(forward, 10)
	if err != nil {
		t.Fatalf("Decide forward: %v", err)
	}
	dr, err := Decide(reversed, 10)
	if err != nil {
		t.Fatalf("Decide reversed: %v", err)
	}

	if df != dr {
		t.Errorf("decision depends on probe order: %+v vs %+v", df, dr)
	}
	if df.MinC != 8 {
		t.Errorf("MinC: got %d, want 8", df.MinC)
	}
}

func TestDecideEmptySample(t *testing.T) {
	_, err := Decide(sensor.Sample{}, 10)
	if !errors.Is(err, ErrEmptySample) {
		t.Errorf("expected ErrEmptySample, got %v", err)
	}

	_, err = Decide(nil, 10)
	if !errors.Is(err, ErrEmptySample) {
		t.Errorf("nil sample: expected ErrEmptySample, got %v", err)
	}
}

func TestDecisionState(t *testing.T) {
	if got := (Decision{Active: true}).State(); got != StateActive {
		t.Errorf("State: got %s, want %s", got, StateActive)
	}
	if got := (Decision{Active: false}).State(); got != StateInactive {
		t.Errorf("State: got %s, want %s", got, StateInactive)
	}
}
