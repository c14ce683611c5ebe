package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEquilibriumStep_ZLBFloor checks that a strongly negative monetary
// shock drives the rule below one, that the floor binds exactly when the
// zero lower bound is enabled, and that no flooring occurs otherwise.
func TestEquilibriumStep_ZLBFloor(t *testing.T) {
	p := DefaultParameters()
	ss := NewSteadyState(p)

	unbounded := p
	unbounded.ZLB = false
	raw := EquilibriumStep(unbounded, ss.S, ss.F, ss.C, ss.Delta, 1.0, 0, 0, 0, -0.2)
	require.Less(t, raw.R, 1.0, "rule must go below one for this shock")

	floored := EquilibriumStep(p, ss.S, ss.F, ss.C, ss.Delta, 1.0, 0, 0, 0, -0.2)
	assert.Equal(t, 1.0, floored.R)

	// Away from the floor both variants agree.
	calm := EquilibriumStep(p, ss.S, ss.F, ss.C, ss.Delta, ss.R, 0, 0, 0, 0)
	calmRaw := EquilibriumStep(unbounded, ss.S, ss.F, ss.C, ss.Delta, ss.R, 0, 0, 0, 0)
	assert.Equal(t, calmRaw.R, calm.R)
}

// TestInflationFromRatio inverts the Calvo aggregator identity: feeding the
// steady-state ratio back recovers the inflation target.
func TestInflationFromRatio(t *testing.T) {
	p := DefaultParameters()
	ss := NewSteadyState(p)
	assert.InDelta(t, ss.Pi, inflationFromRatio(p, ss.S, ss.F), 1e-12)
}
