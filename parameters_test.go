package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidate_Defaults ensures the baseline calibration is accepted.
func TestValidate_Defaults(t *testing.T) {
	require.NoError(t, DefaultParameters().Validate())
}

// TestValidate_Rejections ensures each invalid field is rejected with
// ErrInvalidParameter at construction time.
func TestValidate_Rejections(t *testing.T) {
	cases := map[string]func(*ParameterSet){
		"unit root": func(p *ParameterSet) { p.NuA.Rho = 1.0 },
		"explosive": func(p *ParameterSet) { p.NuL.Rho = -1.2 },
		"negative stddev": func(p *ParameterSet) { p.NuG.Sigma = -0.01 },
		"zero damping": func(p *ParameterSet) { p.Damp = 0 },
		"damping above one": func(p *ParameterSet) { p.Damp = 1.5 },
		"zero tolerance": func(p *ParameterSet) { p.Tol = 0 },
		"zero degree": func(p *ParameterSet) { p.Degree = 0 },
		"empty grid": func(p *ParameterSet) { p.GridSize = 0 },
		"negative iter cap": func(p *ParameterSet) { p.MaxIter = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := DefaultParameters()
			mutate(&p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidParameter)
		})
	}
}

// TestShockCovariance verifies the derived covariance is the diagonal of
// squared standard deviations.
func TestShockCovariance(t *testing.T) {
	p := DefaultParameters()
	cov := p.ShockCovariance()

	procs := p.shockProcesses()
	for i := 0; i < NumShocks; i++ {
		for j := 0; j < NumShocks; j++ {
			if i == j {
				assert.Equal(t, procs[i].Sigma*procs[i].Sigma, cov.At(i, j))
			} else {
				assert.Zero(t, cov.At(i, j))
			}
		}
	}
}
