package main

import "math"

// NewSteadyState computes the deterministic steady state of every model
// variable by closed-form algebra. With a unit inflation target the price
// dispersion is exactly one and output equals potential output.
func NewSteadyState(p ParameterSet) SteadyState {
	pi := p.PiStar
	eps := p.Epsilon
	theta := p.Theta

	// Reset-price relative price implied by the Calvo aggregator:
	// S/F = ((1 - theta*pi^(eps-1))/(1 - theta))^(1/(1-eps)).
	reset := math.Pow((1-theta*math.Pow(pi, eps-1))/(1-theta), 1/(1-eps))

	// Price dispersion solves its own law of motion at the fixed point.
	delta := (1 - theta*math.Pow(pi, eps)) /
		((1 - theta) * math.Pow((1-theta*math.Pow(pi, eps-1))/(1-theta), eps/(eps-1)))

	// Real wage from the S/F ratio of the converged pricing recursions:
	// L^vartheta * C^gamma = reset*(1-beta*theta*pi^eps)/(1-beta*theta*pi^(eps-1)).
	w := reset * (1 - p.Beta*theta*math.Pow(pi, eps)) /
		(1 - p.Beta*theta*math.Pow(pi, eps-1))

	y := math.Pow(w*math.Pow(delta, p.Vartheta)*math.Pow(1-p.GBar, -p.Gamma),
		1/(p.Vartheta+p.Gamma))
	yn := math.Pow(math.Pow(1-p.GBar, -p.Gamma), 1/(p.Vartheta+p.Gamma))
	l := y / delta
	c := (1 - p.GBar) * y

	s := math.Pow(l, p.Vartheta) * y / (1 - p.Beta*theta*math.Pow(pi, eps))
	f := math.Pow(c, -p.Gamma) * y / (1 - p.Beta*theta*math.Pow(pi, eps-1))

	return SteadyState{
		Yn:    yn,
		Y:     y,
		Pi:    pi,
		Delta: delta,
		L:     l,
		C:     c,
		S:     s,
		F:     f,
		R:     pi / p.Beta,
		W:     w,
	}
}
