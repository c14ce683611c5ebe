package main

import "math"

// EquilibriumStep maps current control values and the current state to the
// equilibrium-implied quantities of the period: inflation, next-period price
// dispersion, output, labor, potential output and the next-period policy
// rate. It is pure and shared by the solver (looped over the grid) and the
// simulator (scalar states), so both see bit-identical arithmetic.
//
// Divisions by near-zero F, delta0 or powers of inflation are not guarded;
// parameterizations near those singularities are outside the model's valid
// region and surface as non-finite values downstream.
func EquilibriumStep(p ParameterSet, s, f, c, delta0, r0, nuG, nua, nuL, nuR float64) Flow {
	eps := p.Epsilon
	theta := p.Theta

	// Inflation from the price-setting recursions.
	pi := inflationFromRatio(p, s, f)

	// Calvo price-dispersion law of motion.
	delta1 := 1 / ((1-theta)*math.Pow((1-theta*math.Pow(pi, eps-1))/(1-theta), eps/(eps-1)) +
		theta*math.Pow(pi, eps)/delta0)

	// Market clearing with the government share, then the labor-output link.
	y := c / (1 - p.GBar/math.Exp(nuG))
	l := y / (math.Exp(nua) * delta1)

	// Flexible-price potential output.
	yn := math.Pow(
		math.Pow(math.Exp(nua), 1+p.Vartheta)*
			math.Pow(1-p.GBar/math.Exp(nuG), -p.Gamma)/math.Exp(nuL),
		1/(p.Vartheta+p.Gamma))

	// Inertial Taylor rule around R* = pi*/beta, shifted by the monetary
	// shock; floored at one under the zero lower bound.
	rstar := p.PiStar / p.Beta
	r1 := rstar * math.Pow(r0/rstar, p.Mu) *
		math.Pow(math.Pow(pi/p.PiStar, p.PhiPi)*math.Pow(y/yn, p.PhiY), 1-p.Mu) *
		math.Exp(nuR)
	if p.ZLB && r1 < 1 {
		r1 = 1
	}

	return Flow{Pi: pi, Delta: delta1, Y: y, L: l, Yn: yn, R: r1}
}

// inflationFromRatio recovers gross inflation from the ratio of the two
// price-setting recursions, the inverse of the Calvo aggregator identity.
func inflationFromRatio(p ParameterSet, s, f float64) float64 {
	return math.Pow((1-(1-p.Theta)*math.Pow(s/f, 1-p.Epsilon))/p.Theta, 1/(p.Epsilon-1))
}
