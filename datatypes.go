package main

import (
	"gonum.org/v1/gonum/mat"
)

// SamplingScheme selects how the fitting grid is drawn over the state
// hyperrectangle.
type SamplingScheme int

// Sampling schemes for the fitting grid
const (
	// SchemeHalton draws a joint low-discrepancy (Owen-scrambled Halton)
	// sequence over the hyperrectangle.
	SchemeHalton SamplingScheme = iota
	// SchemePseudoRandom draws each dimension independently uniform.
	SchemePseudoRandom
)

// ShockProcess describes one AR(1) exogenous process
// eta' = Rho*eta + Sigma*N(0,1).
type ShockProcess struct {
	Rho   float64
	Sigma float64
}

// Shock indices into the six-process block, matching the ordering of the
// state vector columns 2..7.
const (
	ShockR = iota // monetary policy
	ShockA        // technology
	ShockL        // labor disutility
	ShockU        // consumption preference
	ShockB        // discount factor
	ShockG        // government spending
	NumShocks
)

// StateDim is the dimension of the approximation state:
// [log R, log delta, six shocks].
const StateDim = 2 + NumShocks

// NumControls is the number of approximated policy functions:
// S, F and the marginal utility of consumption C^(-gamma).
const NumControls = 3

// ParameterSet holds all structural parameters and algorithm knobs.
// Treated as immutable: constructed once, passed by value.
type ParameterSet struct {
	// Preferences and technology
	Gamma    float64 // relative risk aversion
	Beta     float64 // discount factor
	Vartheta float64 // curvature of labor disutility
	Epsilon  float64 // elasticity of substitution between goods

	// Pricing and policy
	PhiY   float64 // Taylor-rule response to the output gap
	PhiPi  float64 // Taylor-rule response to inflation
	Mu     float64 // Taylor-rule inertia
	Theta  float64 // Calvo price stickiness
	PiStar float64 // gross inflation target
	GBar   float64 // steady-state government spending share

	// Exogenous shock processes, ordered (R, a, L, u, B, G)
	NuR ShockProcess
	NuA ShockProcess
	NuL ShockProcess
	NuU ShockProcess
	NuB ShockProcess
	NuG ShockProcess

	// Algorithm knobs
	Degree   int            // target polynomial degree (>= 1)
	Damp     float64        // damping of the coefficient update, in (0,1]
	Tol      float64        // convergence tolerance on the control change
	GridSize int            // number of fitting-grid points
	Scheme   SamplingScheme // grid sampling scheme
	ZLB      bool           // impose the zero lower bound on the policy rate
	MaxIter  int            // iteration cap per stage; 0 means uncapped
}

// SteadyState holds the deterministic steady state of every model variable.
// Each field is a closed-form function of the ParameterSet only.
type SteadyState struct {
	Yn    float64 // potential output
	Y     float64 // output
	Pi    float64 // gross inflation
	Delta float64 // price dispersion
	L     float64 // labor
	C     float64 // consumption
	S     float64 // price-setting numerator recursion
	F     float64 // price-setting denominator recursion
	R     float64 // gross policy rate
	W     float64 // real wage
}

// Grid is the fitting sample: current-state draws, the two basis matrices,
// the economical quadrature rule and the propagated future shocks.
// Built once per ParameterSet and read-only for the lifetime of a solve.
type Grid struct {
	M int // number of sample points

	// Current-state draws, per sample point
	R      []float64  // policy rate, in levels
	Delta  []float64  // price dispersion, in levels
	Shocks *mat.Dense // M x NumShocks

	// State is the stacked M x StateDim matrix [log R, log delta, shocks].
	State *mat.Dense

	// Basis matrices evaluated at State: degree 1 and the target degree.
	Basis1 *mat.Dense
	Basis  *mat.Dense

	// Economical quadrature rule over the shock innovations
	Nodes   *mat.Dense // k x NumShocks
	Weights []float64  // k

	// Future[s] is the M x k matrix of one-step-ahead values of shock s:
	// rho_s*current + node, one column per quadrature node.
	Future [NumShocks]*mat.Dense
}

// Sampler draws points over a fixed hyperrectangle. Implementations are the
// low-discrepancy Halton sampler and the independent-uniform sampler.
type Sampler interface {
	// Sample fills batch (n x dim) with draws over the sampler's bounds.
	Sample(batch *mat.Dense)
}

// Flow holds the equilibrium-implied quantities produced by one application
// of the equilibrium step at a single state.
type Flow struct {
	Pi    float64 // current gross inflation
	Delta float64 // next-period price dispersion
	Y     float64 // output
	L     float64 // labor
	Yn    float64 // potential output
	R     float64 // next-period gross policy rate (floored under the ZLB)
}

// StageStats reports one continuation stage of the solver.
type StageStats struct {
	Degree     int
	Iterations int
	FinalDiff  float64
}

// SolveResult is the solver output: the fitted coefficient matrix
// (basis terms x NumControls) and per-stage statistics. Coef is treated as
// immutable once returned.
type SolveResult struct {
	Coef   *mat.Dense
	Stages []StageStats
}

// Simulation is a full simulated path of every model variable.
// Delta and R have length T+1 (state carried one period ahead); all other
// series have length T. Read-only once produced.
type Simulation struct {
	T      int
	Shocks *mat.Dense // T x NumShocks
	Delta  []float64  // T+1
	R      []float64  // T+1
	S      []float64
	F      []float64
	C      []float64
	Pi     []float64
	Y      []float64
	L      []float64
	Yn     []float64
	W      []float64
}

// NumResidualEquations is the number of scored equilibrium conditions.
const NumResidualEquations = 9

// Residuals is the matrix of equilibrium-condition residuals along a
// simulated path, one row per structural equation, one column per period
// after the burn-in prefix. Read-only once produced.
type Residuals struct {
	Burn int
	Data *mat.Dense // NumResidualEquations x (T - Burn)
}

// ResidualSummary carries the derived accuracy statistics, all in log10 of
// absolute residuals.
type ResidualSummary struct {
	MeanLog10     float64
	MaxLog10      float64
	SumEqMaxLog10 float64
	EqMaxLog10    [NumResidualEquations]float64
}
