package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// WriteSimulationToCSV writes the simulated path, one row per period, with
// the columns: period, the six shocks, dispersion, rate, S, F, C, inflation,
// output, labor, potential output, real wage.
func WriteSimulationToCSV(path string, sim *Simulation) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"t", "nuR", "nuA", "nuL", "nuU", "nuB", "nuG",
		"delta", "R", "S", "F", "C", "pi", "Y", "L", "Yn", "W",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	fmtF := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for t := 0; t < sim.T; t++ {
		record := []string{
			strconv.Itoa(t),
			fmtF(sim.Shocks.At(t, ShockR)),
			fmtF(sim.Shocks.At(t, ShockA)),
			fmtF(sim.Shocks.At(t, ShockL)),
			fmtF(sim.Shocks.At(t, ShockU)),
			fmtF(sim.Shocks.At(t, ShockB)),
			fmtF(sim.Shocks.At(t, ShockG)),
			fmtF(sim.Delta[t]),
			fmtF(sim.R[t]),
			fmtF(sim.S[t]),
			fmtF(sim.F[t]),
			fmtF(sim.C[t]),
			fmtF(sim.Pi[t]),
			fmtF(sim.Y[t]),
			fmtF(sim.L[t]),
			fmtF(sim.Yn[t]),
			fmtF(sim.W[t]),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// WriteResidualSummaryToCSV writes the derived accuracy statistics.
func WriteResidualSummaryToCSV(path string, sm ResidualSummary) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"statistic", "log10_value"}); err != nil {
		return err
	}
	rows := [][]string{
		{"mean_abs_residual", fmt.Sprintf("%f", sm.MeanLog10)},
		{"max_abs_residual", fmt.Sprintf("%f", sm.MaxLog10)},
		{"sum_eq_max_residual", fmt.Sprintf("%f", sm.SumEqMaxLog10)},
	}
	for eq, v := range sm.EqMaxLog10 {
		rows = append(rows, []string{
			fmt.Sprintf("eq%d_max_residual", eq+1), fmt.Sprintf("%f", v),
		})
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Helper to print the deterministic steady state
func PrintSteadyState(ss SteadyState) {
	fmt.Println("\n=== Steady State ===")
	fmt.Printf(" Yn=%.6f Y=%.6f pi=%.6f delta=%.6f L=%.6f\n", ss.Yn, ss.Y, ss.Pi, ss.Delta, ss.L)
	fmt.Printf(" C=%.6f S=%.6f F=%.6f R=%.6f W=%.6f\n", ss.C, ss.S, ss.F, ss.R, ss.W)
}

// Helper to print the fitted coefficient matrix and stage statistics
func PrintSolveResult(res *SolveResult) {
	for _, st := range res.Stages {
		fmt.Printf("degree %d: %d iterations, final diff %.3e\n",
			st.Degree, st.Iterations, st.FinalDiff)
	}
	fmt.Println("\n=== Coefficients (terms x [S F C^-gamma]) ===")
	fmt.Printf("%v\n", mat.Formatted(res.Coef, mat.Prefix(" ")))
}

// Helper to print the accuracy summary
func PrintResidualSummary(sm ResidualSummary) {
	fmt.Println("\n=== Euler-equation residuals (log10) ===")
	fmt.Printf(" mean abs: %8.3f\n", sm.MeanLog10)
	fmt.Printf(" max abs:  %8.3f\n", sm.MaxLog10)
	fmt.Printf(" sum of per-equation maxima: %8.3f\n", sm.SumEqMaxLog10)
	for eq, v := range sm.EqMaxLog10 {
		fmt.Printf("  eq %d max: %8.3f\n", eq+1, v)
	}
}
