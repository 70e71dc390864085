package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/edoberton/newton/univariate"
	"github.com/edoberton/newton/write"
)

var (
	funcName string
	guess    float64
	epsilon  float64
	step     float64
	maxIter  int
	trace    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Minimize one of the bundled functions",
	Long: `Runs the Newton-Raphson minimizer on a bundled function and reports the
stationary point found. Without --max-iter a run that does not converge
never returns.`,
	RunE: runMinimize,
}

func init() {
	runCmd.Flags().StringVar(&funcName, "func", "cubic", "Function to minimize (see list)")
	runCmd.Flags().Float64Var(&guess, "guess", math.NaN(), "Initial guess (defaults to the function's own)")
	runCmd.Flags().Float64Var(&epsilon, "epsilon", univariate.DefaultTolerance, "Bound on the change between consecutive iterates")
	runCmd.Flags().Float64Var(&step, "step", univariate.DefaultStep, "Finite difference step")
	runCmd.Flags().IntVar(&maxIter, "max-iter", -1, "Maximum iterations, -1 for no limit")
	runCmd.Flags().StringVar(&trace, "trace", "", "Write iterations to stdout: csv or display")

	rootCmd.AddCommand(runCmd)
}

func runMinimize(cmd *cobra.Command, args []string) error {
	fn, err := lookupFunc(funcName)
	if err != nil {
		return err
	}
	x0 := guess
	if math.IsNaN(x0) {
		x0 = fn.guess
	}

	settings := univariate.DefaultSettings()
	settings.LocChangeTol = epsilon
	settings.MaximumIterations = maxIter
	settings.Logger = logger
	switch trace {
	case "":
	case "csv":
		settings.DisplayWriters = []write.Writer{{Writer: cmd.OutOrStdout(), T: write.Logger}}
	case "display":
		settings.DisplayWriters = []write.Writer{{Writer: cmd.OutOrStdout(), T: write.Displayer}}
	default:
		return fmt.Errorf("unknown trace %q, expected csv or display", trace)
	}

	logger.Info("Starting minimization", "func", fn.name, "guess", x0, "epsilon", epsilon, "step", step, "max_iter", maxIter)

	result, err := univariate.Optimize(univariate.Func(fn.f), x0, settings, univariate.NewNewton(step))
	if err != nil {
		return fmt.Errorf("minimizing %s: %w", fn.name, err)
	}

	grad, curv := fn.derivatives(result.Loc)
	logger.Info("Minimization finished",
		"status", result.Status.String(),
		"iterations", result.Iterations,
		"evaluations", result.FunctionEvaluations,
		"runtime", result.Runtime)
	if result.Status.Converged() && !scalar.EqualWithinAbs(grad, 0, 1e-6) {
		logger.Warn("Result is not a stationary point", "x", result.Loc, "grad", grad)
	}

	kind := "saddle"
	switch {
	case curv > 0:
		kind = "minimum"
	case curv < 0:
		kind = "maximum"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "f(x)       = %s\n", fn.formula)
	fmt.Fprintf(out, "x          = %v\n", result.Loc)
	fmt.Fprintf(out, "f'(x)      = %v\n", grad)
	fmt.Fprintf(out, "f''(x)     = %v (%s)\n", curv, kind)
	fmt.Fprintf(out, "status     = %v\n", result.Status)
	fmt.Fprintf(out, "iterations = %d\n", result.Iterations)
	if !result.Status.Converged() {
		return fmt.Errorf("%s did not converge: %v", fn.name, result.Status)
	}
	return nil
}
