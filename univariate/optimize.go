package univariate

import (
	"fmt"
	"math"

	"github.com/edoberton/newton/common"
)

// StepperWrapper is a convenience wrapper around a Stepper that allows more
// fine-grained control over optimization progress. See Optimize for example
// usage
type StepperWrapper struct {
	stepper Stepper
	helper  *Helper
}

func NewStepperWrapper(stepper Stepper) *StepperWrapper {
	return &StepperWrapper{
		stepper: stepper,
		helper:  NewHelper(),
	}
}

func (w *StepperWrapper) Init(settings *Settings, fun Objective, initLoc float64) error {
	if err := w.stepper.Init(fun, initLoc); err != nil {
		return err
	}
	return w.helper.Init(settings, fun, initLoc)
}

func (w *StepperWrapper) Status() common.Status {
	return common.CheckStatus(w.helper, w.stepper)
}

func (w *StepperWrapper) Iterate() (loc float64, err error) {
	loc, grad, curv, nFunEvals, err := w.stepper.Iterate()
	if err != nil {
		return loc, fmt.Errorf("error iterating optimizer: %w", err)
	}
	if err := w.helper.Iterate(loc, grad, curv, nFunEvals); err != nil {
		return loc, fmt.Errorf("error writing display: %w", err)
	}
	return loc, nil
}

func (w *StepperWrapper) Result(status common.Status) *Result {
	w.stepper.Result()
	return w.helper.Result(status)
}

// Optimize runs the stepper from initLoc until the status of the helper,
// the stepper or the objective is no longer Continue.
//
// With the default settings there is no limit on the number of iterations,
// so a sequence that oscillates or diverges never returns. Errors from the
// stepper end the run and are returned wrapped; no result is returned with
// them.
func Optimize(f Objective, initLoc float64, settings *Settings, stepper Stepper) (*Result, error) {
	if stepper == nil {
		panic("no optimizer provided")
	}

	if settings == nil {
		settings = DefaultSettings()
	}

	wrapper := NewStepperWrapper(stepper)

	err := wrapper.Init(settings, f, initLoc)
	if err != nil {
		return nil, fmt.Errorf("error initializing: %w", err)
	}

	var status common.Status
	for {
		status = wrapper.Status()
		if status != common.Continue {
			break
		}

		_, err := wrapper.Iterate()
		if err != nil {
			return nil, err
		}
	}
	return wrapper.Result(status), nil
}

// Minimize locates a stationary point of f with the Newton method, starting
// from x, and returns it once two consecutive iterates differ by at most
// epsilon. The finite difference step is DefaultStep.
//
// There is no iteration limit: if the iterates never settle, Minimize never
// returns. An iterate that turns NaN ends the run and NaN is returned without
// an error. A NaN epsilon ends the run after the second step. If the second
// derivative estimate at an iterate is zero, the returned error wraps
// ErrZeroCurvature and the location is NaN. Use Optimize with a limit in
// Settings to bound the run.
func Minimize(f func(float64) float64, x, epsilon float64) (float64, error) {
	if f == nil {
		return math.NaN(), ErrNoObjective
	}
	settings := DefaultSettings()
	settings.LocChangeTol = epsilon
	result, err := Optimize(Func(f), x, settings, NewNewton(DefaultStep))
	if err != nil {
		return math.NaN(), err
	}
	return result.Loc, nil
}
