package univariate

import (
	"math"

	"github.com/edoberton/newton/common"
	"github.com/edoberton/newton/write"
)

// Objective is a function of a single real variable. It must be twice
// differentiable around the iterates for the Newton method to make sense;
// nothing checks that.
type Objective interface {
	Obj(x float64) float64
}

// Func adapts an ordinary function to the Objective interface.
type Func func(x float64) float64

func (f Func) Obj(x float64) float64 { return f(x) }

// DefaultTolerance is the default bound on the change between consecutive
// iterates.
const DefaultTolerance = 1e-10

// Settings is a structure containing settings for univariate
// optimizers.
type Settings struct {
	*common.CommonSettings

	// LocChangeTol is the bound on the absolute difference between the two
	// most recent iterates. The run converges once the difference is at most
	// LocChangeTol. With zero, consecutive iterates must be exactly equal.
	LocChangeTol float64
}

// DefaultSettings returns the default settings for univariate optimizers.
// The default behavior is to run the optimizer until convergence, with no
// limit on iterations. If it is desired that it end earlier, consider
// changing MaximumIterations, MaximumFunctionEvaluations, and MaximumRuntime
func DefaultSettings() *Settings {
	return &Settings{
		CommonSettings: common.DefaultCommonSettings(),
		LocChangeTol:   DefaultTolerance,
	}
}

// Helper is a helper struct for optimizers. Not intended for use by
// callers of optimization functions, but exported to aid others who are building
// optimization algorithms
//
// Optimization implementers should call Init() at the beginning of an optimization run
// and should call Status() to check tolerances. At the end of every iteration should call
// Iterate()
type Helper struct {
	*common.Common

	loc  *common.StepToler
	curr step
}

// step is what a stepper reports about one iteration
type step struct {
	loc  float64
	grad float64
	curv float64
}

// NewHelper creates a new Helper and adds itself to the data adders
func NewHelper() *Helper {
	h := &Helper{
		Common: common.NewCommon(),
		loc:    &common.StepToler{},
	}
	h.AddDataAdder(h)
	return h
}

func (h *Helper) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "Loc", Value: h.curr.loc})
	v = append(v, &write.Value{Heading: "Grad", Value: h.curr.grad})
	v = append(v, &write.Value{Heading: "Curv", Value: h.curr.curv})
	v = append(v, &write.Value{Heading: "LocChange", Value: h.loc.Change()})
	return v
}

// Init prepares the helper for a run starting at initLoc. The starting
// location is not compared against the first iterate.
func (h *Helper) Init(s *Settings, objectiveFunction interface{}, initLoc float64) error {
	h.loc.Init(s.LocChangeTol)
	h.curr = step{loc: initLoc, grad: math.NaN(), curv: math.NaN()}
	return h.Common.Init(s.CommonSettings, objectiveFunction)
}

// Iterate records a finished iteration
func (h *Helper) Iterate(loc, grad, curv float64, nFunEvals int) error {
	h.loc.Add(loc)
	h.curr = step{loc: loc, grad: grad, curv: curv}
	return h.Common.Iterate(nFunEvals)
}

// Status returns LocChangeTol once consecutive iterates agree, and otherwise
// the status of the common limits
func (h *Helper) Status() common.Status {
	if h.loc.Converged() {
		return common.LocChangeTol
	}
	return h.Common.Status()
}

func (h *Helper) Result(status common.Status) *Result {
	return &Result{
		CommonResult: h.Common.Result(status),
		Loc:          h.curr.loc,
		Grad:         h.curr.grad,
		Curv:         h.curr.curv,
	}
}

type Result struct {
	*common.CommonResult
	Loc  float64 // Final iterate
	Grad float64 // First derivative estimate used for the final step
	Curv float64 // Second derivative estimate used for the final step
}
