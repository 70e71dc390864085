package univariate

import (
	"errors"
	"fmt"

	"github.com/edoberton/newton/common"
)

var (
	// ErrZeroCurvature is returned when the second derivative estimate at an
	// iterate is exactly zero, so the Newton step is undefined.
	ErrZeroCurvature = errors.New("univariate: second derivative estimate is zero")

	// ErrNoObjective is returned when a stepper is initialized without an
	// objective function.
	ErrNoObjective = errors.New("univariate: no objective function")
)

// Stepper is an iterative method that produces a sequence of locations.
// Convergence of the sequence is judged by the caller.
type Stepper interface {
	Init(f Objective, initLoc float64) error
	Status() common.Status
	// Iterate moves to the next location and returns it together with the
	// first and second derivative estimates the move was based on
	Iterate() (loc, grad, curv float64, nFunEvals int, err error)
	// Result does any cleanup needed
	Result()
}

// newtonFunEvals is the number of objective evaluations in one Newton step:
// two for the first derivative and three for the second.
const newtonFunEvals = 5

// Newton applies the Newton-Raphson iteration to the derivative of the
// objective in order to find a stationary point:
//
//	x ← x - f'(x)/f''(x)
//
// Both derivatives are central finite differences with a fixed step. The
// stationary point found depends on the starting location and may be a
// maximum or a saddle as well as a minimum. Newton has no notion of
// convergence; it moves every time it is asked to.
//
// A Newton holds the state of a single run and must not be shared.
type Newton struct {
	Step float64 // Finite difference step. Zero means DefaultStep

	f    func(float64) float64
	loc  float64
	grad float64
	curv float64
}

func NewNewton(step float64) *Newton {
	return &Newton{Step: step}
}

func (n *Newton) Init(f Objective, initLoc float64) error {
	if f == nil {
		return ErrNoObjective
	}
	if fn, ok := f.(Func); ok && fn == nil {
		return ErrNoObjective
	}
	n.f = f.Obj
	n.loc = initLoc
	n.grad = 0
	n.curv = 0
	return nil
}

// Loc returns the current estimate.
func (n *Newton) Loc() float64 {
	return n.loc
}

func (n *Newton) step() float64 {
	if n.Step == 0 {
		return DefaultStep
	}
	return n.Step
}

// Advance performs one Newton step and returns the new estimate. If the
// second derivative estimate is exactly zero the estimate is left unchanged
// and an error wrapping ErrZeroCurvature is returned. Inf and NaN estimates
// are not checked for.
func (n *Newton) Advance() (float64, error) {
	h := n.step()
	n.grad = Fprime(n.f, n.loc, h)
	n.curv = Fsecond(n.f, n.loc, h)
	if n.curv == 0 {
		return n.loc, fmt.Errorf("%w at x = %v", ErrZeroCurvature, n.loc)
	}
	n.loc -= n.grad / n.curv
	return n.loc, nil
}

func (n *Newton) Iterate() (loc, grad, curv float64, nFunEvals int, err error) {
	loc, err = n.Advance()
	return loc, n.grad, n.curv, newtonFunEvals, err
}

// Status always returns Continue.
func (n *Newton) Status() common.Status { return common.Continue }

func (n *Newton) Result() {}
