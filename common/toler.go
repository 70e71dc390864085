package common

import "math"

// StepToler checks the convergence of a sequence of iterates by comparing
// each iterate with the one before it.
type StepToler struct {
	tol    float64
	prev   float64
	change float64
	added  int
}

// Init initializes the StepToler with an absolute tolerance on the change
// between consecutive iterates.
func (t *StepToler) Init(tol float64) {
	t.tol = tol
	t.prev = math.NaN()
	t.change = math.Inf(1)
	t.added = 0
}

// Add adds a new iterate to the toler. The first iterate after Init only
// seeds the comparison.
func (t *StepToler) Add(loc float64) {
	if t.added > 0 {
		t.change = math.Abs(loc - t.prev)
	}
	t.prev = loc
	t.added++
}

// Change returns the absolute difference between the two most recent
// iterates, or +Inf if fewer than two have been added.
func (t *StepToler) Change() float64 {
	return t.change
}

// Converged returns true once two iterates exist and their change is not
// greater than the tolerance. A NaN change or a NaN tolerance therefore
// counts as converged, which ends a run whose iterates went to NaN.
func (t *StepToler) Converged() bool {
	if t.added < 2 {
		return false
	}
	return !(t.change > t.tol)
}
