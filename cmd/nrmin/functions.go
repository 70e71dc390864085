package main

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/num/hyperdual"
)

// demoFunc is one of the bundled objective functions. exact evaluates the
// same function on hyperdual numbers, which gives exact first and second
// derivatives to check a result against.
type demoFunc struct {
	name    string
	formula string
	guess   float64
	f       func(float64) float64
	exact   func(hyperdual.Number) hyperdual.Number
}

var one = hyperdual.Number{Real: 1}

var demoFuncs = map[string]demoFunc{
	"cubic": {
		name:    "cubic",
		formula: "x^3 - x - 1",
		guess:   5,
		f:       func(x float64) float64 { return x*x*x - x - 1 },
		exact: func(x hyperdual.Number) hyperdual.Number {
			return hyperdual.Sub(hyperdual.Sub(hyperdual.PowReal(x, 3), x), one)
		},
	},
	"expquad": {
		name:    "expquad",
		formula: "x^2 + e^x - 2",
		guess:   5,
		f:       func(x float64) float64 { return x*x + math.Exp(x) - 2 },
		exact: func(x hyperdual.Number) hyperdual.Number {
			return hyperdual.Sub(hyperdual.Add(hyperdual.Mul(x, x), hyperdual.Exp(x)), hyperdual.Scale(2, one))
		},
	},
	"quartic": {
		name:    "quartic",
		formula: "x^4 - 2x^2",
		guess:   2,
		f:       func(x float64) float64 { return x*x*x*x - 2*x*x },
		exact: func(x hyperdual.Number) hyperdual.Number {
			return hyperdual.Sub(hyperdual.PowReal(x, 4), hyperdual.Scale(2, hyperdual.Mul(x, x)))
		},
	},
	"cosh": {
		name:    "cosh",
		formula: "cosh(x - 1)",
		guess:   3,
		f:       func(x float64) float64 { return math.Cosh(x - 1) },
		exact: func(x hyperdual.Number) hyperdual.Number {
			y := hyperdual.Sub(x, one)
			return hyperdual.Scale(0.5, hyperdual.Add(hyperdual.Exp(y), hyperdual.Exp(hyperdual.Scale(-1, y))))
		},
	},
	"exp": {
		name:    "exp",
		formula: "e^x (no stationary point, needs --max-iter)",
		guess:   0,
		f:       math.Exp,
		exact:   hyperdual.Exp,
	},
}

func lookupFunc(name string) (demoFunc, error) {
	fn, ok := demoFuncs[name]
	if !ok {
		return demoFunc{}, fmt.Errorf("unknown function %q, available: %s", name, strings.Join(funcNames(), ", "))
	}
	return fn, nil
}

func funcNames() []string {
	names := make([]string, 0, len(demoFuncs))
	for name := range demoFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// derivatives returns the exact first and second derivatives of fn at x.
func (fn demoFunc) derivatives(x float64) (grad, curv float64) {
	v := fn.exact(hyperdualAt(x))
	return v.E1mag, v.E1E2mag
}

func hyperdualAt(x float64) hyperdual.Number {
	return hyperdual.Number{Real: x, E1mag: 1, E2mag: 1}
}
