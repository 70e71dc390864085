package univariate

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/hyperdual"
)

func TestDerivativesQuadratic(t *testing.T) {
	f := func(x float64) float64 { return x * x }

	if d := Fprime(f, 3, DefaultStep); math.Abs(d-6) > 1e-4 {
		t.Errorf("first derivative mismatch. Expected: %v, Found %v", 6.0, d)
	}
	if d := Fsecond(f, 3, DefaultStep); math.Abs(d-2) > 1e-2 {
		t.Errorf("second derivative mismatch. Expected: %v, Found %v", 2.0, d)
	}
}

func TestDerivativesHyperdual(t *testing.T) {
	one := hyperdual.Number{Real: 1}
	for _, test := range []struct {
		name string
		f    func(float64) float64
		hd   func(hyperdual.Number) hyperdual.Number
	}{
		{
			name: "cubic",
			f:    func(x float64) float64 { return x*x*x - x - 1 },
			hd: func(x hyperdual.Number) hyperdual.Number {
				return hyperdual.Sub(hyperdual.Sub(hyperdual.PowReal(x, 3), x), one)
			},
		},
		{
			name: "sinexp",
			f:    func(x float64) float64 { return math.Sin(x) * math.Exp(x) },
			hd: func(x hyperdual.Number) hyperdual.Number {
				return hyperdual.Mul(hyperdual.Sin(x), hyperdual.Exp(x))
			},
		},
		{
			name: "cosh",
			f:    math.Cosh,
			hd: func(x hyperdual.Number) hyperdual.Number {
				return hyperdual.Scale(0.5, hyperdual.Add(hyperdual.Exp(x), hyperdual.Exp(hyperdual.Scale(-1, x))))
			},
		},
	} {
		for _, x := range []float64{-1.3, 0.2, 1.5} {
			want := test.hd(hyperdual.Number{Real: x, E1mag: 1, E2mag: 1})

			d1 := Fprime(test.f, x, DefaultStep)
			if !scalar.EqualWithinAbsOrRel(d1, want.E1mag, 1e-6, 1e-6) {
				t.Errorf("%s: first derivative at %v. Expected: %v, Found %v", test.name, x, want.E1mag, d1)
			}
			d2 := Fsecond(test.f, x, DefaultStep)
			if !scalar.EqualWithinAbsOrRel(d2, want.E1E2mag, 1e-3, 1e-3) {
				t.Errorf("%s: second derivative at %v. Expected: %v, Found %v", test.name, x, want.E1E2mag, d2)
			}
		}
	}
}

func TestDerivativesUndefined(t *testing.T) {
	// log is undefined to the left of zero
	if d := Fprime(math.Log, 0, DefaultStep); !math.IsNaN(d) {
		t.Errorf("expected NaN first derivative, found %v", d)
	}
	if d := Fsecond(math.Log, 0, DefaultStep); !math.IsNaN(d) {
		t.Errorf("expected NaN second derivative, found %v", d)
	}
}

func TestDerivativesStep(t *testing.T) {
	f := func(x float64) float64 { return x * x * x }
	// The central difference of a cubic is off by exactly h² in the first
	// derivative, so a coarse step shows the step is honoured.
	h := 0.5
	want := 3*2.0*2.0 + h*h
	if d := Fprime(f, 2, h); math.Abs(d-want) > 1e-12 {
		t.Errorf("first derivative with step %v. Expected: %v, Found %v", h, want, d)
	}
	if d := Fsecond(f, 2, h); math.Abs(d-12) > 1e-12 {
		t.Errorf("second derivative with step %v. Expected: %v, Found %v", h, 12.0, d)
	}
}
