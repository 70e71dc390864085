package main

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/floats/scalar"
)

// execute runs the root command with args and returns what it wrote to
// stdout. Flags are reset first since the commands are package globals.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, cmd := range rootCmd.Commands() {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	err := rootCmd.Execute()
	return buf.String(), err
}

// field returns the value printed after "name =" in the run output
func field(t *testing.T, out, name string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		k, v, ok := strings.Cut(line, "=")
		if ok && strings.TrimSpace(k) == name {
			return strings.TrimSpace(v)
		}
	}
	t.Fatalf("no %q in output %q", name, out)
	return ""
}

func TestRunCubic(t *testing.T) {
	out, err := execute(t, "run", "--func", "cubic")
	if err != nil {
		t.Fatal(err)
	}
	x, err := strconv.ParseFloat(field(t, out, "x"), 64)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbsOrRel(x, 1/math.Sqrt(3), 1e-6, 1e-6) {
		t.Errorf("location doesn't match. Expected: %v, Found %v", 1/math.Sqrt(3), x)
	}
	if s := field(t, out, "status"); s != "LocChangeTol" {
		t.Errorf("unexpected status %q", s)
	}
	if !strings.Contains(out, "(minimum)") {
		t.Errorf("expected a minimum in %q", out)
	}
}

func TestRunGuess(t *testing.T) {
	// From the left of the local maximum the cubic converges to it
	out, err := execute(t, "run", "--func", "cubic", "--guess", "-2")
	if err != nil {
		t.Fatal(err)
	}
	x, err := strconv.ParseFloat(field(t, out, "x"), 64)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbsOrRel(x, -1/math.Sqrt(3), 1e-6, 1e-6) {
		t.Errorf("location doesn't match. Expected: %v, Found %v", -1/math.Sqrt(3), x)
	}
	if !strings.Contains(out, "(maximum)") {
		t.Errorf("expected a maximum in %q", out)
	}
}

func TestRunMaxIter(t *testing.T) {
	out, err := execute(t, "run", "--func", "exp", "--max-iter", "10")
	if err == nil {
		t.Fatalf("expected an error for a run that did not converge")
	}
	if s := field(t, out, "status"); s != "MaximumIterations" {
		t.Errorf("unexpected status %q", s)
	}
	if s := field(t, out, "iterations"); s != "10" {
		t.Errorf("unexpected iterations %q", s)
	}
}

func TestRunTrace(t *testing.T) {
	out, err := execute(t, "run", "--func", "quartic", "--trace", "csv")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "Iter,FnEval,Loc,Grad,Curv,LocChange\n") {
		t.Errorf("expected csv trace, found %q", out)
	}

	if _, err := execute(t, "run", "--trace", "xml"); err == nil {
		t.Errorf("expected an error for an unknown trace")
	}
}

func TestRunUnknownFunc(t *testing.T) {
	if _, err := execute(t, "run", "--func", "sinc"); err == nil {
		t.Errorf("expected an error for an unknown function")
	}
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range funcNames() {
		if !strings.Contains(out, name) {
			t.Errorf("%s missing from list output %q", name, out)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "nrmin version "+version+"\n" {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestDemoFuncsExact(t *testing.T) {
	// The hyperdual forms have to describe the same functions
	for _, name := range funcNames() {
		fn := demoFuncs[name]
		for _, x := range []float64{-1.5, 0.25, 2} {
			v := fn.exact(hyperdualAt(x))
			if !scalar.EqualWithinAbsOrRel(v.Real, fn.f(x), 1e-12, 1e-12) {
				t.Errorf("%s(%v): Expected: %v, Found %v", name, x, fn.f(x), v.Real)
			}
		}
	}
}
