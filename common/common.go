package common

import (
	"time"

	"github.com/edoberton/newton/write"
)

type Initer interface {
	Init()
}

type Resulter interface {
	Result()
}

// ObjectiveHooks forwards the optional lifecycle calls to the objective
// function.
//
// If the objective is an Initer, Init is called once at the start of a run.
// If it is a Statuser, its Status is checked before every iteration and a
// value other than Continue ends the run. If it is a Resulter, Result is
// called once the run has finished. If it is a write.DataAdder its values
// are appended to the display.
type ObjectiveHooks struct {
	fun interface{}
}

func (o *ObjectiveHooks) Init(objectiveFunction interface{}) {
	o.fun = objectiveFunction
	if initer, ok := objectiveFunction.(Initer); ok {
		initer.Init()
	}
}

func (o *ObjectiveHooks) Status() Status {
	if statuser, ok := o.fun.(Statuser); ok {
		return statuser.Status()
	}
	return Continue
}

func (o *ObjectiveHooks) Result() {
	if resulter, ok := o.fun.(Resulter); ok {
		resulter.Result()
	}
}

func (o *ObjectiveHooks) AppendWriteData(v []*write.Value) []*write.Value {
	if adder, ok := o.fun.(write.DataAdder); ok {
		return adder.AppendWriteData(v)
	}
	return v
}

// CommonSettings is a set of options available to all optimizers.
//
// The limits are disabled by default (set to -1), in which case an optimizer
// that never converges never returns. Setting any of them trades that for a
// run that ends with the matching failure Status.
type CommonSettings struct {
	MaximumIterations          int           // Sets the maximum number of major iterations that can occur
	MaximumFunctionEvaluations int           // Sets the maximum number of function evaluations that can occur
	MaximumRuntime             time.Duration // Sets the maximum runtime that can elapse
	*write.WriteSettings
}

// DefaultCommonSettings returns the default settings for the common structure
func DefaultCommonSettings() *CommonSettings {
	return &CommonSettings{
		MaximumIterations:          -1,
		MaximumFunctionEvaluations: -1,
		MaximumRuntime:             -1,
		WriteSettings:              write.DefaultWriteSettings(),
	}
}

// CommonResult is a list of results from the common structure
type CommonResult struct {
	Iterations          int           // Total number of iterations taken by the optimizer
	FunctionEvaluations int           // Total number of function evaluations taken by the optimizer
	Runtime             time.Duration // Total runtime elapsed during the optimization
	Status              Status        // How did the optimizer end
}

// Common keeps the counters shared by every optimizer: iterations, function
// evaluations and runtime, and drives the display.
type Common struct {
	iter      int
	funEvals  int
	startTime time.Time

	settings *CommonSettings

	*write.Display
	*ObjectiveHooks
}

// NewCommon creates a new Common structure and adds itself to the display
func NewCommon() *Common {
	c := &Common{
		Display:        write.NewDisplay(),
		ObjectiveHooks: &ObjectiveHooks{},
	}
	c.AddDataAdder(c, c.ObjectiveHooks)
	return c
}

// Init resets the counters at the start of an optimization run and writes
// the display headings
func (c *Common) Init(settings *CommonSettings, objectiveFunction interface{}) error {
	c.iter = 0
	c.funEvals = 0
	c.startTime = time.Now()

	c.settings = settings

	c.ObjectiveHooks.Init(objectiveFunction)
	return c.Display.Init(settings.WriteSettings)
}

func (c *Common) AppendWriteData(d []*write.Value) []*write.Value {
	d = append(d, &write.Value{Heading: "Iter", Value: c.iter})
	d = append(d, &write.Value{Heading: "FnEval", Value: c.funEvals})
	return d
}

// Status checks the objective hooks and the limits in CommonSettings
func (c *Common) Status() Status {
	status := c.ObjectiveHooks.Status()
	if status != Continue {
		return status
	}

	if c.settings.MaximumIterations > -1 && c.iter >= c.settings.MaximumIterations {
		return MaximumIterations
	}
	if c.settings.MaximumFunctionEvaluations > -1 && c.funEvals >= c.settings.MaximumFunctionEvaluations {
		return MaximumFunctionEvaluations
	}
	if c.settings.MaximumRuntime > -1 && time.Since(c.startTime) > c.settings.MaximumRuntime {
		return MaximumRuntime
	}
	return Continue
}

// Result returns the results from the common structure
func (c *Common) Result(status Status) *CommonResult {
	c.ObjectiveHooks.Result()
	return &CommonResult{
		Iterations:          c.iter,
		FunctionEvaluations: c.funEvals,
		Runtime:             time.Since(c.startTime),
		Status:              status,
	}
}

// Iterate increments the iteration count, adds the function evaluations
// and writes to the display
func (c *Common) Iterate(nFunEvals int) error {
	c.iter++
	c.funEvals += nFunEvals
	return c.Display.Iterate()
}
