package common

type Statuser interface {
	Status() Status
}

// CheckStatus checks the status of a variadic number of Statusers and
// returns the first one that is not Continue
func CheckStatus(cs ...Statuser) Status {
	for _, val := range cs {
		c := val.Status()
		if c != Continue {
			return c
		}
	}
	return Continue
}

// NewStatus is used to get a unique value for Status to avoid any accidental
// collisions. NewStatus is not thread-safe as it is intended to only be used
// during initialization
func NewStatus(str string) Status {
	lastStatus++
	statusStrings[lastStatus] = str
	return Status(lastStatus)
}

var statusStrings map[Status]string

func init() {
	statusStrings = make(map[Status]string)
	statusStrings[Continue] = "Continue"
	statusStrings[LocChangeTol] = "LocChangeTol"
	statusStrings[UserFunctionStop] = "StoppedByUserFunction"

	statusStrings[MaximumIterations] = "MaximumIterations"
	statusStrings[MaximumFunctionEvaluations] = "MaximumFunctionEvaluations"
	statusStrings[MaximumRuntime] = "MaximumRuntimeElapsed"
}

// Status is a type for expressing if the optimizer has finished or not
// Zero signifies no convergence or error so the optimizer should continue.
// Positive values indicate successful convergence
// negative values express failure for some way
//
// If a custom status value is desired, NewStatus should be called. NewStatus
// is not thread-safe as it is intended to only be used during initialization
type Status int

func (s Status) String() string {
	str, ok := statusStrings[s]
	if !ok {
		return "UnregisteredStatus"
	}
	return str
}

// Converged reports whether s is a successful termination.
func (s Status) Converged() bool {
	return s > 0
}

const (
	Continue Status = iota
	LocChangeTol
	UserFunctionStop
)

// Failure statuses. MaximumIterations, MaximumFunctionEvaluations and
// MaximumRuntime only occur when the matching limit in CommonSettings is set.
const (
	_                        = iota
	MaximumIterations Status = -1 * iota
	MaximumFunctionEvaluations
	MaximumRuntime
)

var lastStatus Status = 256
