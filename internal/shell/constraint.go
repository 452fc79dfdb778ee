package shell

import (
	"strconv"

	"github.com/jatayl/muskox/internal/engine"
)

// parseConstraint reads an optional search constraint: nothing for the
// engine default, "depth <n>" or "timed <ms>".
func parseConstraint(args []string) (engine.Constraint, error) {
	if len(args) == 0 {
		return engine.Unconstrained(), nil
	}

	switch args[0] {
	case "depth":
		if len(args) < 2 {
			return engine.Constraint{}, &MissingParameterError{Parameter: "depth"}
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return engine.Constraint{}, &ConstraintOptionError{Option: args[1]}
		}
		return engine.AtDepth(n)
	case "timed":
		if len(args) < 2 {
			return engine.Constraint{}, &MissingParameterError{Parameter: "milliseconds"}
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return engine.Constraint{}, &ConstraintOptionError{Option: args[1]}
		}
		return engine.Timed(n)
	default:
		return engine.Constraint{}, &ConstraintOptionError{Option: args[0]}
	}
}
