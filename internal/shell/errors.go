package shell

import "fmt"

// UnknownCommandError reports an unrecognized verb.
type UnknownCommandError struct {
	Verb string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("invalid command: %s", e.Verb)
}

// MissingParameterError reports a command missing a required argument.
type MissingParameterError struct {
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("expected parameter: %s", e.Parameter)
}

// ConstraintOptionError reports an unrecognized search-constraint option.
type ConstraintOptionError struct {
	Option string
}

func (e *ConstraintOptionError) Error() string {
	return fmt.Sprintf("unknown search constraint option: %s", e.Option)
}
