package usage

// ErrorKind classifies a user-facing error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnknownCommand
	ErrUnknownOption
	ErrMissingValue
	ErrBadValue
	ErrValidation
	ErrDefinition
	ErrConnection
	ErrTimeout
	ErrCommand
)

// Exit codes:
//
//	Exit 0: success (never carried by an Error)
//	Exit 1: general errors
//	  - Unknown errors
//	  - Malformed command definitions
//	Exit 2: connection errors
//	Exit 3: command execution errors
//	Exit 4: timeouts
//	Exit 5: invalid arguments / validation failures
//	  - Unknown command or option
//	  - Missing option value, bad value type
//	  - Required/choice/custom validation failures
var exitCodes = map[ErrorKind]int{
	ErrUnknown:        1,
	ErrDefinition:     1,
	ErrConnection:     2,
	ErrCommand:        3,
	ErrTimeout:        4,
	ErrUnknownCommand: 5,
	ErrUnknownOption:  5,
	ErrMissingValue:   5,
	ErrBadValue:       5,
	ErrValidation:     5,
}

// Error is a user-facing error with semantic kind information. The kind maps
// to a process exit code; the mapping is reported here but applied by main.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ExitCode returns the exit code for this error's kind.
func (e *Error) ExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

var _ error = (*Error)(nil)
