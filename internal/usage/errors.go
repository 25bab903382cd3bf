package usage

import "fmt"

// UnknownCommand is returned when no registered command matches.
func UnknownCommand(command string) *Error {
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: fmt.Sprintf("Unknown command: %s", command),
	}
}

// UnknownOption is returned for a flag no schema declares.
func UnknownOption(flag string) *Error {
	return &Error{
		Kind:    ErrUnknownOption,
		Message: fmt.Sprintf("Unknown option: %s", flag),
	}
}

// MissingValue is returned when a non-boolean option has no value token.
func MissingValue(flag string) *Error {
	return &Error{
		Kind:    ErrMissingValue,
		Message: fmt.Sprintf("Option %s requires a value", flag),
	}
}

// BadValue is returned when a value token cannot be coerced to the option's
// declared type.
func BadValue(name, reason string) *Error {
	return &Error{
		Kind:    ErrBadValue,
		Message: fmt.Sprintf("Invalid value for %s: %s", name, reason),
	}
}

// Validation is returned for required/choice/custom validation failures.
func Validation(msg string) *Error {
	return &Error{Kind: ErrValidation, Message: msg}
}

// Definition is returned when a command definition fails structural checks
// at registration time.
func Definition(name string, err error) *Error {
	return &Error{
		Kind:    ErrDefinition,
		Message: fmt.Sprintf("invalid command definition %q: %v", name, err),
	}
}

// ConnectionFailed classifies browser-endpoint connectivity failures
// reported by executors.
func ConnectionFailed(err error) *Error {
	return &Error{
		Kind:    ErrConnection,
		Message: fmt.Sprintf("connection failed: %v", err),
	}
}

// Timeout classifies executor deadline failures.
func Timeout(command string) *Error {
	return &Error{
		Kind:    ErrTimeout,
		Message: fmt.Sprintf("command %s timed out", command),
	}
}

// CommandFailed wraps an executor error that is neither connection nor
// timeout related.
func CommandFailed(command string, err error) *Error {
	return &Error{
		Kind:    ErrCommand,
		Message: fmt.Sprintf("%s: %v", command, err),
	}
}
