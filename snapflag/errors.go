package snapflag

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents error categories for parse failures.
// These categories drive suggestion logic and exit-code mapping (via ExitCodeManager).
type ErrorType string

const (
	ErrorTypeMalformedFlag ErrorType = "malformed_flag"
	ErrorTypeUnknownFlag   ErrorType = "unknown_flag"
	ErrorTypeMissingValue  ErrorType = "missing_value"
	ErrorTypeInvalidValue  ErrorType = "invalid_value"
)

// Sentinels matched by (*ParseError).Is, so callers can use errors.Is.
var (
	ErrMalformedFlag = errors.New("malformed flag token")
	ErrUnknownFlag   = errors.New("unknown flag")
	ErrMissingValue  = errors.New("missing flag value")
	ErrInvalidValue  = errors.New("invalid flag value")

	// ErrInvalidSchema wraps every schema declaration error
	ErrInvalidSchema = errors.New("invalid schema")
)

var sentinelByType = map[ErrorType]error{
	ErrorTypeMalformedFlag: ErrMalformedFlag,
	ErrorTypeUnknownFlag:   ErrUnknownFlag,
	ErrorTypeMissingValue:  ErrMissingValue,
	ErrorTypeInvalidValue:  ErrInvalidValue,
}

// ParseError is returned for any failed parse. No partial values accompany it.
type ParseError struct {
	Type       ErrorType
	Message    string
	Flag       string // flag name, without the marker
	Token      string // offending token, empty when input ran out
	Position   int    // 1-based index of the offending token, 0 at end of input
	Suggestion string // closest declared flag for ErrorTypeUnknownFlag, if enabled
	// Suggestions holds up to three close flags, closest first;
	// Suggestion mirrors Suggestions[0].
	Suggestions []string
	Cause       error
}

func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap returns the underlying coercion error, if any
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel for this error's category
func (e *ParseError) Is(target error) bool {
	s, ok := sentinelByType[e.Type]
	return ok && s == target
}

// NewParseError creates a new ParseError with the given type and message
func NewParseError(errType ErrorType, message string) *ParseError {
	return &ParseError{
		Type:    errType,
		Message: message,
	}
}

func malformedFlagError(token string, pos int) *ParseError {
	msg := "expected a flag, got " + quoteToken(token)
	if token == "-" {
		msg = "flag name missing after '-'"
	}
	return &ParseError{
		Type:     ErrorTypeMalformedFlag,
		Message:  msg,
		Token:    token,
		Position: pos,
	}
}

func unknownFlagError(name, token string, pos int) *ParseError {
	return &ParseError{
		Type:     ErrorTypeUnknownFlag,
		Message:  "unknown flag: -" + name,
		Flag:     name,
		Token:    token,
		Position: pos,
	}
}

func missingValueError(name string, typ FlagType) *ParseError {
	return &ParseError{
		Type:    ErrorTypeMissingValue,
		Message: fmt.Sprintf("flag requires a %s value: -%s", typ, name),
		Flag:    name,
	}
}

func invalidValueError(name string, typ FlagType, token string, pos int, cause error) *ParseError {
	return &ParseError{
		Type:     ErrorTypeInvalidValue,
		Message:  fmt.Sprintf("invalid %s value %s for flag -%s", typ, quoteToken(token), name),
		Flag:     name,
		Token:    token,
		Position: pos,
		Cause:    cause,
	}
}

func quoteToken(token string) string {
	return "'" + token + "'"
}

// FormatError builds a user-facing message for err: the error line followed
// by any suggestion. Non-ParseError values are rendered with their Error text.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var builder strings.Builder
	builder.WriteString("Error: ")
	builder.WriteString(err.Error())

	var pe *ParseError
	if errors.As(err, &pe) {
		if hint := pe.Hint(); hint != "" {
			builder.WriteString("\n  ")
			builder.WriteString(hint)
		}
	}
	return builder.String()
}

// Hint renders "Did you mean '-x'?" or, for several candidates,
// "Did you mean one of '-x', '-y'?". Empty when there is nothing to suggest.
func (e *ParseError) Hint() string {
	names := e.Suggestions
	if len(names) == 0 && e.Suggestion != "" {
		names = []string{e.Suggestion}
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("Did you mean '-%s'?", names[0])
	}
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = "'-" + name + "'"
	}
	return "Did you mean one of " + strings.Join(quoted, ", ") + "?"
}
