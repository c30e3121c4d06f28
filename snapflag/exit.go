package snapflag

import (
	"errors"
	"reflect"
)

// ExitError is a sentinel used to request a specific exit code from a caller.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeDefaults holds common default codes.
type ExitCodeDefaults struct {
	Success       int // default: 0
	GeneralError  int // default: 1
	MisusageError int // default: 2
	SchemaError   int // default: 3
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2, SchemaError: 3}
}

// ExitCodeManager maps errors and parse categories to process exit codes.
type ExitCodeManager struct {
	codesByType  map[reflect.Type]int
	codesByParse map[ErrorType]int
	defaults     ExitCodeDefaults
}

// NewExitCodeManager returns a manager with every parse category mapped to
// MisusageError.
func NewExitCodeManager() *ExitCodeManager {
	m := &ExitCodeManager{
		codesByType:  make(map[reflect.Type]int),
		codesByParse: make(map[ErrorType]int),
		defaults:     defaultExitDefaults(),
	}
	m.prewire()
	return m
}

func (e *ExitCodeManager) prewire() {
	for _, typ := range []ErrorType{
		ErrorTypeMalformedFlag, ErrorTypeUnknownFlag, ErrorTypeMissingValue, ErrorTypeInvalidValue,
	} {
		e.codesByParse[typ] = e.defaults.MisusageError
	}
}

// DefineType overrides the exit code used for a specific parse error category.
func (e *ExitCodeManager) DefineType(typ ErrorType, code int) *ExitCodeManager {
	e.codesByParse[typ] = code
	return e
}

// DefineError maps a concrete error value (by its dynamic type) to an exit
// code. A matching error type is consulted after ExitError and ParseError.
func (e *ExitCodeManager) DefineError(err error, code int) *ExitCodeManager {
	if err == nil {
		return e
	}
	e.codesByType[reflect.TypeOf(err)] = code
	return e
}

// Default replaces the manager's default codes and re-derives the parse
// category mappings from the new MisusageError.
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	e.defaults = d
	e.prewire()
	return e
}

// Defaults returns the codes currently in effect
func (e *ExitCodeManager) Defaults() ExitCodeDefaults {
	return e.defaults
}

// Resolve converts an error to an exit code according to registered mappings.
// Precedence:
//  1. ExitError (requested code)
//  2. ParseError category mapping (DefineType)
//  3. ErrInvalidSchema (SchemaError)
//  4. Concrete error type mapping (DefineError)
//  5. GeneralError
func (e *ExitCodeManager) Resolve(err error) int {
	if err == nil {
		return e.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var pe *ParseError
	if errors.As(err, &pe) {
		if code, ok := e.codesByParse[pe.Type]; ok {
			return code
		}
		return e.defaults.MisusageError
	}

	if errors.Is(err, ErrInvalidSchema) {
		return e.defaults.SchemaError
	}

	for t, code := range e.codesByType {
		if errors.As(err, reflect.New(t).Interface()) {
			return code
		}
	}

	return e.defaults.GeneralError
}
