package engine

import (
	"errors"
	"fmt"
)

// ErrorCode classifies errors reported by the style cache.
type ErrorCode int

// Error codes. The numbering is stable and may be handed to hosts.
const (
	OK                    ErrorCode = iota
	EngineCreateFailed              // the engine failed to create a stylesheet or context
	EngineSelectFailed              // style selection for a node failed
	EngineComposeFailed             // composition of a parent's and a child's style failed
	EngineDestroyFailed             // the engine failed to release a handle
	UnknownPseudoElement            // the host named a pseudo-element we do not know
	UnknownLanguageLevel            // the host named a CSS level we do not know
	ProviderArityMismatch           // a node provider function table has the wrong length
	AncestorCycle                   // the provider's parent chain loops
	AncestorDepthExceeded           // the provider's parent chain is too deep
	NoProvider                      // a style was requested before a provider was set
)

var codeNames = map[ErrorCode]string{
	OK:                    "ok",
	EngineCreateFailed:    "engine create failed",
	EngineSelectFailed:    "engine select failed",
	EngineComposeFailed:   "engine compose failed",
	EngineDestroyFailed:   "engine destroy failed",
	UnknownPseudoElement:  "unknown pseudo-element",
	UnknownLanguageLevel:  "unknown language level",
	ProviderArityMismatch: "provider arity mismatch",
	AncestorCycle:         "ancestor cycle",
	AncestorDepthExceeded: "ancestor depth exceeded",
	NoProvider:            "no node provider",
}

func (c ErrorCode) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("error code %d", int(c))
}

// Error is the error type of the style cache. It carries an error code, the
// operation which failed and, if present, the underlying cause.
//
// errors.Is(err, code) is not possible, but every code has a sentinel
// error of type *Error which matches by code:
//
//     errors.Is(err, engine.ErrSelectFailed)
//
type Error struct {
	Code ErrorCode
	Op   string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Code.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	ErrCreateFailed          = &Error{Code: EngineCreateFailed}
	ErrSelectFailed          = &Error{Code: EngineSelectFailed}
	ErrComposeFailed         = &Error{Code: EngineComposeFailed}
	ErrDestroyFailed         = &Error{Code: EngineDestroyFailed}
	ErrUnknownPseudoElement  = &Error{Code: UnknownPseudoElement}
	ErrUnknownLanguageLevel  = &Error{Code: UnknownLanguageLevel}
	ErrProviderArityMismatch = &Error{Code: ProviderArityMismatch}
	ErrAncestorCycle         = &Error{Code: AncestorCycle}
	ErrAncestorDepthExceeded = &Error{Code: AncestorDepthExceeded}
	ErrNoProvider            = &Error{Code: NoProvider}
)

// Wrap wraps err with an error code. A nil err results in a nil error.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Op: op, Err: err}
}

// Errorf creates an error with a code and a formatted cause.
func Errorf(code ErrorCode, op string, format string, args ...interface{}) error {
	return &Error{Code: code, Op: op, Err: fmt.Errorf(format, args...)}
}

// CodeOf extracts the error code of the outermost *Error in err's chain.
// It returns OK for nil and EngineSelectFailed for foreign errors, which
// can only originate from an engine or provider call.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EngineSelectFailed
}
