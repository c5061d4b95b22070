// Package domainerrors defines the business error taxonomy of the lifecycle engine.
//
// A business error has a Kind (what went wrong, used for HTTP mapping), a
// stable Code (the status_code exposed in API payloads and audit entries) and
// a French and English message. Codes are declared once with Define; declaring
// the same code twice is a programming error and panics at init.
package domainerrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Kind classifies business errors.
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindPrecondition     Kind = "precondition_violation"
	KindIncompleteData   Kind = "incomplete_data"
	KindInvalidValue     Kind = "invalid_value"
	KindConflict         Kind = "conflict"
	KindExternalNotFound Kind = "external_not_found"
	KindInternal         Kind = "internal"
)

// Code is the stable status_code of a business error.
type Code string

// Error is a typed business error.
type Error struct {
	Kind      Kind
	Code      Code
	Message   string
	MessageEN string
	Detail    string
	cause     error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.MessageEN, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.MessageEN)
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches on Code so copies produced by With or Wrap still match the
// declared error.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// With returns a copy of the error carrying a detail string.
func (e *Error) With(detail string) *Error {
	c := *e
	c.Detail = detail
	return &c
}

// Wrap returns a copy of the error with cause attached.
func (e *Error) Wrap(cause error) *Error {
	c := *e
	c.cause = cause
	if cause != nil && c.Detail == "" {
		c.Detail = cause.Error()
	}
	return &c
}

// Localized returns the message in the requested language ("fr" or "en").
func (e *Error) Localized(language string) string {
	if strings.HasPrefix(strings.ToLower(language), "en") {
		return e.MessageEN
	}
	return e.Message
}

var (
	registryMu sync.Mutex
	registry   = map[Code]*Error{}
)

// Define declares a business error. It panics if the code is already taken.
func Define(kind Kind, code Code, fr, en string) *Error {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[code]; exists {
		panic(fmt.Sprintf("domain error code %q declared twice", code))
	}
	e := &Error{Kind: kind, Code: code, Message: fr, MessageEN: en}
	registry[code] = e
	return e
}

// Registered lists every declared business error ordered by code.
func Registered() []*Error {
	registryMu.Lock()
	defer registryMu.Unlock()
	out := make([]*Error, 0, len(registry))
	for _, e := range registry {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// ErrInternal marks infrastructure failures surfaced through the bus.
var ErrInternal = Define(KindInternal, "PARCOURS-DOCTORAL-INTERNE",
	"Une erreur interne est survenue.",
	"An internal error occurred.")

// Internal wraps an infrastructure error into ErrInternal.
func Internal(err error, detail string) *Error {
	e := ErrInternal.Wrap(err)
	if detail != "" {
		e.Detail = detail + ": " + e.Detail
	}
	return e
}

// HasCode reports whether err or any error it wraps carries code.
func HasCode(err error, code Code) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, &Error{Code: code})
}

// KindOf returns the kind of the first business error found in err.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
