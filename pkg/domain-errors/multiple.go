package domainerrors

import (
	"errors"
	"strings"
)

// Multiple aggregates every business error raised by one validation phase or
// one command. It is the only error type a command returns through the bus.
type Multiple struct {
	Errors []*Error
}

func (m *Multiple) Error() string {
	parts := make([]string, len(m.Errors))
	for i, e := range m.Errors {
		parts[i] = e.Error()
	}
	return "multiple business errors: " + strings.Join(parts, "; ")
}

func (m *Multiple) Unwrap() []error {
	out := make([]error, len(m.Errors))
	for i, e := range m.Errors {
		out[i] = e
	}
	return out
}

// Codes lists the codes carried, in raise order.
func (m *Multiple) Codes() []Code {
	out := make([]Code, len(m.Errors))
	for i, e := range m.Errors {
		out[i] = e.Code
	}
	return out
}

// Join flattens errs into a *Multiple. It returns nil when every err is nil.
// Non-business errors are wrapped into ErrInternal.
func Join(errs ...error) error {
	var out []*Error
	for _, err := range errs {
		out = appendFlat(out, err)
	}
	if len(out) == 0 {
		return nil
	}
	return &Multiple{Errors: out}
}

func appendFlat(out []*Error, err error) []*Error {
	if err == nil {
		return out
	}
	var m *Multiple
	if errors.As(err, &m) {
		return append(out, m.Errors...)
	}
	var e *Error
	if errors.As(err, &e) {
		return append(out, e)
	}
	return append(out, Internal(err, ""))
}

// AsMultiple normalizes any error into a *Multiple; nil stays nil.
func AsMultiple(err error) *Multiple {
	if err == nil {
		return nil
	}
	var m *Multiple
	if errors.As(err, &m) {
		return m
	}
	joined := Join(err)
	return joined.(*Multiple)
}

// Codes returns every business error code carried by err.
func Codes(err error) []Code {
	m := AsMultiple(err)
	if m == nil {
		return nil
	}
	return m.Codes()
}
