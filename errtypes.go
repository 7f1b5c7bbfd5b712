/*
   Copyright 2026 The error-types Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package errtypes implements a closed error taxonomy for service boundaries.
//
// Application code constructs one of the variant errors (NotFound, Duplicate,
// AccessDenied, ...) or the composite DataError aggregate at the failure
// site, returns it unchanged up the call stack, and a single boundary layer
// converts it — exactly once — into the standardized external representation
// apis.ErrorView via the adapter package.
package errtypes

import (
	"fmt"

	"github.com/em-cultuur/error-types/apis"
	"github.com/em-cultuur/error-types/kind"
)

// Error is the elementary error value of the taxonomy.
//
// It carries:
//   - Kind: the variant discriminator, set explicitly at construction
//     (never derived from a runtime type name);
//   - Status: the HTTP-style status the produced representation will carry;
//   - Message: human-oriented description (what went wrong);
//   - Details: the variant-specific structured payload ({fieldName: ...});
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances are
// effectively immutable and can be safely shared once constructed.
type Error struct {
	// Kind is the discriminator of the variant, e.g. kind.NotFound,
	// kind.FieldNotValid. Must be a member of the closed set from the kind
	// package, or a caller-supplied kind for the generic Typed variant.
	Kind kind.Kind

	// Status is the HTTP-style status code of this instance. Constructors
	// seed it from kind.DefaultStatus; callers may override it, except for
	// pinned kinds, whose representation ignores the override.
	Status int

	// Message is a human-readable explanation. This is what ends up in the
	// "message" field of the external representation.
	Message string

	// Details is the variant-specific structured payload that will be
	// exposed under "details". Nil for variants without one. The map is
	// treated as immutable: WithDetail always copies it.
	Details map[string]any

	// Cause holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for debugging in lower layers. It is never
	// part of the external representation.
	Cause error
}

// Compile-time capability checks: the boundary dispatches on these, never on
// the concrete type.
var (
	_ apis.ViewProvider = (*Error)(nil)
	_ apis.KindedError  = (*Error)(nil)
)

// New is the generic constructor behind the variant constructors.
//
// Usage:
//
//	return errtypes.New(kind.NotFound, "customer not found",
//	    errtypes.WithDetailOption("fieldName", "customerId"),
//	)
//
// The status is seeded from the kind's documented default. It always returns
// a *new* Error and applies all provided options in order. Construction is
// deliberately permissive: it validates nothing and never fails — raising an
// error must not itself be able to fail.
func New(k kind.Kind, msg string, opts ...Option) *Error {
	e := &Error{Kind: k, Status: kind.DefaultStatus(k), Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<kind>: <message>
//
// This makes the error both human- and machine-scannable in logs.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// ErrorKind returns the discriminator as a string. Implements apis.KindedError.
func (e *Error) ErrorKind() string { return string(e.Kind) }

// ErrorView produces the external representation of this error.
// Implements apis.ViewProvider — the conversion capability.
//
// The status is the instance status, except for pinned kinds (AccessDenied),
// which always map to their documented status. The details map is copied, so
// the returned view is detached from the error: converting twice yields
// structurally equal views and mutating one never affects the other.
func (e *Error) ErrorView() apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	st := e.Status
	if st == 0 || kind.Pinned(e.Kind) {
		st = kind.DefaultStatus(e.Kind)
	}
	v := apis.ErrorView{
		StatusCode: st,
		Kind:       string(e.Kind),
		Message:    e.Message,
	}
	if len(e.Details) > 0 {
		m := make(map[string]any, len(e.Details))
		for k, val := range e.Details {
			m[k] = val
		}
		v.Details = m
	}
	return v
}

// WithStatus returns a shallow copy of e with the given status set.
// The original error is not modified. Pinned kinds accept the override but
// their produced representation still uses the pinned status.
func (e *Error) WithStatus(status int) *Error {
	cp := *e
	cp.Status = status
	return &cp
}

// WithMessage returns a shallow copy of e with a replaced human message.
// Useful when you want to keep the Kind/Status but present the message in a
// different language or context.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithDetail returns a shallow copy of e with one extra key/value in Details.
//
// The method always copies the map to preserve immutability. This prevents
// surprising modifications across goroutines or shared error values.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	// No details yet — create a new single-entry map.
	if len(cp.Details) == 0 {
		cp.Details = map[string]any{k: v}
		return &cp
	}
	// Copy existing details and add one more.
	m := make(map[string]any, len(cp.Details)+1)
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	m[k] = v
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause attached.
// If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
