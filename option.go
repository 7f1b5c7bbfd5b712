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

package errtypes

// Option is a functional option for constructing or transforming an Error.
// It always takes an *Error and returns a (possibly new) *Error.
type Option func(*Error) *Error

// WithStatusOption overrides the default status on the error being
// constructed. Intended to be used with the variant constructors. Pinned
// kinds (AccessDenied) accept the option but still represent as their
// documented status.
func WithStatusOption(status int) Option {
	return func(e *Error) *Error {
		return e.WithStatus(status)
	}
}

// WithMessageOption replaces the default message on the error being
// constructed. Intended to be used with the variant constructors.
func WithMessageOption(msg string) Option {
	return func(e *Error) *Error {
		return e.WithMessage(msg)
	}
}

// WithDetailOption adds a single detail key/value on construction.
// Intended to be used with New(...) and the variant constructors.
func WithDetailOption(k string, v any) Option {
	return func(e *Error) *Error {
		return e.WithDetail(k, v)
	}
}

// WithCauseOption attaches a cause on construction.
// Intended to be used with New(...) and the variant constructors.
func WithCauseOption(err error) Option {
	return func(e *Error) *Error {
		return e.WithCause(err)
	}
}
