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

// Package adapter implements the boundary conversion protocol: it turns any
// raised error — domain variant, recognized foreign error, or something
// else entirely — into exactly one well-formed apis.ErrorView.
//
// Dispatch is by capability, never by concrete type:
//
//  1. errors implementing apis.ViewProvider convert themselves (the only
//     fully faithful path);
//  2. foreign errors exposing a conventional name (apis.NamedError) are
//     classified best-effort ("CastError" -> a 409 FieldNotValid view);
//  3. everything else is an unclassified internal failure: a structured
//     diagnostic is emitted for operator visibility and the caller gets a
//     generic 500 view that leaks no internal detail.
//
// The protocol never fails: every input yields some valid representation.
package adapter

import (
	"os"

	"github.com/rs/zerolog"
)

// Converter performs the conversion protocol. The zero value is not usable;
// construct with New.
//
// A Converter is immutable and safe for concurrent use: share one instance
// per boundary.
type Converter struct {
	log zerolog.Logger
}

// Option configures a Converter at construction time.
type Option func(*Converter)

// WithLogger injects the diagnostics collaborator that receives one event
// per unclassified error. Passing the logger in explicitly — rather than
// writing to a hidden global — keeps the emission testable and lets services
// route it into their own sink.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Converter) { c.log = log }
}

// New constructs a Converter.
//
// Without options the diagnostics collaborator is a timestamped zerolog
// logger writing to stderr.
func New(opts ...Option) *Converter {
	c := &Converter{
		log: zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
