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

package apis

// ViewProvider is implemented by errors that can produce the standardized,
// self-contained external representation of themselves.
//
// This is the conversion capability of the taxonomy: every domain variant
// (and the composite aggregate) implements it, and the boundary converter
// dispatches on it. Transport adapters only ever consume the returned view;
// they never inspect concrete error types.
//
// The returned view MUST be safe to marshal to JSON and MUST be detached
// from the error's internal state: calling ErrorView twice yields
// structurally equal values and mutating one view never affects the error.
type ViewProvider interface {
	error

	// ErrorView returns the external representation of the error.
	ErrorView() ErrorView
}

// ErrorView is the external representation of a failure: the single shape
// handed to the transport layer for any error, classified or not.
//
// This is *not* the concrete error type used internally — it is the contract
// all variants must produce. Keeping it here (in apis) allows HTTP, gRPC and
// gin adapters to share the same struct.
type ErrorView struct {
	// StatusCode is the HTTP-style status for this failure.
	// Always present and non-zero for any real error.
	StatusCode int `json:"statusCode"`

	// Kind is the discriminator of the variant that produced this view,
	// e.g. "NotFound", "FieldNotValid", "DataError". Always present and
	// non-empty; caller-supplied strings appear here for the generic
	// Typed variant.
	Kind string `json:"kind"`

	// Message is the human-readable description. Always present and
	// non-empty.
	Message string `json:"message"`

	// Details carries the variant-specific structured payload, when the
	// variant defines one:
	//
	//   - elementary variants: a map[string]any object
	//     (e.g. {"fieldName": "age"});
	//   - the DataError aggregate: the full ordered []Record sequence.
	//
	// Absent (nil) for variants without a payload and for unclassified
	// failures, which must never leak internal state here.
	Details any `json:"details,omitempty"`
}
