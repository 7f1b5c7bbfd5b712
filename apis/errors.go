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

// KindedError represents an error that is classified into a well-defined,
// machine-readable *kind* — one member of the closed taxonomy.
//
// Kinds are intended to be stable and enumerable. They are the primary value
// that higher-level adapters (HTTP, gRPC, gin) use to decide which transport
// status to return to the client.
//
// Implementations are expected to return the exact, canonical kind string —
// the value that was set at construction time. Callers should not try to
// "fix" or "guess" the value here; an empty or unknown kind is handled as an
// internal error at the boundary.
type KindedError interface {
	error

	// ErrorKind returns the machine-readable kind discriminator.
	//
	// The returned value MUST be non-empty and MUST be the discriminator
	// stored at construction — never a runtime type name.
	ErrorKind() string
}

// RecordedError represents an error that exposes zero or more elementary
// failure records. This is the capability of the composite DataError
// aggregate: validation scenarios where multiple fields fail at once and the
// caller needs to show *all* of them.
//
// Implementations SHOULD return a slice that is safe to iterate over and that
// will not be modified by the callee. Returning nil is allowed and simply
// means "no records".
type RecordedError interface {
	error

	// ErrorRecords returns the ordered failure records. May return nil.
	ErrorRecords() []Record
}

// CausedError represents an error that exposes its underlying cause.
//
// While Go 1.13 introduced errors.Unwrap, having this interface in apis lets
// us work with wrapped errors even in places where we don't want to depend on
// errors.As / errors.Is directly, or where we want to keep the contract
// explicit.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this error, if any.
	// May return nil.
	Cause() error
}
