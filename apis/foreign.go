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

// NamedError is the conventional discriminator carried by *foreign* errors:
// failures raised by code outside the taxonomy (persistence drivers, codecs)
// that do not implement the conversion capability but still expose a stable
// name, such as "CastError" for a persistence-layer type mismatch.
//
// The boundary classifier probes for this capability only after ViewProvider
// has been ruled out. Errors that expose neither are treated as unclassified
// internal failures.
type NamedError interface {
	error

	// ErrorName returns the foreign error's conventional name. An empty
	// string means "unnamed" and classifies the error as unclassified.
	ErrorName() string
}

// PathedError optionally accompanies NamedError: foreign field-level errors
// (again, "CastError" is the canonical example) expose the path of the field
// the failure is about, e.g. "age" or "address.zip".
//
// This is a separate, optional capability so that named errors without a
// field path still classify cleanly.
type PathedError interface {
	// Path returns the field path the failure refers to. May be empty.
	Path() string
}
