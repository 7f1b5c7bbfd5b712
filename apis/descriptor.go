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

// ErrorDescriptor is a flat, transport-friendly description of a converted
// error together with its resolved transport statuses.
//
// This type intentionally uses strings and ints (not the internal Kind value
// type) so that it can live in the public "apis" layer and be used by
// adapters, structured logging and message-bus propagation.
type ErrorDescriptor struct {
	// Kind is the discriminator of the variant, e.g. "NotFound",
	// "FieldNotValid", "DataError".
	Kind string `json:"kind"`

	// HTTPStatus is the resolved HTTP status for this error.
	// A value of 0 means "not resolved".
	HTTPStatus int `json:"httpStatus,omitempty"`

	// GRPCCode is the resolved gRPC status code (as integer).
	// A value of 0 means OK / "not resolved".
	GRPCCode int `json:"grpcCode,omitempty"`

	// Message is the human-friendly message carried by the error.
	Message string `json:"message,omitempty"`
}
