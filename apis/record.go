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

// Record is one elementary failure inside a composite DataError aggregate.
// This is a *view type* — small, transport-friendly, and suitable for JSON.
//
// We keep it in apis so that different parts of the system (validators, the
// aggregate itself, HTTP/gRPC adapters) can speak about "records" without
// importing the concrete error implementation.
//
// Typical usage: a multi-field validation pass appends one Record per failing
// field, and the whole ordered sequence becomes the Details of the aggregate's
// external representation.
type Record struct {
	// Kind classifies the elementary failure, e.g. "FieldNotValid" or
	// "FieldNotFound". Callers MAY leave it empty, but providing it makes
	// client-side handling simpler.
	Kind string `json:"kind,omitempty"`

	// FieldName carries the logical path to the failing field, e.g.
	// "metadata.name" or "age". For non-field records this may be empty.
	//
	// The JSON key is "fieldName" — the single detail-key spelling used
	// across the whole taxonomy.
	FieldName string `json:"fieldName,omitempty"`

	// Message is the human-friendly explanation for this record.
	Message string `json:"message,omitempty"`

	// Data carries optional extra structured context (allowed values, the
	// rejected input, limits, etc.). Values should be chosen so that they
	// survive a JSON round-trip.
	Data any `json:"data,omitempty"`
}
