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

// Package kind provides parsing, normalization and validation for error kinds.
//
// A "kind" is the discriminator of an error variant: the single,
// machine-readable string that identifies which member of the closed error
// taxonomy an error belongs to, such as "NotFound", "FieldNotValid" or
// "DataError". Kinds are meant to be:
//
//   - short and stable;
//   - written in the CamelCase form existing API consumers already parse;
//   - suitable for use in JSON payloads and for lookup in registries.
//
// IMPORTANT: the kind is always set explicitly when an error is constructed.
// It is never derived from a runtime type name — type names do not survive
// every build pipeline, a stored string does. Empty kinds ("") are NOT
// allowed. Every error MUST have a non-empty kind.
//
// This package defines the canonical representation, the closed constant set,
// the functions that convert arbitrary user input to the canonical form, and
// the per-kind default status table used by variant constructors and the
// status mapper.
package kind
