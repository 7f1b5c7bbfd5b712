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

package kind

import "net/http"

// Resource lookup kinds
//
// These kinds describe "the thing you asked for does not exist" conditions
// at different granularities: a generic entity, a whole document, a single
// field, or a file on disk.
const (
	// NotFound indicates that the requested entity does not exist.
	// Use this for lookups by ID, name, key, or reference when no more
	// specific kind applies.
	//
	// Default status: 404.
	NotFound Kind = "NotFound"

	// DocumentNotFound indicates that a whole persisted document is absent.
	// The detail payload names the document so clients can tell which
	// collection/record the lookup targeted.
	//
	// Default status: 404.
	DocumentNotFound Kind = "DocumentNotFound"

	// FieldNotFound indicates that a referenced field does not exist on the
	// target entity. The detail payload carries the field name.
	//
	// Default status: 404.
	FieldNotFound Kind = "FieldNotFound"

	// File indicates a file-level failure (missing or unreadable file).
	// The wire value is "FileError"; the detail payload exposes the filename
	// under the "document" key, matching what existing consumers parse.
	//
	// Default status: 404.
	File Kind = "FileError"
)

// Input / validation kinds
const (
	// FieldNotValid indicates that a field value violates a structural or
	// semantic constraint. The detail payload carries the field name and the
	// validation message.
	//
	// Default status: 409 — validation conflicts are reported as conflicts,
	// not bad requests, in this taxonomy.
	FieldNotValid Kind = "FieldNotValid"

	// FieldsNotAllowed indicates that the caller supplied fields that are
	// not defined for the target entity. The offending names are rendered
	// into the message; there is no structured payload.
	//
	// Default status: 500.
	FieldsNotAllowed Kind = "FieldsNotAllowed"

	// Duplicate indicates a uniqueness violation on a field.
	// The detail payload carries the field name and a message.
	//
	// Default status: 500.
	Duplicate Kind = "Duplicate"

	// BadRequest indicates a malformed or otherwise unprocessable request.
	//
	// Default status: 500 — historical taxonomy behavior; override the
	// status at construction if a 400 is wanted at a given call site.
	BadRequest Kind = "BadRequest"

	// DataError is the composite kind: an ordered collection of elementary
	// field-level failure records reported as one unit. Produced by the
	// aggregate, never by an elementary constructor.
	//
	// Default status: 401 — the data-validation class of this taxonomy.
	DataError Kind = "DataError"
)

// Access / server-side kinds
const (
	// AccessDenied indicates that the caller is not allowed to perform the
	// operation. The produced representation is always 403 ("forbidden",
	// not "unauthorized"), regardless of any per-instance status.
	//
	// Default status: 403, pinned.
	AccessDenied Kind = "AccessDenied"

	// NotImplemented indicates that the requested operation exists in the
	// API surface but has no implementation yet.
	//
	// Default status: 500.
	NotImplemented Kind = "NotImplemented"

	// ServerError indicates an internal, non-classified service failure.
	//
	// Default status: 500.
	ServerError Kind = "ServerError"

	// Unknown is the catch-all kind. It is also the kind produced for
	// foreign errors that the boundary classifier cannot recognize.
	//
	// Default status: 500.
	Unknown Kind = "Unknown"
)

// defaultStatus is the per-kind default HTTP-style status table.
// Variant constructors seed new errors from it, and the mapper uses it as
// its default tier.
var defaultStatus = map[Kind]int{
	NotFound:         http.StatusNotFound,
	DocumentNotFound: http.StatusNotFound,
	FieldNotFound:    http.StatusNotFound,
	File:             http.StatusNotFound,

	FieldNotValid:    http.StatusConflict,
	FieldsNotAllowed: http.StatusInternalServerError,
	Duplicate:        http.StatusInternalServerError,
	BadRequest:       http.StatusInternalServerError,
	DataError:        http.StatusUnauthorized,

	AccessDenied:   http.StatusForbidden,
	NotImplemented: http.StatusInternalServerError,
	ServerError:    http.StatusInternalServerError,
	Unknown:        http.StatusInternalServerError,
}

// DefaultStatus returns the documented default status for the given kind.
// Kinds outside the closed set (caller-supplied kinds for the generic Typed
// variant included) default to 500.
func DefaultStatus(k Kind) int {
	if st, ok := defaultStatus[k]; ok {
		return st
	}
	return http.StatusInternalServerError
}

// Pinned reports whether the produced representation for this kind always
// uses the default status, ignoring any per-instance override.
//
// Only AccessDenied is pinned: access failures must read as "forbidden",
// never as whatever status a call site happened to pass along.
func Pinned(k Kind) bool {
	return k == AccessDenied
}
