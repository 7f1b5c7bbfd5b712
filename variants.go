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

import (
	"fmt"
	"strings"

	"github.com/em-cultuur/error-types/kind"
)

// Detail payload keys. "fieldName" is the single spelling used across the
// whole taxonomy; "document" is what file/document variants expose.
const (
	DetailFieldName = "fieldName"
	DetailDocument  = "document"
	DetailMessage   = "message"
)

// NoName is the sentinel substituted when a required structured field
// (fieldName, document) is omitted. Constructors are deliberately permissive:
// raising an error never itself fails, so missing inputs degrade to this
// documented placeholder instead of an empty payload.
const NoName = "no name"

// orNoName substitutes the sentinel for an omitted name-like argument.
func orNoName(s string) string {
	if s == "" {
		return NoName
	}
	return s
}

// NotImplemented reports an operation that exists in the API surface but has
// no implementation. Status 500, no detail payload.
func NotImplemented(msg string, opts ...Option) *Error {
	if msg == "" {
		msg = "not implemented"
	}
	return New(kind.NotImplemented, msg, opts...)
}

// NotFound reports a missing entity. Status 404, details {fieldName}.
//
// An omitted field name degrades to the "no name" sentinel and the message
// defaults to "not found".
func NotFound(fieldName string, opts ...Option) *Error {
	e := New(kind.NotFound, "not found",
		WithDetailOption(DetailFieldName, orNoName(fieldName)))
	return apply(e, opts)
}

// Duplicate reports a uniqueness violation on a field. Status 500,
// details {fieldName, message}.
func Duplicate(fieldName, msg string, opts ...Option) *Error {
	fieldName = orNoName(fieldName)
	if msg == "" {
		msg = fmt.Sprintf("field %q already exists", fieldName)
	}
	e := New(kind.Duplicate, msg,
		WithDetailOption(DetailFieldName, fieldName),
		WithDetailOption(DetailMessage, msg))
	return apply(e, opts)
}

// AccessDenied reports a forbidden operation. The produced representation is
// always 403 — "forbidden", not "unauthorized" — regardless of any status
// option. No detail payload.
func AccessDenied(msg string, opts ...Option) *Error {
	if msg == "" {
		msg = "access denied"
	}
	return New(kind.AccessDenied, msg, opts...)
}

// DocumentNotFound reports a missing persisted document. Status 404,
// details {document}.
func DocumentNotFound(document string, opts ...Option) *Error {
	e := New(kind.DocumentNotFound, "document not found",
		WithDetailOption(DetailDocument, orNoName(document)))
	return apply(e, opts)
}

// FieldNotFound reports a missing field on the target entity. Status 404,
// details {fieldName}. The message defaults to the templated form
// `field "<name>" not found`.
func FieldNotFound(fieldName string, opts ...Option) *Error {
	fieldName = orNoName(fieldName)
	e := New(kind.FieldNotFound, fmt.Sprintf("field %q not found", fieldName),
		WithDetailOption(DetailFieldName, fieldName))
	return apply(e, opts)
}

// FieldNotValid reports a field value that violates a constraint. Status 409,
// details {fieldName, message}. An empty message falls back to the templated
// form `field "<name>" not valid`.
func FieldNotValid(fieldName, msg string, opts ...Option) *Error {
	fieldName = orNoName(fieldName)
	if msg == "" {
		msg = fmt.Sprintf("field %q not valid", fieldName)
	}
	e := New(kind.FieldNotValid, msg,
		WithDetailOption(DetailFieldName, fieldName),
		WithDetailOption(DetailMessage, msg))
	return apply(e, opts)
}

// FieldsNotAllowed reports caller-supplied fields that are not defined for
// the target entity. Status 500, no structured payload: the offending names
// are rendered into the message, joined and pluralized:
//
//	FieldsNotAllowed([]string{"a", "b"})  ->  `fields "a, b" not defined`
//	FieldsNotAllowed([]string{"a"})       ->  `field "a" not defined`
//
// An empty list keeps the degenerate-but-well-formed message
// `fields "" not defined`; rendering never fails.
func FieldsNotAllowed(fields []string, opts ...Option) *Error {
	noun := "fields"
	if len(fields) == 1 {
		noun = "field"
	}
	msg := fmt.Sprintf("%s %q not defined", noun, strings.Join(fields, ", "))
	return New(kind.FieldsNotAllowed, msg, opts...)
}

// File reports a file-level failure. Kind "FileError", status 404,
// details {document, message} with the filename exposed under "document".
func File(filename string, opts ...Option) *Error {
	filename = orNoName(filename)
	msg := fmt.Sprintf("file %q not found", filename)
	e := New(kind.File, msg,
		WithDetailOption(DetailDocument, filename),
		WithDetailOption(DetailMessage, msg))
	return apply(e, opts)
}

// BadRequest reports a malformed or unprocessable request. Status 500
// (historical taxonomy behavior), no detail payload.
func BadRequest(msg string, opts ...Option) *Error {
	if msg == "" {
		msg = "bad request"
	}
	return New(kind.BadRequest, msg, opts...)
}

// ServerError reports an internal, non-classified service failure.
// Status 500, no detail payload.
func ServerError(msg string, opts ...Option) *Error {
	if msg == "" {
		msg = "server error"
	}
	return New(kind.ServerError, msg, opts...)
}

// Unknown reports a failure nothing more specific is known about.
// Status 500, no detail payload.
func Unknown(msg string, opts ...Option) *Error {
	if msg == "" {
		msg = "unknown error"
	}
	return New(kind.Unknown, msg, opts...)
}

// Typed constructs an error with a caller-supplied kind: the escape hatch for
// taxonomies layered on top of this one. Status 500 unless the kind is a
// known member of the closed set, no detail payload.
func Typed(k kind.Kind, msg string, opts ...Option) *Error {
	if msg == "" {
		msg = "error"
	}
	return New(k, msg, opts...)
}

// apply runs trailing constructor options after the variant has seeded its
// defaults, so caller overrides win over templated messages and payloads.
func apply(e *Error, opts []Option) *Error {
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}
