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

// Package httpx writes converted errors as HTTP responses. It is a thin
// adapter: conversion happens in the adapter package, status policy in the
// mapper, and this package only serializes and writes.
package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/em-cultuur/error-types/adapter"
	"github.com/em-cultuur/error-types/apis"
	"github.com/em-cultuur/error-types/kind"
)

// Meta carries extra context that the HTTP layer can add on top of the
// converted error. All fields are optional and typically come from request
// context, headers, or rate-limiter output.
type Meta struct {
	// Correlation is echoed back in the X-Correlation-Id header when set.
	Correlation string

	// RetryAfterSeconds emits a Retry-After header when positive.
	RetryAfterSeconds int
}

// Writer is a thin adapter that knows how to turn any raised error into an
// HTTP response using the conversion protocol and the provided status mapper.
type Writer struct {
	// Conv converts the error into its external representation.
	Conv *adapter.Converter

	// Mapper resolves the final HTTP status at this boundary. When nil,
	// the status carried by the view is written as-is.
	Mapper apis.Mapper
}

// Write converts err, resolves its status, and writes the external
// representation as a JSON body.
//
// The body's statusCode always matches the status line: when the mapper
// re-resolves the status (override tier), the view is updated before
// serialization. A nil error writes nothing.
//
// No automatic redaction or filtering is performed here: whatever the
// conversion produced is exposed as-is. Unclassified errors were already
// reduced to a bare 500 view by the converter.
func (w Writer) Write(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}

	v := w.Conv.Convert(err)
	if w.Mapper != nil {
		v.StatusCode = w.Mapper.HTTPStatus(kind.Kind(v.Kind), v.StatusCode)
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.Correlation != "" {
		rw.Header().Set("X-Correlation-Id", meta.Correlation)
	}
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}
	rw.WriteHeader(v.StatusCode)

	// The view is a plain tagged struct; encoding/json is its canonical
	// serializer. Marshal cannot fail for the payloads the taxonomy
	// produces (strings, ints, records), so the error is ignored the same
	// way the status write above is.
	b, _ := json.Marshal(v)
	_, _ = rw.Write(b)
}
