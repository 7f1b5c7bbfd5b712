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

package adapter

import (
	"errors"
	"net/http"

	errtypes "github.com/em-cultuur/error-types"
	"github.com/em-cultuur/error-types/apis"
	"github.com/em-cultuur/error-types/kind"
)

// castErrorName is the conventional discriminator persistence layers put on
// type-mismatch errors. It is the one foreign kind this boundary recognizes.
const castErrorName = "CastError"

// Convert turns any raised error into its external representation.
//
// Dispatch order:
//
//  1. the error (or anything in its Unwrap chain) implements
//     apis.ViewProvider — invoke it directly;
//  2. the error carries a conventional foreign name (apis.NamedError):
//     "CastError" becomes a 409 FieldNotValid view with
//     details {fieldName, message};
//  3. otherwise the error is an unclassified internal failure: one
//     structured diagnostic goes to the injected logger, and the produced
//     view is a generic 500 carrying only the original message — no details,
//     so internal state never leaks.
//
// Convert never fails and is idempotent in content: converting the same
// error twice yields structurally equal views. A nil error yields the zero
// view.
func (c *Converter) Convert(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}

	// 1. Domain variants: the only fully faithful path.
	var vp apis.ViewProvider
	if errors.As(err, &vp) {
		return vp.ErrorView()
	}

	// 2. Foreign errors classified by their conventional name.
	var named apis.NamedError
	if errors.As(err, &named) && named.ErrorName() == castErrorName {
		return castView(err, named)
	}

	// 3. Unclassified internal failure. The message alone may be useless for
	// triage, so the full error goes to the operator-visible channel; the
	// caller still only sees a generic 500.
	c.log.Error().
		Err(err).
		Str("component", "errtypes.adapter").
		Msg("unclassified error reached the boundary")

	msg := err.Error()
	if msg == "" {
		msg = "unknown error"
	}
	return apis.ErrorView{
		StatusCode: http.StatusInternalServerError,
		Kind:       string(kind.Unknown),
		Message:    msg,
	}
}

// castView renders a persistence-layer type mismatch as the 409-conflict
// representation of FieldNotValid, preserving the foreign field path and
// message.
func castView(err error, named apis.NamedError) apis.ErrorView {
	path := errtypes.NoName
	var pathed apis.PathedError
	if errors.As(err, &pathed) && pathed.Path() != "" {
		path = pathed.Path()
	}
	msg := named.Error()
	if msg == "" {
		msg = "invalid value"
	}
	return apis.ErrorView{
		StatusCode: http.StatusConflict,
		Kind:       string(kind.FieldNotValid),
		Message:    msg,
		Details: map[string]any{
			errtypes.DetailFieldName: path,
			errtypes.DetailMessage:   msg,
		},
	}
}

// Describe flattens a converted view and its resolved transport statuses
// into a portable descriptor.
//
// The descriptor is intended for structured logging, tracing, or message-bus
// propagation: it carries the logical kind and both concrete transport
// statuses (HTTP and gRPC) without the detail payload.
func Describe(v apis.ErrorView, st apis.Status) apis.ErrorDescriptor {
	return apis.ErrorDescriptor{
		Kind:       v.Kind,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    v.Message,
	}
}
