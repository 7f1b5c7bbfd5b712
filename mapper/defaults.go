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

package mapper

import (
	"net/http"

	"github.com/em-cultuur/error-types/kind"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for the closed
// kind set. These mirror the per-kind defaults documented in the kind
// package; callers may adjust them at the boundary where HTTP is actually
// produced.
var defaultHTTP = map[kind.Kind]int{
	// Lookups.
	kind.NotFound:         http.StatusNotFound,
	kind.DocumentNotFound: http.StatusNotFound,
	kind.FieldNotFound:    http.StatusNotFound,
	kind.File:             http.StatusNotFound,

	// Input / validation.
	kind.FieldNotValid:    http.StatusConflict,            // Validation conflicts report as 409 in this taxonomy.
	kind.FieldsNotAllowed: http.StatusInternalServerError, // Undefined fields are a contract breach, not client noise.
	kind.Duplicate:        http.StatusInternalServerError,
	kind.BadRequest:       http.StatusInternalServerError, // Historical taxonomy behavior; override per boundary if 400 is wanted.
	kind.DataError:        http.StatusUnauthorized,        // The data-validation class.

	// Access / server-side.
	kind.AccessDenied:   http.StatusForbidden,
	kind.NotImplemented: http.StatusInternalServerError,
	kind.ServerError:    http.StatusInternalServerError,
	kind.Unknown:        http.StatusInternalServerError,
}

// defaultGRPC defines the library's built-in gRPC mappings for the closed
// kind set. Values are chosen to align with canonical gRPC status codes
// while preserving the kind's meaning. As with HTTP, callers may override
// these at the transport edge.
var defaultGRPC = map[kind.Kind]codes.Code{
	// Lookups.
	kind.NotFound:         codes.NotFound,
	kind.DocumentNotFound: codes.NotFound,
	kind.FieldNotFound:    codes.NotFound,
	kind.File:             codes.NotFound,

	// Input / validation.
	kind.FieldNotValid:    codes.Aborted,         // 409-class conflict.
	kind.Duplicate:        codes.AlreadyExists,   // Uniqueness violation.
	kind.FieldsNotAllowed: codes.InvalidArgument, // Undefined fields in the request payload.
	kind.BadRequest:       codes.InvalidArgument,
	kind.DataError:        codes.InvalidArgument, // Aggregated field violations.

	// Access / server-side.
	kind.AccessDenied:   codes.PermissionDenied,
	kind.NotImplemented: codes.Unimplemented,
	kind.ServerError:    codes.Internal,
	kind.Unknown:        codes.Internal,
}

// defaultHTTPOverride pins kinds whose produced status must not vary with
// the error instance. AccessDenied always reads as "forbidden", never as
// whatever status a call site happened to carry.
var defaultHTTPOverride = map[kind.Kind]int{
	kind.AccessDenied: http.StatusForbidden,
}
