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

// Package mapper provides deterministic, immutable mappings from error kinds
// (github.com/em-cultuur/error-types/kind) to transport-level statuses for
// HTTP and gRPC.
//
// # Overview
//
// An error in this taxonomy carries two status inputs:
//
//  1. its Kind (e.g. kind.NotFound, kind.FieldNotValid), which has a
//     documented default status;
//  2. optionally, a per-instance status a constructor call site supplied.
//
// Transport layers (HTTP handlers, gin handlers, gRPC servers) need to turn
// this pair into concrete status codes. Package mapper does that in a way
// that is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change library defaults per kind;
//   - pin-aware — kinds whose status is fixed (AccessDenied -> 403) resolve
//     to the pinned value regardless of the instance status;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves the HTTP status in the following order:
//
//  1. exact override for the kind (the library ships AccessDenied -> 403);
//  2. the status carried by the error instance (when non-zero);
//  3. per-kind default (library or user-adjusted);
//  4. global fallback (500).
//
// gRPC codes have no instance tier — error instances carry HTTP-style
// statuses only — so the gRPC side resolves override, default, fallback
// (codes.Internal).
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPDefault(kind.BadRequest, http.StatusBadRequest),
//	    mapper.WithGRPCOverride(kind.DataError, int(codes.InvalidArgument)),
//	)
//	if err != nil {
//	    // invalid kind in an option, etc.
//	}
//
//	st := m.Status(kind.NotFound, 0)
//	// st.HTTP == 404, st.GRPC == codes.NotFound
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of
// how a particular (kind, instance status) was resolved, including which tier
// matched. This is intended for inspection and logging, not for stable
// machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Mapper does not observe further changes to the caller's maps. This makes it
// safe to share a single instance across handlers, goroutines, and requests.
package mapper
