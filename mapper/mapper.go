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
	"fmt"
	"strings"

	"github.com/em-cultuur/error-types/apis"
	"github.com/em-cultuur/error-types/kind"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained mapper instance — no shared
// references to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC) and the pinned
//     overrides (AccessDenied -> 403).
//  2. Apply user-provided options (defaults, overrides, fallbacks).
//  3. Validate every kind that options touched (via kind.Validate).
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function indicate an invalid kind used in an
// option.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder. We do not assume any pre-seeded state.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}
	for k, v := range defaultHTTPOverride {
		b.httpOverride[k] = v
	}

	// (2) Apply user-supplied options (defaults, overrides, fallbacks).
	for _, opt := range opts {
		opt(b)
	}

	// (3) Every kind an option touched must be a valid discriminator.
	for _, m := range []map[kind.Kind]int{b.httpDefaults, b.grpcDefaults, b.httpOverride, b.grpcOverride} {
		for k := range m {
			if err := kind.Validate(k); err != nil {
				return nil, fmt.Errorf("mapper: invalid kind %q: %w", k, err)
			}
		}
	}

	// (4) Freeze everything into a read-only snapshot.
	// Each map is freshly allocated.
	m := &mapper{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// mapper is an immutable mapper implementation that combines per-kind exact
// overrides, the status carried by the error instance, and per-kind defaults.
// Lookups are O(1) and safe for concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given kind.
	// Used when no override is present and the instance carries no status.
	httpDefault map[kind.Kind]int

	// grpcDefault holds the base gRPC status for a given kind.
	grpcDefault map[kind.Kind]codes.Code

	// httpOverride holds explicit HTTP statuses for specific kinds.
	// These take precedence over everything, including the instance status;
	// this is where pinned kinds live.
	httpOverride map[kind.Kind]int

	// grpcOverride holds explicit gRPC statuses for specific kinds.
	grpcOverride map[kind.Kind]codes.Code

	// fallbackHTTP is used when there is no mapping at all for a kind.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no mapping at all for a kind.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given kind and instance status.
//
// Resolution order (highest to lowest):
//  1. exact per-kind override (pinned kinds included);
//  2. the status carried by the error instance (non-zero);
//  3. per-kind default (library or user overridden);
//  4. hardcoded ultimate fallback (500).
func (m *mapper) HTTPStatus(k kind.Kind, instance int) int {
	// 1. Fast path: exact override for this kind.
	if v, ok := m.httpOverride[k]; ok {
		return v
	}

	// 2. The instance carried its own status.
	if instance != 0 {
		return instance
	}

	// 3. Per-kind default.
	if v, ok := m.httpDefault[k]; ok {
		return v
	}

	// 4. Ultimate fallback: HTTP must never be zero.
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given kind.
//
// Resolution order:
//  1. exact per-kind override;
//  2. per-kind default;
//  3. hardcoded fallback (codes.Internal).
//
// There is no instance tier: error instances carry HTTP-style statuses only.
func (m *mapper) GRPCStatus(k kind.Kind) codes.Code {
	// 1. Exact override.
	if v, ok := m.grpcOverride[k]; ok {
		return v
	}

	// 2. Default for this kind.
	if v, ok := m.grpcDefault[k]; ok {
		return v
	}

	// 3. Ultimate fallback.
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/gRPC decisions consistent for a single logical error.
func (m *mapper) Status(k kind.Kind, instance int) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(k, instance),
		GRPC: m.GRPCStatus(k),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular (kind, instance status) pair.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, instance, default, or fallback).
//
// Example output:
//
//	kind="AccessDenied" instance=500
//	http: source=override -> 403
//	grpc: source=default -> PERMISSIONDENIED(7)
//
// Note: source ∈ {override | instance | default | fallback}.
func (m *mapper) Explain(k kind.Kind, instance int) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "kind=%q instance=%d\n", k, instance)
	_, _ = fmt.Fprintln(&b, m.explainHTTP(k, instance))
	_, _ = fmt.Fprintln(&b, m.explainGRPC(k))
	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP returns a formatted line describing how the HTTP status was
// chosen, naming the tier ("override", "instance", "default", "fallback").
func (m *mapper) explainHTTP(k kind.Kind, instance int) string {
	// 1) exact per-kind override
	if v, ok := m.httpOverride[k]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}

	// 2) the instance status
	if instance != 0 {
		return fmt.Sprintf("http: source=instance -> %d", instance)
	}

	// 3) per-kind default
	if v, ok := m.httpDefault[k]; ok {
		return fmt.Sprintf("http: source=default -> %d", v)
	}

	// 4) global fallback
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC returns a formatted line describing how the gRPC status was
// chosen, naming the tier ("override", "default", "fallback").
func (m *mapper) explainGRPC(k kind.Kind) string {
	// 1) exact per-kind override
	if v, ok := m.grpcOverride[k]; ok {
		return fmt.Sprintf("grpc: source=override -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}

	// 2) per-kind default
	if v, ok := m.grpcDefault[k]; ok {
		return fmt.Sprintf("grpc: source=default -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}

	// 3) global fallback
	return fmt.Sprintf("grpc: source=fallback -> %s(%d)", strings.ToUpper(m.fallbackGRPC.String()), int(m.fallbackGRPC))
}
