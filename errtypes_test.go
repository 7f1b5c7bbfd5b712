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
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/em-cultuur/error-types/kind"
)

func TestError_Basics(t *testing.T) {
	e := New(kind.NotFound, "customer not found",
		WithDetailOption("fieldName", "customerId"),
	)

	if e.Kind != kind.NotFound {
		t.Fatal("kind mismatch")
	}
	if e.Status != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", e.Status, http.StatusNotFound)
	}
	if e.Details["fieldName"] != "customerId" {
		t.Fatal("detail missing")
	}
	if got, want := e.Error(), "NotFound: customer not found"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestError_Immutability_CopyOnWrite(t *testing.T) {
	e1 := New(kind.FieldNotValid, "bad").WithDetail("k1", 1)
	e2 := e1.WithDetail("k2", 2)

	if len(e1.Details) != 1 || len(e2.Details) != 2 {
		t.Fatal("details size mismatch")
	}
	if _, ok := e1.Details["k2"]; ok {
		t.Fatal("original mutated")
	}

	e3 := e1.WithStatus(400)
	if e1.Status == 400 {
		t.Fatal("original status mutated")
	}
	if e3.Status != 400 {
		t.Fatal("copy status not set")
	}
}

func TestError_WithCause_Unwrap(t *testing.T) {
	root := errors.New("root")
	e := New(kind.ServerError, "x").WithCause(root)
	if !errors.Is(e, root) {
		t.Fatal("errors.Is failed")
	}
	if errors.Unwrap(e) != root {
		t.Fatal("Unwrap failed")
	}

	// nil cause is a no-op and returns the same value
	if e.WithCause(nil) != e {
		t.Fatal("WithCause(nil) must return the receiver")
	}
}

func TestError_View_InstanceStatus(t *testing.T) {
	e := New(kind.NotFound, "gone").WithStatus(410)
	v := e.ErrorView()
	if v.StatusCode != 410 {
		t.Fatalf("StatusCode = %d, want 410", v.StatusCode)
	}
	if v.Kind != "NotFound" || v.Message != "gone" {
		t.Fatalf("view mismatch: %+v", v)
	}
}

func TestError_View_PinnedKindIgnoresOverride(t *testing.T) {
	e := New(kind.AccessDenied, "nope").WithStatus(500)
	v := e.ErrorView()
	if v.StatusCode != http.StatusForbidden {
		t.Fatalf("pinned kind must represent as 403, got %d", v.StatusCode)
	}
}

func TestError_View_ZeroStatusFallsBackToDefault(t *testing.T) {
	e := &Error{Kind: kind.FieldNotValid, Message: "bad"}
	v := e.ErrorView()
	if v.StatusCode != http.StatusConflict {
		t.Fatalf("zero status must fall back to the kind default, got %d", v.StatusCode)
	}
}

func TestError_View_DetailsDetached(t *testing.T) {
	e := New(kind.NotFound, "x", WithDetailOption("fieldName", "id"))
	v1 := e.ErrorView()
	v2 := e.ErrorView()

	if !reflect.DeepEqual(v1, v2) {
		t.Fatal("converting twice must yield structurally equal views")
	}

	v1.Details.(map[string]any)["fieldName"] = "mutated"
	if e.Details["fieldName"] != "id" {
		t.Fatal("mutating the view leaked into the error")
	}
	if v2.Details.(map[string]any)["fieldName"] != "id" {
		t.Fatal("views must not share the details map")
	}
}

func TestError_Options_ApplyInOrder(t *testing.T) {
	e := New(kind.BadRequest, "first",
		WithMessageOption("second"),
		WithStatusOption(400),
	)
	if e.Message != "second" {
		t.Fatalf("Message = %q, want %q", e.Message, "second")
	}
	if e.Status != 400 {
		t.Fatalf("Status = %d, want 400", e.Status)
	}
}

func TestError_NilReceiver(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatal("nil Error() mismatch")
	}
	if v := e.ErrorView(); v.Kind != "" || v.StatusCode != 0 {
		t.Fatal("nil ErrorView() must be the zero view")
	}
}
