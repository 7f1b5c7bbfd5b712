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

import (
	"encoding"
	"errors"
	"net/http"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  NotFound  ", "NotFound"},
		{"interior spaces dropped", "Not Found", "NotFound"},
		{"case preserved", "FieldNotValid", "FieldNotValid"},
		{"lower case preserved", "payment_declined", "payment_declined"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Kind
	}{
		{"camel", "NotFound", Kind("NotFound")},
		{"with spaces", "  Data Error  ", Kind("DataError")},
		{"snake", "payment_declined", Kind("payment_declined")},
		{"min length", "Abc", Kind("Abc")},
		{"digits after first", "Http404", Kind("Http404")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "NF"},
		{"starts with digit", "1NotFound"},
		{"dash", "not-found"},
		{"dot", "storage.pg"},
		{"too long", "A_very_long_kind_that_is_definitely_more_than_sixty_four_characters_long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
			}
			if !errors.Is(err, ErrKindInvalid) {
				t.Fatalf("Parse(%q) error = %v, want ErrKindInvalid", tt.in, err)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []Kind{
		NotFound,
		DocumentNotFound,
		FieldNotValid,
		DataError,
		File, // wire value "FileError"
		"payment_declined",
	}
	for _, k := range valid {
		if err := Validate(k); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", k, err)
		}
	}

	invalid := []Kind{
		"",          // empty
		"NF",        // too short
		"not-found", // dash
		"1Bad",      // starts with digit
	}
	for _, k := range invalid {
		if err := Validate(k); err == nil {
			t.Fatalf("Validate(%q) expected error", k)
		}
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("INVALID KIND ??")
}

func TestMustParse_SucceedsOnValid(t *testing.T) {
	k := MustParse("NotFound")
	if k != NotFound {
		t.Fatalf("MustParse(valid) = %q, want %q", k, NotFound)
	}
}

func TestKind_MarshalText(t *testing.T) {
	text, err := FieldNotValid.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "FieldNotValid" {
		t.Fatalf("MarshalText() = %q, want %q", string(text), "FieldNotValid")
	}

	// invalid kind should fail MarshalText
	invalid := Kind("Bad-Dash")
	if _, err := invalid.MarshalText(); err == nil {
		t.Fatalf("MarshalText() on invalid kind must return error")
	}
}

func TestKind_UnmarshalText(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("  Not Found  ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if k != NotFound {
		t.Fatalf("UnmarshalText() = %q, want %q", k, NotFound)
	}

	var bad Kind
	if err := bad.UnmarshalText([]byte("!@#")); err == nil {
		t.Fatalf("UnmarshalText() expected error for invalid input")
	}
}

func TestKind_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Kind)(nil)
	var _ encoding.TextUnmarshaler = (*Kind)(nil)
}

func TestDefaultStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{NotFound, http.StatusNotFound},
		{DocumentNotFound, http.StatusNotFound},
		{FieldNotFound, http.StatusNotFound},
		{File, http.StatusNotFound},
		{FieldNotValid, http.StatusConflict},
		{FieldsNotAllowed, http.StatusInternalServerError},
		{Duplicate, http.StatusInternalServerError},
		{BadRequest, http.StatusInternalServerError},
		{DataError, http.StatusUnauthorized},
		{AccessDenied, http.StatusForbidden},
		{NotImplemented, http.StatusInternalServerError},
		{ServerError, http.StatusInternalServerError},
		{Unknown, http.StatusInternalServerError},
		{Kind("payment_declined"), http.StatusInternalServerError}, // outside the closed set
	}
	for _, tt := range tests {
		if got := DefaultStatus(tt.kind); got != tt.want {
			t.Fatalf("DefaultStatus(%q) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestPinned(t *testing.T) {
	if !Pinned(AccessDenied) {
		t.Fatal("AccessDenied must be pinned")
	}
	for _, k := range []Kind{NotFound, FieldNotValid, DataError, Unknown} {
		if Pinned(k) {
			t.Fatalf("Pinned(%q) = true, want false", k)
		}
	}
}

func TestFileWireValue(t *testing.T) {
	// The constant name and the wire discriminator differ on purpose.
	if File != "FileError" {
		t.Fatalf("File wire value = %q, want %q", File, "FileError")
	}
}

func TestRegexAndLengthAreConsistent(t *testing.T) {
	if MinLength != 3 {
		t.Fatalf("MinLength changed, update tests")
	}
	if MaxLength != 64 {
		t.Fatalf("MaxLength changed, update tests")
	}

	long := "A"
	for len(long) < MaxLength {
		long += "a"
	}
	if len(long) != MaxLength {
		t.Fatalf("constructed long kind has len=%d, want %d", len(long), MaxLength)
	}
	if _, err := Parse(long); err != nil {
		t.Fatalf("expected %q to be valid (len=%d): %v", long, len(long), err)
	}

	longer := long + "a"
	if _, err := Parse(longer); err == nil {
		t.Fatalf("expected %q (len=%d) to be invalid", longer, len(longer))
	}
}
