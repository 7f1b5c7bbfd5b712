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
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Kind is the canonical, validated representation of an error discriminator.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with validated discriminators.
//
// IMPORTANT: Empty kinds ("") are NOT allowed. Every error MUST carry a
// non-empty kind, set at construction time.
type Kind string

// MinLength and MaxLength define the allowed length range for a canonical
// kind.
//
// We keep these values as separate constants so they can be referenced in
// validation errors, tests, or in other packages that want to mirror the same
// constraints.
const (
	// MinLength is the minimum length for a valid kind.
	// We require at least 3 characters so that ultra-short and ambiguous
	// identifiers like "E" or "X1" are not accepted.
	MinLength = 3

	// MaxLength is the maximum length for a valid kind.
	// 64 characters is enough for descriptive kinds like "DocumentNotFound"
	// while still preventing unbounded or accidental long strings.
	MaxLength = 64
)

const (
	// kindFmt is the canonical regular expression used to validate kinds.
	//
	// The pattern is intentionally kept in a separate constant so that:
	//   - it can be referenced from tests;
	//   - it is obvious that the regexp below is derived from this exact pattern;
	//   - it is easy to keep the regexp and the length constraints in sync.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[A-Za-z] - first character must be an ASCII letter;
	//	[A-Za-z0-9_]{2,63} - the remaining characters may be letters, digits
	//	                     or underscore; the quantifier {2,63} makes the
	//	                     total length 3..64 characters (1 + 2..63);
	//	$ - end of string;
	//
	// Unlike lowercase error-code schemes, kinds keep their original casing:
	// the documented taxonomy is CamelCase ("NotFound", "DataError") and the
	// wire format consumed by existing clients depends on it.
	//
	// IMPORTANT: the numeric range {2,63} is tied to MinLength / MaxLength above.
	// If you change MinLength / MaxLength, make sure to adjust this pattern as well.
	kindFmt = `^[A-Za-z][A-Za-z0-9_]{2,63}$`
)

var (
	// kindRe is the compiled regular expression used at runtime to validate
	// that a string is a canonical kind.
	//
	// We precompile it so that repeated validations (e.g. in mapper option
	// handling or in hot paths) do not pay the compilation cost over and over.
	//
	// Examples of valid kinds:
	//   - "NotFound"
	//   - "FieldNotValid"
	//   - "DataError"
	//   - "payment_declined" (caller-supplied, for the generic Typed variant)
	//
	// Examples of invalid kinds:
	//   - "NF"          (too short)
	//   - "1NotFound"   (does not start with a letter)
	//   - "not-found"   (dash is not allowed)
	kindRe = regexp.MustCompile(kindFmt)
)

var (
	// ErrKindInvalid is returned when a value cannot be parsed or validated
	// as a kind.
	//
	// Having a dedicated sentinel error makes it easier for callers and tests
	// to detect "this is about kind format" vs "this is some other error".
	ErrKindInvalid = errors.New("errtypes: invalid kind")
)

// Ensure Kind implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Empty is the zero-value kind. It is never valid on a constructed error;
// callers that accept caller-supplied kinds should call Validate.
var Empty Kind = ""

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Kind value.
func Parse(s string) (Kind, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Kind(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical kind form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - drops interior spaces ("Not Found" -> "NotFound").
//
// It deliberately does NOT change letter case: kinds are case-significant on
// the wire. It also does not guarantee that the result is valid — callers
// should still call Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	return s
}

// Validate checks whether the provided Kind is valid.
// The empty kind ("") is considered invalid.
func Validate(k Kind) error {
	return validate(string(k))
}

// String returns the canonical string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (k *Kind) UnmarshalText(text []byte) error {
	// We copy into a buffer to avoid changing the input slice.
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// validate is a helper that checks whether the provided string is a valid kind.
func validate(s string) error {
	if !kindRe.MatchString(s) {
		return ErrKindInvalid
	}
	return nil
}
