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
	"fmt"

	"github.com/em-cultuur/error-types/apis"
	"github.com/em-cultuur/error-types/kind"
)

// ErrIndexOutOfRange is returned by DataError.Record when the requested
// position does not exist.
var ErrIndexOutOfRange = errors.New("errtypes: record index out of range")

// DataError is the composite member of the taxonomy: an ordered, append-only
// collection of elementary failure records, used when multiple independent
// validation failures must be reported together.
//
// Lifecycle: created when a multi-field validation pass begins, appended to
// as each field fails, converted once at the boundary, then discarded. The
// appending aggregate is owned by a single call path; it must not be shared
// across concurrent writers.
type DataError struct {
	// Status is the HTTP-style status of the produced representation.
	// Defaults to 401 — the data-validation class of this taxonomy.
	Status int

	// Message is the aggregate's own top-level message.
	Message string

	records []apis.Record
}

var (
	_ apis.ViewProvider  = (*DataError)(nil)
	_ apis.KindedError   = (*DataError)(nil)
	_ apis.RecordedError = (*DataError)(nil)
)

// NewDataError constructs an aggregate, optionally seeded.
//
// The seed is interpreted by shape:
//
//   - apis.Record (or *apis.Record): the record list starts with it;
//   - string: it becomes the aggregate's own top-level message and the
//     record list starts empty;
//   - nil or anything else: empty aggregate with the default message.
//
// Like the elementary constructors this is deliberately permissive — an
// unexpected seed degrades, it never fails.
func NewDataError(seed any) *DataError {
	e := &DataError{
		Status:  kind.DefaultStatus(kind.DataError),
		Message: "data error",
	}
	switch s := seed.(type) {
	case apis.Record:
		e.records = append(e.records, s)
	case *apis.Record:
		if s != nil {
			e.records = append(e.records, *s)
		}
	case string:
		if s != "" {
			e.Message = s
		}
	}
	return e
}

// Add appends one failure record. It never fails; bounding the growth of the
// aggregate is the caller's responsibility.
func (e *DataError) Add(kindName, fieldName, message string, data any) {
	e.records = append(e.records, apis.Record{
		Kind:      kindName,
		FieldName: fieldName,
		Message:   message,
		Data:      data,
	})
}

// Len returns the number of collected records.
func (e *DataError) Len() int { return len(e.records) }

// Record returns the record at position i, or ErrIndexOutOfRange when the
// position does not exist.
func (e *DataError) Record(i int) (apis.Record, error) {
	if i < 0 || i >= len(e.records) {
		return apis.Record{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(e.records))
	}
	return e.records[i], nil
}

// Error implements the built-in error interface.
func (e *DataError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s (%d records)", kind.DataError, e.Message, len(e.records))
}

// ErrorKind returns the composite discriminator. Implements apis.KindedError.
func (e *DataError) ErrorKind() string { return string(kind.DataError) }

// ErrorRecords returns a copy of the ordered record sequence.
// Implements apis.RecordedError.
func (e *DataError) ErrorRecords() []apis.Record {
	if len(e.records) == 0 {
		return nil
	}
	out := make([]apis.Record, len(e.records))
	copy(out, e.records)
	return out
}

// ErrorView produces the external representation of the aggregate:
// status 401 (unless overridden via the Status field), kind "DataError",
// and the full ordered record sequence as details. The slice is copied, so
// the view is detached from the aggregate. Implements apis.ViewProvider.
func (e *DataError) ErrorView() apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	st := e.Status
	if st == 0 {
		st = kind.DefaultStatus(kind.DataError)
	}
	v := apis.ErrorView{
		StatusCode: st,
		Kind:       string(kind.DataError),
		Message:    e.Message,
	}
	if recs := e.ErrorRecords(); recs != nil {
		v.Details = recs
	}
	return v
}
