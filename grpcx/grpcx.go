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

// Package grpcx maps converted errors onto gRPC statuses. Like httpx it is a
// thin adapter over the conversion protocol and the status mapper; the only
// gRPC-specific work is attaching structured details to the status.
package grpcx

import (
	"context"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/em-cultuur/error-types/adapter"
	"github.com/em-cultuur/error-types/apis"
	"github.com/em-cultuur/error-types/kind"
)

// Domain identifies this error taxonomy in errdetails.ErrorInfo payloads.
const Domain = "error-types"

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that converts
// every error returned by a handler into a gRPC status with structured
// details.
//
// Unlike interceptors that only translate their own error type, this one
// runs the full conversion protocol: domain variants convert faithfully,
// recognized foreign errors are classified, and everything else becomes a
// generic internal status (with the diagnostic emission the converter
// performs). No error passes through unconverted — conversion happens
// exactly once, here.
func UnaryServerInterceptor(conv *adapter.Converter, m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, Status(conv, m, err).Err()
	}
}

// Status converts err and builds the gRPC status for it: code from the
// mapper, message from the view, details attached best-effort.
//
// Attached details:
//
//   - errdetails.ErrorInfo — the kind, the domain, and the resolved
//     transport statuses as metadata;
//   - errdetails.BadRequest — one field violation per aggregate record, or
//     one for an elementary fieldName detail;
//   - structpb.Struct — the full external representation, so clients that
//     know this taxonomy can recover the exact view (see ExtractView).
//
// If any detail cannot be attached the bare status is returned instead; the
// boundary never fails.
func Status(conv *adapter.Converter, m apis.Mapper, err error) *gstatus.Status {
	v := conv.Convert(err)
	k := kind.Kind(v.Kind)

	st := m.Status(k, v.StatusCode)
	v.StatusCode = st.HTTP

	base := gstatus.New(st.GRPC, v.Message)

	desc := adapter.Describe(v, st)
	details := []protoadapt.MessageV1{
		&errdetails.ErrorInfo{
			Reason: v.Kind,
			Domain: Domain,
			Metadata: map[string]string{
				"httpStatus": strconv.Itoa(desc.HTTPStatus),
				"grpcCode":   strconv.Itoa(desc.GRPCCode),
			},
		},
	}
	if br := badRequest(v); br != nil {
		details = append(details, br)
	}
	if s, err := structpb.NewStruct(viewMap(v)); err == nil {
		details = append(details, s)
	}

	if with, err := base.WithDetails(details...); err == nil {
		return with
	}
	return base
}

// ExtractView pulls the external representation out of a gRPC error, if the
// server attached one. Useful in tests and client code.
func ExtractView(err error) (apis.ErrorView, bool) {
	if err == nil {
		return apis.ErrorView{}, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return apis.ErrorView{}, false
	}
	for _, d := range st.Details() {
		s, ok := d.(*structpb.Struct)
		if !ok {
			continue
		}
		m := s.AsMap()
		v := apis.ErrorView{}
		if f, ok := m["statusCode"].(float64); ok {
			v.StatusCode = int(f)
		}
		if s, ok := m["kind"].(string); ok {
			v.Kind = s
		}
		if s, ok := m["message"].(string); ok {
			v.Message = s
		}
		if d, ok := m["details"]; ok {
			v.Details = d
		}
		return v, true
	}
	return apis.ErrorView{}, false
}

// badRequest renders the view's field-level information as an
// errdetails.BadRequest, or nil when the view carries none.
func badRequest(v apis.ErrorView) *errdetails.BadRequest {
	var violations []*errdetails.BadRequest_FieldViolation

	switch d := v.Details.(type) {
	case []apis.Record:
		for _, r := range d {
			violations = append(violations, &errdetails.BadRequest_FieldViolation{
				Field:       r.FieldName,
				Description: r.Message,
			})
		}
	case map[string]any:
		field, _ := d["fieldName"].(string)
		if field == "" {
			return nil
		}
		desc, _ := d["message"].(string)
		if desc == "" {
			desc = v.Message
		}
		violations = append(violations, &errdetails.BadRequest_FieldViolation{
			Field:       field,
			Description: desc,
		})
	}

	if len(violations) == 0 {
		return nil
	}
	return &errdetails.BadRequest{FieldViolations: violations}
}

// viewMap flattens the view into structpb-compatible values. Record slices
// become plain maps; detail payloads that structpb cannot represent are
// dropped rather than failing the attachment.
func viewMap(v apis.ErrorView) map[string]any {
	m := map[string]any{
		"statusCode": v.StatusCode,
		"kind":       v.Kind,
		"message":    v.Message,
	}
	switch d := v.Details.(type) {
	case []apis.Record:
		records := make([]any, 0, len(d))
		for _, r := range d {
			rec := map[string]any{}
			if r.Kind != "" {
				rec["kind"] = r.Kind
			}
			if r.FieldName != "" {
				rec["fieldName"] = r.FieldName
			}
			if r.Message != "" {
				rec["message"] = r.Message
			}
			if r.Data != nil {
				rec["data"] = r.Data
			}
			records = append(records, rec)
		}
		m["details"] = records
	case map[string]any:
		m["details"] = d
	}
	return m
}
