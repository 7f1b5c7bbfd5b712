package mapper

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/em-cultuur/error-types/apis"
	"github.com/em-cultuur/error-types/kind"
	"google.golang.org/grpc/codes"
)

func TestDefaults_HTTP_GRPC(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	// Spot-check a few canonical defaults from defaults.go
	check := func(k kind.Kind, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(k, 0)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%q) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				k, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(kind.NotFound, 404, codes.NotFound)
	check(kind.FieldNotValid, 409, codes.Aborted)
	check(kind.Duplicate, 500, codes.AlreadyExists)
	check(kind.DataError, 401, codes.InvalidArgument)
	check(kind.AccessDenied, 403, codes.PermissionDenied)
	check(kind.NotImplemented, 500, codes.Unimplemented)
}

func TestPriority_OverrideOverInstanceOverDefault_HTTP(t *testing.T) {
	m, err := New(
		WithHTTPDefault(kind.NotFound, 404),  // default
		WithHTTPOverride(kind.NotFound, 418), // override
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Override beats both the instance status and the default.
	if got := m.HTTPStatus(kind.NotFound, 410); got != 418 {
		t.Fatalf("override must win; got %d, want 418", got)
	}
}

func TestPriority_InstanceOverDefault_HTTP(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(kind.NotFound, 410); got != 410 {
		t.Fatalf("instance status must beat the default; got %d, want 410", got)
	}
	if got := m.HTTPStatus(kind.NotFound, 0); got != 404 {
		t.Fatalf("zero instance must fall through to the default; got %d, want 404", got)
	}
}

func TestPriority_OverrideOverDefault_GRPC(t *testing.T) {
	m, err := New(
		WithGRPCDefault(kind.Duplicate, int(codes.AlreadyExists)),
		WithGRPCOverride(kind.Duplicate, int(codes.Aborted)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCStatus(kind.Duplicate); got != codes.Aborted {
		t.Fatalf("override must win; got %v, want %v", got, codes.Aborted)
	}
}

func TestPinned_AccessDeniedShipsAsOverride(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Even a non-zero instance status must not move AccessDenied off 403.
	if got := m.HTTPStatus(kind.AccessDenied, 500); got != 403 {
		t.Fatalf("AccessDenied must stay pinned at 403; got %d", got)
	}
}

func TestFallback_UnmappedKind(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(kind.Kind("payment_declined"), 0)
	if st.HTTP != 500 {
		t.Fatalf("HTTP fallback = %d, want 500", st.HTTP)
	}
	if st.GRPC != codes.Internal {
		t.Fatalf("gRPC fallback = %v, want %v", st.GRPC, codes.Internal)
	}
}

func TestFallback_Replaced(t *testing.T) {
	m, err := New(
		WithHTTPFallback(599),
		WithGRPCFallback(int(codes.Unknown)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(kind.Kind("payment_declined"), 0)
	if st.HTTP != 599 || st.GRPC != codes.Unknown {
		t.Fatalf("replaced fallbacks not used: %+v", st)
	}
}

func TestNew_InvalidKindInOption(t *testing.T) {
	_, err := New(WithHTTPDefault(kind.Kind("x"), 400))
	if err == nil {
		t.Fatal("New must reject invalid kinds used in options")
	}
	if !errors.Is(err, kind.ErrKindInvalid) {
		t.Fatalf("error = %v, want kind.ErrKindInvalid", err)
	}
}

func TestExplain_Sources(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	exp := m.Explain(kind.AccessDenied, 500)
	if !strings.Contains(exp, "source=override") {
		t.Fatalf("Explain must name the override tier:\n%s", exp)
	}
	if !strings.Contains(exp, "http:") || !strings.Contains(exp, "grpc:") {
		t.Fatalf("Explain must render both transports:\n%s", exp)
	}

	if exp := m.Explain(kind.NotFound, 410); !strings.Contains(exp, "source=instance") {
		t.Fatalf("Explain must name the instance tier:\n%s", exp)
	}
	if exp := m.Explain(kind.NotFound, 0); !strings.Contains(exp, "source=default") {
		t.Fatalf("Explain must name the default tier:\n%s", exp)
	}
	if exp := m.Explain(kind.Kind("payment_declined"), 0); !strings.Contains(exp, "source=fallback") {
		t.Fatalf("Explain must name the fallback tier:\n%s", exp)
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(
		WithHTTPOverride(kind.Duplicate, 409),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status(kind.Duplicate, 0)
				_ = m.Status(kind.AccessDenied, 500)
				_ = m.Status(kind.Kind("payment_declined"), 0)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_Default(b *testing.B) {
	m, _ := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(kind.FieldNotValid, 0)
	}
}

func BenchmarkMapperStatus_Instance(b *testing.B) {
	m, _ := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(kind.NotFound, 410)
	}
}

func BenchmarkMapperStatus_Override(b *testing.B) {
	m, _ := New(
		WithHTTPOverride(kind.Duplicate, 409),
		WithGRPCOverride(kind.Duplicate, int(codes.Aborted)),
	)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(kind.Duplicate, 0)
	}
}

func BenchmarkMapperStatus_Fallback(b *testing.B) {
	m, _ := New()
	k := kind.Kind("payment_declined")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(k, 0)
	}
}

// Ensure mapper implements apis.Mapper
func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}
