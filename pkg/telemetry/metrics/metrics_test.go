package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"vitae-hq/vitae/pkg/report"
)

func invalidResult() *report.Result {
	return &report.Result{
		Valid: false,
		Messages: []report.Message{
			{Level: report.LevelError, FieldPath: "", Message: "Required field 'email' is missing"},
			{Level: report.LevelError, FieldPath: "name", Message: "Expected string, got integer"},
			{Level: report.LevelWarning, FieldPath: "emial", Message: "Unknown field 'emial'"},
		},
		UnknownFields: []string{"emial"},
	}
}

func TestNewValidation(t *testing.T) {
	v := NewValidation()

	if v == nil {
		t.Fatal("NewValidation() returned nil")
	}
	if v.Registry() == nil {
		t.Error("Registry() returned nil")
	}
}

func TestObserve(t *testing.T) {
	v := NewValidation()

	v.Observe(invalidResult(), 10*time.Millisecond)
	v.Observe(&report.Result{Valid: true}, time.Millisecond)

	if got := testutil.ToFloat64(v.validationsTotal.WithLabelValues("invalid")); got != 1 {
		t.Errorf("invalid runs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(v.validationsTotal.WithLabelValues("valid")); got != 1 {
		t.Errorf("valid runs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(v.errorsTotal); got != 2 {
		t.Errorf("errors = %v, want 2", got)
	}
	if got := testutil.ToFloat64(v.warningsTotal); got != 1 {
		t.Errorf("warnings = %v, want 1", got)
	}
	if got := testutil.ToFloat64(v.unknownTotal); got != 1 {
		t.Errorf("unknown fields = %v, want 1", got)
	}
}

func TestObserveNilResult(t *testing.T) {
	v := NewValidation()

	v.Observe(nil, time.Millisecond)

	if got := testutil.ToFloat64(v.validationsTotal.WithLabelValues("valid")); got != 0 {
		t.Errorf("nil result should not be counted, got %v", got)
	}
}

func TestDedicatedRegistries(t *testing.T) {
	// Two instances must not collide on metric registration
	a := NewValidation()
	b := NewValidation()

	a.Observe(invalidResult(), time.Millisecond)

	if got := testutil.ToFloat64(b.errorsTotal); got != 0 {
		t.Errorf("registries are shared: errors = %v, want 0", got)
	}
}

func TestHandler(t *testing.T) {
	v := NewValidation()
	v.Observe(invalidResult(), 10*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	v.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	for _, name := range []string{
		"vitae_validations_total",
		"vitae_validation_errors_total",
		"vitae_validation_duration_seconds",
	} {
		if !strings.Contains(body, name) {
			t.Errorf("exposition output missing %s", name)
		}
	}
}
