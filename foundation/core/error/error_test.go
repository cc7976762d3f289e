package error

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
)

func TestNew(t *testing.T) {
	err := New("boom")

	if err.Error() != "boom" {
		t.Errorf("Error() = %q, want boom", err.Error())
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %s, want UNKNOWN", err.Code())
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %s, want medium", err.Severity())
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should be set")
	}
	if len(err.StackTrace()) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if fn := err.StackTrace()[0].Function; !strings.HasSuffix(fn, "TestNew") {
		t.Errorf("first frame = %s, want the caller of New", fn)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("limit %d exceeded", 10)
	if err.Error() != "limit 10 exceeded" {
		t.Errorf("Error() = %q", err.Error())
	}
	if fn := err.StackTrace()[0].Function; !strings.HasSuffix(fn, "TestNewf") {
		t.Errorf("first frame = %s, want the caller of Newf", fn)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	base := stderrors.New("disk full")
	err := Wrap(base, "saving history")
	if err.Error() != "saving history: disk full" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !stderrors.Is(err, base) {
		t.Error("errors.Is should find the cause")
	}
	if err.RootCause() != base {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), base)
	}

	inner := New("too long").WithCode(CodeInputTooLong).WithDetail("limit", 8).WithRequestID("r-1")
	outer := Wrapf(inner, "request %d", 7)
	if outer.Code() != CodeInputTooLong {
		t.Errorf("Code() = %s, want INPUT_TOO_LONG", outer.Code())
	}
	if outer.Details()["limit"] != 8 {
		t.Error("details should carry over")
	}
	if outer.RequestID() != "r-1" {
		t.Error("request id should carry over")
	}
	if outer.Error() != "request 7: too long" {
		t.Errorf("Error() = %q", outer.Error())
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidInput, SeverityLow},
		{CodeStorage, SeverityHigh},
		{CodeConfigError, SeverityCritical},
		{CodeInternal, SeverityMedium},
	}
	for _, tt := range tests {
		if got := New("x").WithCode(tt.code).Severity(); got != tt.want {
			t.Errorf("WithCode(%s) severity = %s, want %s", tt.code, got, tt.want)
		}
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if explicit.Severity() != SeverityCritical {
		t.Error("an explicit severity must not be overridden by WithCode")
	}
}

func TestCodeMappings(t *testing.T) {
	tests := []struct {
		code     Code
		http     int
		grpc     codes.Code
		category string
	}{
		{CodeInvalidInput, http.StatusBadRequest, codes.InvalidArgument, "conversion"},
		{CodeInputTooLong, http.StatusRequestEntityTooLarge, codes.ResourceExhausted, "conversion"},
		{CodeNotFound, http.StatusNotFound, codes.NotFound, "generic"},
		{CodeStorage, http.StatusServiceUnavailable, codes.Unavailable, "storage"},
		{CodeCanceled, 499, codes.Canceled, "service"},
		{CodeInternal, http.StatusInternalServerError, codes.Internal, "generic"},
		{CodeInvalidConfig, http.StatusInternalServerError, codes.FailedPrecondition, "configuration"},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if !tt.code.IsValid() {
				t.Error("IsValid() = false")
			}
			if got := tt.code.HTTPStatus(); got != tt.http {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.http)
			}
			if got := tt.code.GRPCCode(); got != tt.grpc {
				t.Errorf("GRPCCode() = %v, want %v", got, tt.grpc)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
		})
	}

	if Code("NOPE").IsValid() {
		t.Error("unknown code reported as valid")
	}
}

func TestHelpers(t *testing.T) {
	err := New("gone").WithCode(CodeNotFound)
	chained := fmt.Errorf("lookup: %w", err)

	if !HasCode(chained, CodeNotFound) {
		t.Error("HasCode should search the chain")
	}
	if HasCode(chained, CodeStorage) {
		t.Error("HasCode matched the wrong code")
	}
	if GetCode(chained) != CodeNotFound {
		t.Errorf("GetCode() = %s", GetCode(chained))
	}
	if GetSeverity(stderrors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity default should be medium")
	}
	if GetCode(nil) != CodeUnknown {
		t.Error("GetCode(nil) should be UNKNOWN")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(stderrors.New("locked"), "saving").
		WithCode(CodeStorage).
		WithOperation("history.save").
		WithDetail("table", "renders")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal() error = %v", jerr)
	}

	var got map[string]interface{}
	if jerr := json.Unmarshal(data, &got); jerr != nil {
		t.Fatalf("Unmarshal() error = %v", jerr)
	}
	if got["code"] != "STORAGE_ERROR" || got["severity"] != "high" {
		t.Errorf("code/severity = %v/%v", got["code"], got["severity"])
	}
	if got["operation"] != "history.save" || got["cause"] != "locked" {
		t.Errorf("operation/cause = %v/%v", got["operation"], got["cause"])
	}
}

func TestString(t *testing.T) {
	s := New("bad").WithCode(CodeInvalidInput).WithDetail("b", 2).WithDetail("a", 1).String()
	for _, want := range []string{"Error: bad", "Code: INVALID_INPUT", "Severity: low", "Details: {a=1, b=2}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestSeverity(t *testing.T) {
	if SeverityLow.ShouldAlert() || !SeverityHigh.ShouldAlert() {
		t.Error("ShouldAlert() thresholds are wrong")
	}
	if Severity(9).String() != "unknown" {
		t.Error("out of range severity should be unknown")
	}
}
