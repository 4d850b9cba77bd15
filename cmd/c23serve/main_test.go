package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandleParseReportsDiagnostics(t *testing.T) {
	body, _ := json.Marshal(request{Filename: "t.c", Source: "int main(void) { return }"})
	req := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handleParse(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.HasErrors {
		t.Fatalf("expected HasErrors for a missing return expression, got %+v", resp)
	}
	if len(resp.Diagnostics) == 0 {
		t.Fatal("expected at least one diagnostic")
	}
}

func TestHandleParseCleanSourceHasNoErrors(t *testing.T) {
	body, _ := json.Marshal(request{Filename: "t.c", Source: "int add(int a, int b) { return a + b; }", Print: true})
	req := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handleParse(rec, req)

	var resp response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.HasErrors {
		t.Fatalf("unexpected errors: %+v", resp.Diagnostics)
	}
	if resp.Printed == "" {
		t.Fatal("expected Printed to be populated when Print is requested")
	}
}

func TestHandleParseRejectsNonPost(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/parse", nil)
	rec := httptest.NewRecorder()

	handleParse(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
