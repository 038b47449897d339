package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteList_IncludesCount(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteList(rec, 2, []string{"a", "b"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Status != StatusSuccess {
		t.Errorf("status = %q, want %q", resp.Status, StatusSuccess)
	}
	if resp.Count == nil || *resp.Count != 2 {
		t.Errorf("count = %v, want 2", resp.Count)
	}
}

func TestWriteList_ZeroCountStillPresent(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteList(rec, 0, []string{})

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, ok := raw["count"]; !ok {
		t.Error("count field should be present even when zero")
	}
}

func TestWriteError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteNotFound(rec, "Route not found")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Status != StatusError || resp.Message != "Route not found" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	if resp.Data != nil {
		t.Error("error envelope should not carry data")
	}
}

func TestWriteConflict_Maps400(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteConflict(rec, "Already in favorites")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
