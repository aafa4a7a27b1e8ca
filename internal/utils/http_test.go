// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-property-analyzer/models"
)

func TestWriteJSON_UsageSummary(t *testing.T) {
	w := httptest.NewRecorder()
	usage := models.UsageSummary{
		Username:  "alice",
		Plan:      models.PlanFree,
		Used:      2,
		MaxUses:   5,
		Remaining: 3,
		NextReset: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	n, err := WriteJSON(w, usage, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n != w.Body.Len() {
		t.Errorf("expected %d bytes reported, got %d", w.Body.Len(), n)
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	var got models.UsageSummary
	if err = json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if !got.NextReset.Equal(usage.NextReset) {
		t.Errorf("expected next reset %v, got %v", usage.NextReset, got.NextReset)
	}
	got.NextReset = usage.NextReset
	if got != usage {
		t.Errorf("expected %+v, got %+v", usage, got)
	}
}

func TestWriteJSON_CreatedStatus(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.ServiceStatus{Available: true, Backend: "gemini"}, http.StatusCreated)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	if w.Body.String() != `{"available":true,"backend":"gemini"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_HistorySlices(t *testing.T) {
	tests := []struct {
		name string
		data []models.AnalysisRecord
		want string
	}{
		{name: "nil slice", data: nil, want: "null"},
		{name: "empty slice", data: []models.AnalysisRecord{}, want: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			if _, err := WriteJSON(w, tt.data, http.StatusOK); err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if w.Body.String() != tt.want {
				t.Errorf("expected body %s, got %s", tt.want, w.Body.String())
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		message string
		status  int
		want    string
	}{
		{"usage limit reached", http.StatusTooManyRequests, `{"error":"usage limit reached"}`},
		{"user not found", http.StatusNotFound, `{"error":"user not found"}`},
		{`quoted "name"`, http.StatusBadRequest, `{"error":"quoted \"name\""}`},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()

		WriteError(w, tt.message, tt.status)

		if w.Code != tt.status {
			t.Errorf("expected status %d, got %d", tt.status, w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
		}
		if w.Body.String() != tt.want {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	}
}
