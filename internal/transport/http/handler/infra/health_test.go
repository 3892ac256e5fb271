package infra

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mandalnilabja/friday/internal/version"
)

func TestHealthCheck(t *testing.T) {
	h := New(time.Now().Add(-90 * time.Second))

	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "active" || body["app"] != "friday" {
		t.Errorf("unexpected body %v", body)
	}
	if up, _ := body["uptime_seconds"].(float64); up < 90 {
		t.Errorf("uptime_seconds = %v, want >= 90", body["uptime_seconds"])
	}
}

func TestRootStatus(t *testing.T) {
	h := New(time.Now())

	rec := httptest.NewRecorder()
	h.RootStatus(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["version"] != version.Version {
		t.Errorf("version = %v, want %s", body["version"], version.Version)
	}
	if body["api"] != "/api/friday" {
		t.Errorf("api = %v", body["api"])
	}
}
