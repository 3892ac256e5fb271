package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name           string
		existingID     string
		wantPassedThru bool
	}{
		{
			name:           "generates new ID when none provided",
			existingID:     "",
			wantPassedThru: false,
		},
		{
			name:           "uses existing ID from header",
			existingID:     "existing-request-id",
			wantPassedThru: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var capturedID string
			handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				capturedID = GetRequestID(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/friday", nil)
			if tt.existingID != "" {
				req.Header.Set(RequestIDHeader, tt.existingID)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			respID := rec.Header().Get(RequestIDHeader)
			if respID == "" {
				t.Error("expected X-Request-ID in response header")
			}
			if capturedID != respID {
				t.Errorf("context ID %q does not match header %q", capturedID, respID)
			}
			if tt.wantPassedThru && respID != tt.existingID {
				t.Errorf("expected ID %q, got %q", tt.existingID, respID)
			}
			if !tt.wantPassedThru && len(respID) != 36 {
				t.Errorf("expected generated UUID, got %q", respID)
			}
		})
	}
}

func assertCORS(t *testing.T, h http.Header) {
	t.Helper()
	want := map[string]string{
		"Access-Control-Allow-Credentials": "true",
		"Access-Control-Allow-Origin":      "*",
		"Access-Control-Allow-Methods":     "GET, POST, OPTIONS",
		"Access-Control-Allow-Headers":     "Content-Type",
	}
	for k, v := range want {
		if got := h.Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
}

func TestCORS(t *testing.T) {
	nextCalled := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("sets CORS headers on regular request", func(t *testing.T) {
		nextCalled = false
		req := httptest.NewRequest(http.MethodDelete, "/api/friday", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assertCORS(t, rec.Header())
		if !nextCalled {
			t.Error("expected next handler to run")
		}
		if rec.Code != http.StatusTeapot {
			t.Errorf("expected status %d, got %d", http.StatusTeapot, rec.Code)
		}
	})

	t.Run("handles OPTIONS preflight request", func(t *testing.T) {
		nextCalled = false
		req := httptest.NewRequest(http.MethodOptions, "/api/friday", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assertCORS(t, rec.Header())
		if rec.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("expected empty body, got %q", rec.Body.String())
		}
		if nextCalled {
			t.Error("preflight must not reach the handler")
		}
	})
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := RequestID(RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	})))

	req := httptest.NewRequest(http.MethodPut, "/api/friday", nil)
	req.Header.Set(RequestIDHeader, "rid-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	line := buf.String()
	for _, want := range []string{"level=WARN", "method=PUT", "path=/api/friday", "status=405", "bytes=0", "request_id=rid-1"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line missing %q: %s", want, line)
		}
	}
}

func TestRequestLogger_LevelAndBytes(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLevel string
		wantBytes string
	}{
		{"success", http.StatusOK, `{"success":true}`, "level=INFO", "bytes=16"},
		{"implicit ok", 0, "hello", "level=INFO", "bytes=5"},
		{"client error", http.StatusBadRequest, `{}`, "level=WARN", "bytes=2"},
		{"server error", http.StatusInternalServerError, `{"success":false}`, "level=ERROR", "bytes=17"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				_, _ = w.Write([]byte(tt.body))
			}))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/friday", nil))

			line := buf.String()
			if !strings.Contains(line, tt.wantLevel) {
				t.Errorf("log line missing %q: %s", tt.wantLevel, line)
			}
			if !strings.Contains(line, tt.wantBytes) {
				t.Errorf("log line missing %q: %s", tt.wantBytes, line)
			}
		})
	}
}

func TestGetRequestID_NoContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	id := GetRequestID(req.Context())
	if id != "" {
		t.Errorf("expected empty ID, got %q", id)
	}
}
