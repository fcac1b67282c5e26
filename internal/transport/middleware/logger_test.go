package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/heartmarshall/wordsnap-backend/pkg/ctxutil"
)

func TestLogger_Success(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"words":[]}`))
	})

	wrapped := Logger(logger)(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/ocr", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	logOutput := buf.String()
	for _, want := range []string{"http.request", "POST", "/api/ocr", `"status":200`, `"bytes":12`, "duration", "INFO"} {
		if !strings.Contains(logOutput, want) {
			t.Errorf("expected log to contain %q, got %q", want, logOutput)
		}
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{http.StatusInternalServerError, "ERROR"},
		{http.StatusTooManyRequests, "WARN"},
		{http.StatusNotFound, "INFO"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		})

		Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		if !strings.Contains(buf.String(), `"level":"`+tt.level+`"`) {
			t.Errorf("status %d: expected level %s, got %q", tt.status, tt.level, buf.String())
		}
	}
}

func TestLogger_IncludesIdentifiers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	wrapped := Logger(logger)(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/sets", nil)
	req = req.WithContext(ctxutil.WithRequestID(req.Context(), "test-request-id-123"))
	req.Header.Set(DeviceHeader, "6f1c2d3e-4a5b-4c6d-8e9f-0a1b2c3d4e5f")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	logOutput := buf.String()
	if !strings.Contains(logOutput, "test-request-id-123") {
		t.Errorf("expected log to contain request_id, got %q", logOutput)
	}
	if !strings.Contains(logOutput, `"device_id":"6f1c2d3e-4a5b-4c6d-8e9f-0a1b2c3d4e5f"`) {
		t.Errorf("expected log to contain device_id, got %q", logOutput)
	}
}

func TestLogger_OmitsInvalidDevice(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(DeviceHeader, "not-a-uuid")

	Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), req)

	if strings.Contains(buf.String(), "device_id") {
		t.Errorf("expected no device_id for an invalid header, got %q", buf.String())
	}
}
