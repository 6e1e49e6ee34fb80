package http

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	var sawContextLogger bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawContextLogger = LoggerFromContext(r.Context()) != nil
		w.WriteHeader(http.StatusNoContent)
	})

	handler := RequestLogger(logger)(inner)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected handler to run, got %d", rec.Code)
	}
	if !sawContextLogger {
		t.Fatal("expected a request scoped logger in the context")
	}

	output := buf.String()
	if !strings.Contains(output, "request started") || !strings.Contains(output, "request completed") {
		t.Fatalf("expected request lifecycle logs, got %q", output)
	}
	if !strings.Contains(output, `"path":"/api/rooms"`) {
		t.Fatalf("expected the request path in logs, got %q", output)
	}
}
