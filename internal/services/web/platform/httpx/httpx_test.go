package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestChainAppliesMiddlewareInOrder(t *testing.T) {
	t.Parallel()

	called := ""
	mw1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "1"
			next.ServeHTTP(w, r)
		})
	}
	mw2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "2"
			next.ServeHTTP(w, r)
		})
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called += "h"
		w.WriteHeader(http.StatusNoContent)
	}), mw1, nil, mw2)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if called != "12h" {
		t.Fatalf("call order = %q, want %q", called, "12h")
	}
}

func TestMethodNotAllowedWritesAllowHeaderAndStatus(t *testing.T) {
	t.Parallel()

	h := MethodNotAllowed(http.MethodGet)
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != http.MethodGet {
		t.Fatalf("Allow = %q, want %q", got, http.MethodGet)
	}
}

func TestRejectWritesLeavesReadsToOtherHandlers(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" /thing", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	RejectWrites(mux, "/thing")
	RejectWrites(nil, "/thing")

	tests := []struct {
		method     string
		wantStatus int
		wantAllow  string
	}{
		{method: http.MethodGet, wantStatus: http.StatusNoContent},
		{method: http.MethodPost, wantStatus: http.StatusMethodNotAllowed, wantAllow: ReadOnlyAllow},
		{method: http.MethodPut, wantStatus: http.StatusMethodNotAllowed, wantAllow: ReadOnlyAllow},
		{method: http.MethodPatch, wantStatus: http.StatusMethodNotAllowed, wantAllow: ReadOnlyAllow},
		{method: http.MethodDelete, wantStatus: http.StatusMethodNotAllowed, wantAllow: ReadOnlyAllow},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(tc.method, "/thing", nil))
		if rr.Code != tc.wantStatus {
			t.Fatalf("%s status = %d, want %d", tc.method, rr.Code, tc.wantStatus)
		}
		if got := rr.Header().Get("Allow"); got != tc.wantAllow {
			t.Fatalf("%s Allow = %q, want %q", tc.method, got, tc.wantAllow)
		}
	}
}

func TestRequestIDAddsHeaderWhenMissing(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	got := rr.Header().Get("X-Request-ID")
	if got == "" || got == "-" {
		t.Fatalf("expected generated request id, got %q", got)
	}
	if seen != got {
		t.Fatalf("handler saw %q, response carried %q", seen, got)
	}
}

func TestRequestIDPreservesClientValue(t *testing.T) {
	t.Parallel()

	h := RequestID()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("X-Request-ID"); got != "req-123" {
		t.Fatalf("X-Request-ID = %q, want %q", got, "req-123")
	}
}

func TestRecoverPanicWritesInternalServerErrorAndLogs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.ErrorLevel)
	h := RecoverPanic(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/explode", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	entries := logs.FilterMessage("panic recovered").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d panic entries, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["path"]; got != "/explode" {
		t.Fatalf("logged path = %v", got)
	}
}

func TestWriteJSONSetsContentType(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WriteJSON(rr, http.StatusOK, map[string]int{"shots": 100000}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
	if !strings.Contains(rr.Body.String(), `"shots": 100000`) {
		t.Fatalf("body = %q", rr.Body.String())
	}
	if err := WriteJSON(nil, http.StatusOK, nil); err == nil {
		t.Fatal("expected nil writer error")
	}
}

func TestIsHTMXRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsHTMXRequest(req) {
		t.Fatal("plain request reported as htmx")
	}
	req.Header.Set("HX-Request", "true")
	if !IsHTMXRequest(req) {
		t.Fatal("htmx request not detected")
	}
	if IsHTMXRequest(nil) {
		t.Fatal("nil request reported as htmx")
	}
}
