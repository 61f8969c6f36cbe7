package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/aeterna-porta/internal/view"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/net/html"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	h, err := NewHandler(Config{})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func sectionIDs(t *testing.T, body string) []string {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	var ids []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "section" {
			for _, a := range n.Attr {
				if a.Key == "id" {
					ids = append(ids, a.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return ids
}

func TestRootServesSectionsInOrder(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	got := strings.Join(sectionIDs(t, rr.Body.String()), ",")
	want := strings.Join([]string{view.SectionHero, view.SectionStages, view.SectionDiscoveries, view.SectionStatus}, ",")
	if got != want {
		t.Fatalf("sections = %q, want %q", got, want)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing request id header")
	}
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		method      string
		target      string
		wantStatus  int
		contentType string
		allow       string
	}{
		{name: "head root", method: http.MethodHead, target: "/", wantStatus: http.StatusOK, contentType: "text/html; charset=utf-8"},
		{name: "manifest", method: http.MethodGet, target: "/api/manifest", wantStatus: http.StatusOK, contentType: "application/json; charset=utf-8"},
		{name: "health", method: http.MethodGet, target: "/up", wantStatus: http.StatusOK, contentType: "text/plain; charset=utf-8"},
		{name: "stylesheet", method: http.MethodGet, target: "/static/app.css", wantStatus: http.StatusOK, contentType: "text/css; charset=utf-8"},
		{name: "unknown page", method: http.MethodGet, target: "/nope", wantStatus: http.StatusNotFound, contentType: "text/html; charset=utf-8"},
		{name: "post root", method: http.MethodPost, target: "/", wantStatus: http.StatusMethodNotAllowed, allow: "GET, HEAD"},
		{name: "put root", method: http.MethodPut, target: "/", wantStatus: http.StatusMethodNotAllowed, allow: "GET, HEAD"},
		{name: "patch root", method: http.MethodPatch, target: "/", wantStatus: http.StatusMethodNotAllowed, allow: "GET, HEAD"},
		{name: "delete root", method: http.MethodDelete, target: "/", wantStatus: http.StatusMethodNotAllowed, allow: "GET, HEAD"},
		{name: "post manifest", method: http.MethodPost, target: "/api/manifest", wantStatus: http.StatusMethodNotAllowed, allow: "GET, HEAD"},
		{name: "put manifest", method: http.MethodPut, target: "/api/manifest", wantStatus: http.StatusMethodNotAllowed, allow: "GET, HEAD"},
		{name: "patch manifest", method: http.MethodPatch, target: "/api/manifest", wantStatus: http.StatusMethodNotAllowed, allow: "GET, HEAD"},
		{name: "delete manifest", method: http.MethodDelete, target: "/api/manifest", wantStatus: http.StatusMethodNotAllowed, allow: "GET, HEAD"},
		{name: "unknown api", method: http.MethodGet, target: "/api/nope", wantStatus: http.StatusNotFound, contentType: "application/json; charset=utf-8"},
	}
	h := newTestHandler(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.target, nil))
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if tc.contentType != "" && rr.Header().Get("Content-Type") != tc.contentType {
				t.Fatalf("content-type = %q, want %q", rr.Header().Get("Content-Type"), tc.contentType)
			}
			if tc.allow != "" && rr.Header().Get("Allow") != tc.allow {
				t.Fatalf("Allow = %q, want %q", rr.Header().Get("Allow"), tc.allow)
			}
		})
	}
}

func TestHandlerLogsRequests(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	h, err := NewHandler(Config{Logger: zap.New(core)})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/up", nil))
	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 || entries[0].ContextMap()["path"] != "/up" {
		t.Fatalf("request log entries = %v", entries)
	}
}

func TestNewServerRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{HTTPAddr: "  "}); err == nil {
		t.Fatal("expected address error")
	}
}

func TestListenAndServeValidatesInputs(t *testing.T) {
	t.Parallel()

	var nilServer *Server
	if err := nilServer.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected nil server error")
	}
	srv, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	var nilCtx context.Context
	if err := srv.ListenAndServe(nilCtx); err == nil {
		t.Fatal("expected nil context error")
	}
	nilServer.Close()
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	addr := freeAddr(t)
	srv, err := NewServer(context.Background(), Config{HTTPAddr: addr})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()

	waitForHealth(t, "http://"+addr+"/up")
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestListenAndServeReportsBindFailure(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	srv, err := NewServer(context.Background(), Config{HTTPAddr: ln.Addr().String()})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	err = srv.ListenAndServe(context.Background())
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected bind error, got %v", err)
	}
}

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	if err := ln.Close(); err != nil {
		t.Fatalf("close listener: %v", err)
	}
	return addr
}

func waitForHealth(t *testing.T, url string) {
	t.Helper()
	client := &http.Client{Timeout: time.Second}
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				client.CloseIdleConnections()
				return
			}
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("server at %s never became healthy", url)
}
