package landing

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/louisbranch/aeterna-porta/internal/services/web/module"
)

func mount(t *testing.T) http.Handler {
	t.Helper()
	m, err := New().Mount(module.Dependencies{})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if m.Prefix != "/" {
		t.Fatalf("prefix = %q, want %q", m.Prefix, "/")
	}
	return m.Handler
}

func TestRootRendersFullDocument(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mount(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{"<!DOCTYPE html>", "<title>AETERNA-PORTA v2.0</title>", "TFD Preparation", "Five-Stage Protocol"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
}

func TestRootHonorsLanguageQuery(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mount(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil))
	body := rr.Body.String()
	if !strings.Contains(body, `lang="pt-BR"`) || !strings.Contains(body, "Protocolo em Cinco Estágios") {
		t.Fatalf("expected pt-BR chrome")
	}
	if !strings.Contains(body, "TFD Preparation") {
		t.Fatalf("card content should stay as authored")
	}
	if cookies := rr.Result().Cookies(); len(cookies) != 1 || cookies[0].Value != "pt-BR" {
		t.Fatalf("cookies = %v", cookies)
	}
}

func TestRootHTMXReturnsFragment(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	mount(t).ServeHTTP(rr, req)
	body := rr.Body.String()
	if !strings.HasPrefix(body, "<main") || strings.Contains(body, "<html") {
		t.Fatalf("expected main fragment, got %.80q", body)
	}
}

func TestRootRejectsWrites(t *testing.T) {
	t.Parallel()

	h := mount(t)
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(method, "/", nil))
			if rr.Code != http.StatusMethodNotAllowed {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
			}
			if got := rr.Header().Get("Allow"); got != "GET, HEAD" {
				t.Fatalf("Allow = %q, want %q", got, "GET, HEAD")
			}
		})
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mount(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("health = %d %q", rr.Code, rr.Body.String())
	}
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mount(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing/page", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), "Page not found") {
		t.Fatalf("body missing not-found copy")
	}
}
