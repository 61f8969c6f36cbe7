package weberror

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/louisbranch/aeterna-porta/internal/services/web/module"
)

func TestShouldRenderAppError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusNotFound, true},
		{http.StatusInternalServerError, true},
		{http.StatusBadGateway, true},
		{http.StatusBadRequest, false},
		{http.StatusOK, false},
	}
	for _, tc := range tests {
		if got := ShouldRenderAppError(tc.status); got != tc.want {
			t.Fatalf("ShouldRenderAppError(%d) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestWriteAppErrorRendersLocalizedNotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/missing?lang=pt-BR", nil)
	rr := httptest.NewRecorder()
	WriteAppError(rr, req, http.StatusNotFound, module.Dependencies{})

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Página não encontrada") {
		t.Fatalf("body missing localized title: %q", body)
	}
	if !strings.Contains(body, `lang="pt-BR"`) {
		t.Fatalf("body missing document language")
	}
}

func TestWriteAppErrorCoercesUnsupportedStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	WriteAppError(rr, req, http.StatusTeapot, module.Dependencies{})

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rr.Body.String(), "<html") {
		t.Fatalf("expected htmx fragment, got full document")
	}
	if !strings.Contains(rr.Body.String(), "Something went wrong") {
		t.Fatalf("body = %q", rr.Body.String())
	}
}
