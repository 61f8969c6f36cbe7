// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	platformotel "github.com/louisbranch/aeterna-porta/internal/platform/otel"
	module "github.com/louisbranch/aeterna-porta/internal/services/web/module"
	"github.com/louisbranch/aeterna-porta/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/aeterna-porta/internal/services/web/platform/i18n"
	"github.com/louisbranch/aeterna-porta/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/aeterna-porta/internal/services/web/templates"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SpanName names the span opened around every page render.
const SpanName = "page.render"

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Lang       string
	Loc        webtemplates.Localizer
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage renders page into a buffer and writes it only when the
// render succeeded, so callers can still fall back to an error page.
// HTMX requests receive the main fragment; others get the full document.
func WriteModulePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}
	htmx := httpx.IsHTMXRequest(r)

	ctx, span := platformotel.Tracer().Start(httpx.RequestContext(r), SpanName, trace.WithAttributes(
		attribute.String("page.lang", page.Lang),
		attribute.Bool("page.htmx", htmx),
		attribute.Int("http.status_code", statusCode),
	))
	defer span.End()

	var root templ.Component
	if htmx {
		root = webtemplates.MainContent()
	} else {
		path, query := "", ""
		if r != nil && r.URL != nil {
			path, query = r.URL.Path, r.URL.RawQuery
		}
		root = webtemplates.Layout(webtemplates.LayoutOptions{
			Title:         page.Title,
			Lang:          page.Lang,
			Loc:           page.Loc,
			StylesheetURL: StylesheetURL(deps.AssetBaseURL),
			Languages:     webi18n.LanguageOptions(page.Loc, path, query, page.Lang),
		})
	}

	var buf bytes.Buffer
	if err := root.Render(templ.WithChildren(ctx, fragment), &buf); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return fmt.Errorf("render page: %w", err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if r != nil && r.Method == http.MethodHead {
		return nil
	}
	_, _ = w.Write(buf.Bytes())
	return nil
}

// StylesheetURL resolves the page stylesheet against an optional asset host.
func StylesheetURL(assetBaseURL string) string {
	base := strings.TrimRight(strings.TrimSpace(assetBaseURL), "/")
	return base + routepath.Static("app.css")
}

// WriteDocument renders a standalone full document around fragment to w.
func WriteDocument(ctx context.Context, w io.Writer, layout webtemplates.LayoutOptions, fragment templ.Component) error {
	if w == nil {
		return fmt.Errorf("writer is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if fragment == nil {
		fragment = emptyComponent{}
	}
	ctx, span := platformotel.Tracer().Start(ctx, SpanName, trace.WithAttributes(
		attribute.String("page.lang", layout.Lang),
		attribute.Bool("page.standalone", true),
	))
	defer span.End()

	if err := webtemplates.Layout(layout).Render(templ.WithChildren(ctx, fragment), w); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}
