package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      string
		cookie      string
		accept      string
		wantTag     language.Tag
		wantPersist bool
	}{
		{name: "default", target: "/", wantTag: language.AmericanEnglish},
		{name: "query wins", target: "/?lang=pt-BR", cookie: "en-US", accept: "en-US", wantTag: language.BrazilianPortuguese, wantPersist: true},
		{name: "cookie beats header", target: "/", cookie: "pt-BR", accept: "en-US", wantTag: language.BrazilianPortuguese},
		{name: "accept language", target: "/", accept: "pt-BR,pt;q=0.9", wantTag: language.BrazilianPortuguese},
		{name: "unsupported query falls through", target: "/?lang=xx-invalid", cookie: "pt-BR", wantTag: language.BrazilianPortuguese},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			tag, persist := ResolveTag(req)
			if tag != tc.wantTag {
				t.Fatalf("tag = %v, want %v", tag, tc.wantTag)
			}
			if persist != tc.wantPersist {
				t.Fatalf("persist = %v, want %v", persist, tc.wantPersist)
			}
		})
	}
}

func TestResolveTagNilRequest(t *testing.T) {
	t.Parallel()

	tag, persist := ResolveTag(nil)
	if tag != language.AmericanEnglish || persist {
		t.Fatalf("ResolveTag(nil) = %v, %v", tag, persist)
	}
}

func TestResolveLocalizerPersistsQueryChoice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil)
	_, lang := ResolveLocalizer(rr, req)
	if lang != "pt-BR" {
		t.Fatalf("lang = %q, want %q", lang, "pt-BR")
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName || cookies[0].Value != "pt-BR" {
		t.Fatalf("cookies = %v", cookies)
	}
}

func TestResolveLocalizerLeavesCookieAloneWithoutQuery(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "pt-BR")
	ResolveLocalizer(rr, req)
	if cookies := rr.Result().Cookies(); len(cookies) != 0 {
		t.Fatalf("cookies = %v, want none", cookies)
	}
}

func TestLanguageOptions(t *testing.T) {
	t.Parallel()

	options := LanguageOptions(Printer(language.AmericanEnglish), "/", "", "pt-BR")
	if len(options) != 2 {
		t.Fatalf("len(options) = %d, want 2", len(options))
	}
	if options[0].Tag != "en-US" || options[0].Active {
		t.Fatalf("options[0] = %+v", options[0])
	}
	if !options[1].Active || options[1].URL != "/?lang=pt-BR" {
		t.Fatalf("options[1] = %+v", options[1])
	}
	if options[0].Label == "" || options[0].Label == "core.lang.en-US" {
		t.Fatalf("options[0].Label = %q, want translated label", options[0].Label)
	}
}

func TestLanguageURLKeepsOtherParams(t *testing.T) {
	t.Parallel()

	if got := LanguageURL("", "a=1&lang=en-US", "pt-BR"); got != "/?a=1&lang=pt-BR" {
		t.Fatalf("LanguageURL() = %q", got)
	}
}
