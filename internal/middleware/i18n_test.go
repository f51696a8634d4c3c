package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(r *http.Request)
		fallback string
		want     string
	}{
		{
			name: "x-locale overrides",
			setup: func(r *http.Request) {
				r.Header.Set("X-Locale", "en")
				r.Header.Set("Accept-Language", "pt-BR")
			},
			want: "en",
		},
		{
			name: "accept-language used",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "en-US,en;q=0.9")
			},
			want: "en",
		},
		{
			name: "accept-language pt-BR preference",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "pt-BR,en;q=0.8")
			},
			fallback: "en",
			want:     "pt",
		},
		{
			name: "unsupported language falls back",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "ja")
			},
			want: "pt",
		},
		{
			name: "invalid x-locale ignored",
			setup: func(r *http.Request) {
				r.Header.Set("X-Locale", "!!")
				r.Header.Set("Accept-Language", "en")
			},
			want: "en",
		},
		{
			name:     "configured fallback",
			fallback: "en",
			want:     "en",
		},
		{
			name:     "unknown configured fallback uses default",
			fallback: "xx",
			want:     "pt",
		},
		{
			name: "default to pt",
			want: "pt",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.setup != nil {
				tc.setup(req)
			}
			matcher, names := newLocaleMatcher(tc.fallback)
			got := detectLocale(req, matcher, names)
			if got != tc.want {
				t.Fatalf("detectLocale() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestI18NStoresLocale(t *testing.T) {
	var got string
	h := I18N("pt")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = LocaleFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "en-GB")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got != "en" {
		t.Fatalf("locale in context = %q, want %q", got, "en")
	}
	if rr.Header().Get("Content-Language") != "en" {
		t.Fatalf("Content-Language = %q", rr.Header().Get("Content-Language"))
	}
}

func TestLocaleFromContext(t *testing.T) {
	ctx := context.Background()
	if got := LocaleFromContext(ctx); got != "pt" {
		t.Fatalf("LocaleFromContext() default = %q, want %q", got, "pt")
	}
	ctx = context.WithValue(ctx, LocaleKey, "en")
	if got := LocaleFromContext(ctx); got != "en" {
		t.Fatalf("LocaleFromContext() with value = %q, want %q", got, "en")
	}
}
