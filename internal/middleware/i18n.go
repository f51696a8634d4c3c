package middleware

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

type localeContextKey struct{}

var LocaleKey = localeContextKey{}

// DefaultLocale is used when the request carries no usable preference.
const DefaultLocale = "pt"

var supportedLocales = map[string]language.Tag{
	"pt": language.Portuguese,
	"en": language.English,
}

// I18N negotiates the response locale from X-Locale, then Accept-Language,
// falling back to defaultLocale.
func I18N(defaultLocale string) func(http.Handler) http.Handler {
	matcher, tags := newLocaleMatcher(defaultLocale)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := detectLocale(r, matcher, tags)
			w.Header().Set("Content-Language", locale)
			ctx := context.WithValue(r.Context(), LocaleKey, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// newLocaleMatcher orders the supported tags so the default wins ties.
func newLocaleMatcher(defaultLocale string) (language.Matcher, []string) {
	def := strings.ToLower(strings.TrimSpace(defaultLocale))
	if _, ok := supportedLocales[def]; !ok {
		def = DefaultLocale
	}
	names := []string{def}
	for name := range supportedLocales {
		if name != def {
			names = append(names, name)
		}
	}
	tags := make([]language.Tag, len(names))
	for i, name := range names {
		tags[i] = supportedLocales[name]
	}
	return language.NewMatcher(tags), names
}

func detectLocale(r *http.Request, matcher language.Matcher, names []string) string {
	if v := strings.TrimSpace(r.Header.Get("X-Locale")); v != "" {
		if tag, err := language.Parse(v); err == nil {
			if _, idx, conf := matcher.Match(tag); conf != language.No {
				return names[idx]
			}
		}
	}
	if v := r.Header.Get("Accept-Language"); v != "" {
		if prefs, _, err := language.ParseAcceptLanguage(v); err == nil && len(prefs) > 0 {
			if _, idx, conf := matcher.Match(prefs...); conf != language.No {
				return names[idx]
			}
		}
	}
	return names[0]
}

// LocaleFromContext returns the negotiated locale, or DefaultLocale.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey).(string); ok && v != "" {
		return v
	}
	return DefaultLocale
}
