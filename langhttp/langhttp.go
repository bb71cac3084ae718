// Package langhttp resolves the language to serve an HTTP request,
// combining explicit visitor choices with Accept-Language negotiation.
package langhttp

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/acceptlang"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "lang"
)

type contextKey struct{}

// Resolve determines the tag to serve the request: the lang query
// parameter, then the language cookie, then Accept-Language
// negotiation, then the fallback supplied by the caller. The bool
// reports whether the query parameter selection should be persisted as
// a cookie.
func Resolve(r *http.Request, supported []string, fallback string) (string, bool) {
	if r == nil {
		return fallback, false
	}

	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if tag, ok := pick(value, supported); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := pick(cookie.Value, supported); ok {
			return tag, false
		}
	}

	if header := r.Header.Get("Accept-Language"); header != "" {
		if tag, ok := acceptlang.Parse(header).Match(supported...); ok {
			return tag, false
		}
	}

	return fallback, false
}

// pick returns the supported tag case-insensitively equal to value.
func pick(value string, supported []string) (string, bool) {
	for _, tag := range supported {
		if strings.EqualFold(tag, value) {
			return tag, true
		}
	}
	return "", false
}

// Middleware resolves the request language, stores it on the request
// context for FromContext, and advertises it via Content-Language.
// Query-parameter selections are persisted with SetLanguageCookie.
func Middleware(supported []string, fallback string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag, persist := Resolve(r, supported, fallback)
			if persist {
				SetLanguageCookie(w, tag)
			}
			if tag != "" {
				w.Header().Set("Content-Language", tag)
			}
			ctx := context.WithValue(r.Context(), contextKey{}, tag)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext returns the language stored by Middleware.
func FromContext(ctx context.Context) (string, bool) {
	tag, ok := ctx.Value(contextKey{}).(string)
	return tag, ok && tag != ""
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
