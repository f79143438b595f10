// Package i18n resolves the display language for a request and exposes the
// message keys used by the dashboard templates.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "sympohub_lang"
)

var supportedTags = []language.Tag{
	language.Korean,
	language.English,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Default returns the default language tag.
func Default() language.Tag {
	return language.Korean
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(Match(tag))
}

// Parse maps a configured locale string ("ko", "en-US") onto a supported tag.
// Unknown values fall back to the default language.
func Parse(value string) language.Tag {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default()
	}
	tag, err := language.Parse(value)
	if err != nil {
		return Default()
	}
	return Match(tag)
}

// Match returns the closest supported tag.
func Match(tag language.Tag) language.Tag {
	_, idx, confidence := tagMatcher.Match(tag)
	if confidence == language.No {
		return Default()
	}
	return supportedTags[idx]
}

// ResolveTag determines the best language tag for the request, preferring the
// lang query parameter, then the preference cookie, then Accept-Language.
// The bool indicates whether the lang query param should be persisted.
func ResolveTag(r *http.Request, fallback language.Tag) (language.Tag, bool) {
	if r == nil {
		return fallback, false
	}

	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, err := language.Parse(langValue); err == nil {
			return Match(tag), true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil && cookie.Value != "" {
		if tag, err := language.Parse(cookie.Value); err == nil {
			return Match(tag), false
		}
	}

	if accept := r.Header.Get("Accept-Language"); accept != "" {
		tags, _, err := language.ParseAcceptLanguage(accept)
		if err == nil && len(tags) > 0 {
			_, idx, confidence := tagMatcher.Match(tags...)
			if confidence != language.No {
				return supportedTags[idx], false
			}
		}
	}

	return fallback, false
}

// PersistLanguage stores the selected language in a cookie.
func PersistLanguage(w http.ResponseWriter, tag language.Tag) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
