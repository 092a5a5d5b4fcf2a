// Package i18n resolves uz/ru/en message and category translations.
// Uzbek is the base language: every key is guaranteed to exist there,
// and lookups for other languages fall back to it.
package i18n

import (
	"net/http"
	"strings"
)

const DefaultLanguage = "uz"

var supported = []string{"uz", "ru", "en"}

// Translate returns the message for key in lang, falling back to the base
// language and finally echoing the key itself, so unknown category codes
// pass through unmodified.
func Translate(key, lang string) string {
	if msgs, ok := translations[lang]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := translations[DefaultLanguage][key]; ok {
		return msg
	}
	return key
}

// DetectLanguage picks the request language from the Accept-Language header,
// taking the first tag, stripping any region subtag and falling back to uz.
func DetectLanguage(header http.Header) string {
	accept := header.Get("Accept-Language")
	if accept == "" {
		return DefaultLanguage
	}
	lang := strings.TrimSpace(strings.Split(accept, ",")[0])
	if i := strings.Index(lang, "-"); i >= 0 {
		lang = lang[:i]
	}
	lang = strings.ToLower(lang)
	for _, s := range supported {
		if lang == s {
			return lang
		}
	}
	return DefaultLanguage
}

// Supported reports whether lang is one of the served languages.
func Supported(lang string) bool {
	for _, s := range supported {
		if lang == s {
			return true
		}
	}
	return false
}

// CategoryKey normalizes a raw category value into a translation-table key.
func CategoryKey(category string) string {
	return strings.ToLower(strings.ReplaceAll(category, " ", "_"))
}
