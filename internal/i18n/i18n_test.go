package i18n

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		key  string
		lang string
		want string
	}{
		{name: "known key known lang", key: "new_order", lang: "ru", want: "Новый заказ!"},
		{name: "unknown lang falls back to uz", key: "new_order", lang: "fr", want: "Yangi buyurtma!"},
		{name: "unknown key echoes", key: "mystery_dish", lang: "en", want: "mystery_dish"},
		{name: "category label", key: "shashlik", lang: "en", want: "Barbecue"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, Translate(testCase.key, testCase.lang))
		})
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "plain tag", header: "ru", want: "ru"},
		{name: "region stripped", header: "ru-RU,ru;q=0.9", want: "ru"},
		{name: "case folded", header: "EN-us", want: "en"},
		{name: "unsupported falls back", header: "de-DE", want: "uz"},
		{name: "empty falls back", header: "", want: "uz"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			header := http.Header{}
			if testCase.header != "" {
				header.Set("Accept-Language", testCase.header)
			}
			assert.Equal(t, testCase.want, DetectLanguage(header))
		})
	}
}

func TestEveryKeyExistsInBaseLanguage(t *testing.T) {
	for lang, msgs := range translations {
		if lang == DefaultLanguage {
			continue
		}
		for key := range msgs {
			_, ok := translations[DefaultLanguage][key]
			assert.True(t, ok, "key %q in %q is missing from the base language", key, lang)
		}
	}
}

func TestCategoryKey(t *testing.T) {
	assert.Equal(t, "milliy_taomlar", CategoryKey("Milliy Taomlar"))
	assert.Equal(t, "shashlik", CategoryKey("shashlik"))
}
