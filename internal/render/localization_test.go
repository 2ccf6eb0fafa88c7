package render

import (
	"testing"

	"github.com/ytget/number-converter/internal/model"
)

func TestLocalization_GetText(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}

	if text := l.GetText(KeyBinary); text != "Binary" {
		t.Errorf("Expected 'Binary', got '%s'", text)
	}

	l.SetLanguage("ru")
	if text := l.GetText(KeyOctal); text != "Восьмеричная" {
		t.Errorf("Expected Russian octal name, got '%s'", text)
	}

	// Unknown key falls back to the key itself
	if text := l.GetText("missing_key"); text != "missing_key" {
		t.Errorf("Expected key fallback, got '%s'", text)
	}

	// Unknown language is ignored
	l.SetLanguage("de")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_AllKeysTranslated(t *testing.T) {
	l := NewLocalization()

	for _, lang := range supportedLanguages {
		for key := range l.texts["en"] {
			if _, ok := l.texts[lang][key]; !ok {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestLocalization_BaseName(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		base     model.Base
		expected string
	}{
		{model.Binary, "Binary"},
		{model.Octal, "Octal"},
		{model.Hexadecimal, "Hexadecimal"},
		{model.Decimal, "Decimal"},
		{model.Base(42), "Decimal"},
	}

	for _, test := range tests {
		if name := l.BaseName(test.base); name != test.expected {
			t.Errorf("BaseName(%d) = %s, expected %s", test.base, name, test.expected)
		}
	}
}

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		locale   string
		expected string
	}{
		{"", "en"},
		{"C", "en"},
		{"POSIX", "en"},
		{"en_US.UTF-8", "en"},
		{"ru_RU.UTF-8", "ru"},
		{"pt_BR", "pt"},
		{"pt-PT", "pt"},
		{"ja_JP.UTF-8", "en"},
		{"not a locale", "en"},
	}

	for _, test := range tests {
		if result := ResolveLanguage(test.locale); result != test.expected {
			t.Errorf("ResolveLanguage(%q) = %s, expected %s", test.locale, result, test.expected)
		}
	}
}

func TestLocalization_SystemLanguage(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "pt_BR.UTF-8")

	l := NewLocalization()
	l.SetLanguage("system")

	if l.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected system language pt, got %s", l.GetCurrentLanguage())
	}
}
