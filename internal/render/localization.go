package render

import (
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/ytget/number-converter/internal/model"
)

// Localization manages report text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyBinary           = "binary"
	KeyOctal            = "octal"
	KeyHexadecimal      = "hexadecimal"
	KeyDecimal          = "decimal"
	KeyHexaShort        = "hexa_short"
	KeyMatrixHeading    = "matrix_heading"
	KeyDecimalHeading   = "decimal_heading"
	KeyOutOfRange       = "out_of_range"
	KeyInvalidInteger   = "invalid_integer"
	KeyEmptyInput       = "empty_input"
	KeyConversionFailed = "conversion_failed"
)

// supportedTags must stay in the same order as supportedLanguages
var (
	supportedLanguages = []string{"en", "ru", "pt"}
	supportedTags      = []language.Tag{language.English, language.Russian, language.Portuguese}
	languageMatcher    = language.NewMatcher(supportedTags)
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" is resolved from the
// process locale; unknown languages are ignored.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = ResolveLanguage(systemLocale())
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// BaseName returns the localized name of a base
func (l *Localization) BaseName(base model.Base) string {
	switch base {
	case model.Binary:
		return l.GetText(KeyBinary)
	case model.Octal:
		return l.GetText(KeyOctal)
	case model.Hexadecimal:
		return l.GetText(KeyHexadecimal)
	default:
		return l.GetText(KeyDecimal)
	}
}

// ResolveLanguage maps a locale such as "pt_BR.UTF-8" or "ru-RU" to one of
// the supported language codes, English when nothing matches.
func ResolveLanguage(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return "en"
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return "en"
	}
	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return "en"
	}
	return supportedLanguages[index]
}

func systemLocale() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return ""
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyBinary:           "Binary",
		KeyOctal:            "Octal",
		KeyHexadecimal:      "Hexadecimal",
		KeyDecimal:          "Decimal",
		KeyHexaShort:        "Hexa",
		KeyMatrixHeading:    "Two-Dimensional Array:",
		KeyDecimalHeading:   "Your decimal value\nin binary/octal/hexa is:",
		KeyOutOfRange:       "*The number is outside the range 1-15*",
		KeyInvalidInteger:   "*Please enter a valid integer value*",
		KeyEmptyInput:       "Enter a value to convert",
		KeyConversionFailed: "Conversion failed",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyBinary:           "Двоичная",
		KeyOctal:            "Восьмеричная",
		KeyHexadecimal:      "Шестнадцатеричная",
		KeyDecimal:          "Десятичная",
		KeyHexaShort:        "Шестн.",
		KeyMatrixHeading:    "Двумерный массив:",
		KeyDecimalHeading:   "Ваше десятичное значение\nв двоичной/восьмеричной/шестн. системе:",
		KeyOutOfRange:       "*Число вне диапазона 1-15*",
		KeyInvalidInteger:   "*Пожалуйста, введите целое число*",
		KeyEmptyInput:       "Введите значение для преобразования",
		KeyConversionFailed: "Ошибка преобразования",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyBinary:           "Binário",
		KeyOctal:            "Octal",
		KeyHexadecimal:      "Hexadecimal",
		KeyDecimal:          "Decimal",
		KeyHexaShort:        "Hexa",
		KeyMatrixHeading:    "Matriz Bidimensional:",
		KeyDecimalHeading:   "Seu valor decimal\nem binário/octal/hexa é:",
		KeyOutOfRange:       "*O número está fora do intervalo 1-15*",
		KeyInvalidInteger:   "*Por favor, digite um número inteiro válido*",
		KeyEmptyInput:       "Digite um valor para converter",
		KeyConversionFailed: "Falha na conversão",
	}
}
