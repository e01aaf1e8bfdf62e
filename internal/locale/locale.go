// Package locale resolves the user-facing language of a scaffolding session
// and holds the translated prompt and status strings.
package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported message language code.
type Locale string

const (
	// Chinese is the default locale.
	Chinese Locale = "zh"
	// English is the fallback locale for missing translations.
	English Locale = "en"
)

// Default is used when no language is requested.
const Default = Chinese

// ErrUnsupportedLocale is returned when a requested language cannot be matched.
var ErrUnsupportedLocale = errors.New("locale: unsupported language")

// supported lists the tags in the order the matcher prefers them.
var supported = []language.Tag{
	language.Chinese,
	language.English,
}

var matcher = language.NewMatcher(supported)

// Resolve maps a BCP 47 language string (e.g. "zh-CN", "en_US", "en") to a
// supported Locale. An empty string resolves to Default.
func Resolve(code string) (Locale, error) {
	code = strings.TrimSpace(strings.ReplaceAll(code, "_", "-"))
	if code == "" {
		return Default, nil
	}

	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, code)
	}

	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, code)
	}

	base, _ := supported[idx].Base()
	return Locale(base.String()), nil
}

// Supported returns the codes of all supported locales.
func Supported() []string {
	codes := make([]string, 0, len(supported))
	for _, t := range supported {
		base, _ := t.Base()
		codes = append(codes, base.String())
	}
	return codes
}
