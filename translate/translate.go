// Package translate localizes user facing messages.
//
// Messages are written as en-US fmt formats, and rendered for the locales
// reported by the host unless SetLocale overrides them.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const LOCALE_DEFAULT = "en-US"

var printer = message.NewPrinter(language.MustParse(LOCALE_DEFAULT))

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("hrm: locale: %v", err)
	}

	SetLocale(locales...)
}

// SetLocale selects the best match among locales for later messages.
// With no locales, LOCALE_DEFAULT is used.
func SetLocale(locales ...string) {
	if len(locales) == 0 {
		locales = []string{LOCALE_DEFAULT}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
