// Package translate localizes user-facing text. Formats are written in
// en-US and rendered through a message printer matched to the process
// locale, so untranslated strings come out unchanged.
package translate

import (
	"errors"
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer = sync.OnceValue(func() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("ossim: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
})

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer().Sprintf(key, args...)
}

// Errorf builds a sentinel error from an en-US format.
func Errorf(key message.Reference, args ...any) error {
	return errors.New(From(key, args...))
}
