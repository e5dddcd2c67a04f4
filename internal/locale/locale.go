// Package locale holds the message catalog for user-facing heal strings.
package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The key doubles as the English text.
const (
	Indexed       = "Healing does not operate on indexed layers."
	NoSource      = "Set a source image first."
	Healed        = "Healed %s (%d dabs, %d skipped)"
	Wrote         = "Wrote %s"
	Summary       = "%d of %d images healed"
	InvalidPoints = "invalid point list %q"
)

// Supported lists the languages with translations, English first.
var Supported = []language.Tag{language.English, language.German, language.French}

var (
	cat     = newCatalog()
	matcher = language.NewMatcher(Supported)
)

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	set := func(tag language.Tag, key, msg string) {
		if err := b.SetString(tag, key, msg); err != nil {
			panic("locale: " + err.Error())
		}
	}

	for _, key := range []string{Indexed, NoSource, Healed, Wrote, Summary, InvalidPoints} {
		set(language.English, key, key)
	}

	set(language.German, Indexed, "Heilen funktioniert nicht auf indizierten Ebenen.")
	set(language.German, NoSource, "Legen Sie zuerst eine Quelle fest.")
	set(language.German, Healed, "%s geheilt (%d Tupfer, %d übersprungen)")
	set(language.German, Wrote, "%s geschrieben")
	set(language.German, Summary, "%d von %d Bildern geheilt")
	set(language.German, InvalidPoints, "ungültige Punktliste %q")

	set(language.French, Indexed, "La correction ne fonctionne pas sur les calques indexés.")
	set(language.French, NoSource, "Définissez d'abord une image source.")
	set(language.French, Healed, "%s corrigé (%d touches, %d ignorées)")
	set(language.French, Wrote, "%s écrit")
	set(language.French, Summary, "%d images corrigées sur %d")
	set(language.French, InvalidPoints, "liste de points invalide %q")

	return b
}

// Match returns the best supported tag for a BCP 47 language string.
// Unknown or malformed input falls back to English.
func Match(s string) language.Tag {
	if s == "" {
		return language.English
	}
	t, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return language.English
	}
	return Supported[idx]
}

// Printer returns a message printer for tag backed by the heal catalog.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(cat))
}

// Sprintf formats a catalog message in the given language.
func Sprintf(tag language.Tag, key string, args ...any) string {
	return Printer(tag).Sprintf(key, args...)
}
