package i18n

import "github.com/dmitrymomot/msgkit/pkg/language"

// PluralRule selects a plural form name for a count.
type PluralRule func(n int) string

// Plural form names following Unicode CLDR categories.
// Not every language uses every form.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// pluralEnglish: one (±1), other. Also covers Germanic languages.
func pluralEnglish(n int) string {
	if n == 1 || n == -1 {
		return PluralOne
	}
	return PluralOther
}

// pluralSlavic: one, few (2-4 outside 12-14), many.
func pluralSlavic(n int) string {
	if n == 1 || n == -1 {
		return PluralOne
	}
	if n < 0 {
		n = -n
	}
	mod10, mod100 := n%10, n%100
	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return PluralFew
	}
	return PluralMany
}

// pluralRomance: one (0, ±1), other.
func pluralRomance(n int) string {
	if n == 0 || n == 1 || n == -1 {
		return PluralOne
	}
	return PluralOther
}

// pluralNone: languages without grammatical number.
func pluralNone(_ int) string {
	return PluralOther
}

// pluralArabic: zero, one, two, few (mod100 3-10), many (mod100 11-99), other.
func pluralArabic(n int) string {
	switch {
	case n == 0:
		return PluralZero
	case n == 1 || n == -1:
		return PluralOne
	case n == 2 || n == -2:
		return PluralTwo
	}
	if n < 0 {
		n = -n
	}
	mod100 := n % 100
	switch {
	case mod100 >= 3 && mod100 <= 10:
		return PluralFew
	case mod100 >= 11:
		return PluralMany
	}
	return PluralOther
}

// pluralRuleFor returns the plural rule for a supported language.
func pluralRuleFor(tag language.Tag) PluralRule {
	switch tag {
	case "cs", "pl", "ru", "sk", "uk":
		return pluralSlavic
	case "fr", "pt":
		return pluralRomance
	case "id", "ja", "ko", "th", "vi", "zh":
		return pluralNone
	case "ar":
		return pluralArabic
	default:
		return pluralEnglish
	}
}

// pluralFallbackForms lists forms to try when a catalog lacks the exact one.
func pluralFallbackForms(form string) []string {
	switch form {
	case PluralZero, PluralOne, PluralMany:
		return []string{PluralOther}
	case PluralTwo:
		return []string{PluralFew, PluralMany, PluralOther}
	case PluralFew:
		return []string{PluralMany, PluralOther}
	default:
		return nil
	}
}
