// Package language defines the closed set of languages message catalogs can
// be written in, keyed by lowercase two-letter ISO 639-1 codes.
//
// Tags parse leniently: locale variants ("pt-BR", "pt_BR.UTF-8") reduce to
// their base language, and case is normalized. A tag outside the supported
// set yields ErrUnsupported so that callers can fall back to Default and
// report the event instead of failing hard.
//
//	tag, err := language.Parse("pt_BR") // "pt", nil
//	if errors.Is(err, language.ErrUnsupported) {
//		tag = language.Default
//	}
//
// Match picks the first supported entry of a preference list, and Detect
// reads the preference from the environment using GNU gettext conventions.
package language
