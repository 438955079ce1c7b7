package i18n

import "github.com/dmitrymomot/msgkit/pkg/language"

// Translator is a Bundle view bound to a fixed language, eliminating the
// language argument from every call site.
type Translator struct {
	bundle *Bundle
	lang   language.Tag
}

// NewTranslator creates a Translator bound to lang. An empty tag binds to
// the bundle's default language.
func NewTranslator(bundle *Bundle, lang language.Tag) *Translator {
	if bundle == nil {
		panic("i18n: bundle is not provided")
	}
	if lang == "" {
		lang = bundle.DefaultLanguage()
	}
	return &Translator{bundle: bundle, lang: lang}
}

// T resolves key in the bound language.
func (t *Translator) T(key string, vars ...Vars) string {
	return t.bundle.T(t.lang, key, vars...)
}

// Tn resolves a pluralized key in the bound language.
func (t *Translator) Tn(key string, n int, vars ...Vars) string {
	return t.bundle.Tn(t.lang, key, n, vars...)
}

// Lookup resolves key in the bound language with an explicit absent signal.
func (t *Translator) Lookup(key string) (string, bool) {
	return t.bundle.Lookup(t.lang, key)
}

// Language returns the bound language.
func (t *Translator) Language() language.Tag {
	return t.lang
}
