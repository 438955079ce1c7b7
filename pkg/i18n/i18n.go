package i18n

import (
	"fmt"
	"maps"
	"sort"
	"strconv"

	"github.com/dmitrymomot/msgkit/pkg/language"
)

// Catalog is a loaded set of key->string message mappings for one language.
// It is immutable after creation and safe for concurrent use.
type Catalog struct {
	lang    language.Tag
	entries map[string]string
}

// NewCatalog creates a catalog for lang from a copy of entries.
func NewCatalog(lang language.Tag, entries map[string]string) *Catalog {
	c := &Catalog{lang: lang, entries: make(map[string]string, len(entries))}
	maps.Copy(c.entries, entries)
	return c
}

// Language returns the catalog's language.
func (c *Catalog) Language() language.Tag {
	return c.lang
}

// Lookup returns the message for key and whether it was found.
// A missing key is an expected, recoverable condition, not an error.
func (c *Catalog) Lookup(key string) (string, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// Len returns the number of messages in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Keys returns the catalog's keys in sorted order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Bundle resolves message keys against per-language catalogs with fallback
// to a default language. All configuration happens during construction,
// making the bundle immutable and safe for concurrent use.
type Bundle struct {
	catalogs    map[language.Tag]*Catalog
	pluralRules map[language.Tag]PluralRule
	defaultLang language.Tag

	// missingKeyHandler fires when a key is absent from every consulted
	// catalog. Useful for spotting untranslated keys during development.
	missingKeyHandler func(lang language.Tag, key string)

	// fallbackHandler fires when a requested language has no catalog and
	// resolution used another one instead. Fallbacks are reported, never
	// silently swallowed.
	fallbackHandler func(requested, used language.Tag)
}

// Option configures a Bundle during construction.
type Option func(*Bundle) error

// New creates an immutable Bundle from the given options.
func New(opts ...Option) (*Bundle, error) {
	b := &Bundle{
		catalogs:    make(map[language.Tag]*Catalog),
		pluralRules: make(map[language.Tag]PluralRule),
		defaultLang: language.Default,
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("i18n: applying option: %w", err)
		}
	}

	return b, nil
}

// WithDefaultLanguage sets the fallback language. Defaults to language.Default.
func WithDefaultLanguage(tag language.Tag) Option {
	return func(b *Bundle) error {
		if !language.Supported(tag.String()) {
			return fmt.Errorf("%w (default language)", language.ErrUnsupported)
		}
		b.defaultLang = tag
		return nil
	}
}

// WithCatalog registers a prebuilt catalog. Registering two catalogs for
// the same language is a configuration mistake and fails construction;
// use the loader options to merge sources for one language.
func WithCatalog(c *Catalog) Option {
	return func(b *Bundle) error {
		if c == nil {
			return ErrNilCatalog
		}
		if c.lang == "" {
			return ErrEmptyLanguage
		}
		if _, exists := b.catalogs[c.lang]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateCatalog, c.lang)
		}
		b.catalogs[c.lang] = c
		b.ensureRule(c.lang)
		return nil
	}
}

// WithPluralRule overrides the plural rule for a language.
func WithPluralRule(tag language.Tag, rule PluralRule) Option {
	return func(b *Bundle) error {
		if rule == nil {
			return fmt.Errorf("i18n: plural rule for %s cannot be nil", tag)
		}
		b.pluralRules[tag] = rule
		return nil
	}
}

// WithMissingKeyHandler sets a handler invoked when a key is not found in
// any consulted catalog, including the default fallback.
func WithMissingKeyHandler(handler func(lang language.Tag, key string)) Option {
	return func(b *Bundle) error {
		b.missingKeyHandler = handler
		return nil
	}
}

// WithFallbackHandler sets a handler invoked when resolution fell back
// from a requested language to another catalog.
func WithFallbackHandler(handler func(requested, used language.Tag)) Option {
	return func(b *Bundle) error {
		b.fallbackHandler = handler
		return nil
	}
}

// addEntries merges loaded entries into the catalog for lang, later
// sources winning per key. Used by the loader options.
func (b *Bundle) addEntries(lang language.Tag, entries map[string]string) {
	if existing, ok := b.catalogs[lang]; ok {
		merged := make(map[string]string, existing.Len()+len(entries))
		maps.Copy(merged, existing.entries)
		maps.Copy(merged, entries)
		b.catalogs[lang] = NewCatalog(lang, merged)
	} else {
		b.catalogs[lang] = NewCatalog(lang, entries)
	}
	b.ensureRule(lang)
}

func (b *Bundle) ensureRule(lang language.Tag) {
	if _, ok := b.pluralRules[lang]; !ok {
		b.pluralRules[lang] = pluralRuleFor(lang)
	}
}

// Lookup resolves key for lang, falling back to the default language's
// catalog. The boolean result is the explicit absent signal: false means
// the key exists in no consulted catalog.
func (b *Bundle) Lookup(lang language.Tag, key string) (string, bool) {
	cat, ok := b.catalogs[lang]
	if !ok && lang != b.defaultLang {
		if b.fallbackHandler != nil {
			b.fallbackHandler(lang, b.defaultLang)
		}
		cat, ok = b.catalogs[b.defaultLang]
	}
	if ok {
		if v, found := cat.Lookup(key); found {
			return v, true
		}
	}

	// Key-level fallback: the language has a catalog but not this key.
	if cat != nil && cat.lang != b.defaultLang {
		if def, exists := b.catalogs[b.defaultLang]; exists {
			if v, found := def.Lookup(key); found {
				return v, true
			}
		}
	}

	return "", false
}

// T resolves key for lang and substitutes {name} placeholders from vars.
// Returns the key itself when no catalog holds it, after notifying the
// missing-key handler. Missing translations must never break rendering.
func (b *Bundle) T(lang language.Tag, key string, vars ...Vars) string {
	msg, ok := b.Lookup(lang, key)
	if !ok {
		if b.missingKeyHandler != nil {
			b.missingKeyHandler(lang, key)
		}
		return key
	}
	return Replace(msg, mergeVars(vars))
}

// Tn resolves a pluralized message for count n. Catalogs store plural
// variants under "<key>.<form>" (e.g. "apples.one", "apples.other"); the
// form is chosen by the language's plural rule and {count} is injected
// into the substitution vars.
func (b *Bundle) Tn(lang language.Tag, key string, n int, vars ...Vars) string {
	rule, ok := b.pluralRules[lang]
	if !ok {
		if rule, ok = b.pluralRules[b.defaultLang]; !ok {
			rule = pluralRuleFor(b.defaultLang)
		}
	}

	form := rule(n)
	msg, found := b.lookupPlural(lang, key, form)
	if !found {
		if b.missingKeyHandler != nil {
			b.missingKeyHandler(lang, key)
		}
		return key
	}

	merged := Vars{"count": strconv.Itoa(n)}
	for k, v := range mergeVars(vars) {
		merged[k] = v
	}
	return Replace(msg, merged)
}

// lookupPlural tries the exact form, then the form's fallbacks.
func (b *Bundle) lookupPlural(lang language.Tag, key, form string) (string, bool) {
	if msg, ok := b.Lookup(lang, key+"."+form); ok {
		return msg, true
	}
	for _, fb := range pluralFallbackForms(form) {
		if msg, ok := b.Lookup(lang, key+"."+fb); ok {
			return msg, true
		}
	}
	return "", false
}

// Catalog returns the catalog loaded for lang, if any.
func (b *Bundle) Catalog(lang language.Tag) (*Catalog, bool) {
	c, ok := b.catalogs[lang]
	return c, ok
}

// DefaultLanguage returns the bundle's fallback language.
func (b *Bundle) DefaultLanguage() language.Tag {
	return b.defaultLang
}

// Languages returns the loaded languages, default language first, the
// rest sorted.
func (b *Bundle) Languages() []language.Tag {
	rest := make([]language.Tag, 0, len(b.catalogs))
	hasDefault := false
	for tag := range b.catalogs {
		if tag == b.defaultLang {
			hasDefault = true
			continue
		}
		rest = append(rest, tag)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })

	if !hasDefault {
		return rest
	}
	return append([]language.Tag{b.defaultLang}, rest...)
}
