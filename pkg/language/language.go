package language

import (
	"fmt"
	"sort"
	"strings"

	xlanguage "golang.org/x/text/language"
)

// Tag is a lowercase two-letter ISO 639-1 language code from the supported set.
type Tag string

// Default is the fallback language used when a requested tag is unsupported.
const Default Tag = "en"

// Info holds display metadata for a supported language.
type Info struct {
	// Name is the English name of the language.
	Name string
	// NativeName is the language's own name for itself.
	NativeName string
}

// registry is the closed set of supported languages.
var registry = map[Tag]Info{
	"ar": {Name: "Arabic", NativeName: "العربية"},
	"bg": {Name: "Bulgarian", NativeName: "Български"},
	"cs": {Name: "Czech", NativeName: "Čeština"},
	"da": {Name: "Danish", NativeName: "Dansk"},
	"de": {Name: "German", NativeName: "Deutsch"},
	"el": {Name: "Greek", NativeName: "Ελληνικά"},
	"en": {Name: "English", NativeName: "English"},
	"es": {Name: "Spanish", NativeName: "Español"},
	"et": {Name: "Estonian", NativeName: "Eesti"},
	"fi": {Name: "Finnish", NativeName: "Suomi"},
	"fr": {Name: "French", NativeName: "Français"},
	"he": {Name: "Hebrew", NativeName: "עברית"},
	"hi": {Name: "Hindi", NativeName: "हिन्दी"},
	"hu": {Name: "Hungarian", NativeName: "Magyar"},
	"id": {Name: "Indonesian", NativeName: "Bahasa Indonesia"},
	"it": {Name: "Italian", NativeName: "Italiano"},
	"ja": {Name: "Japanese", NativeName: "日本語"},
	"ko": {Name: "Korean", NativeName: "한국어"},
	"lt": {Name: "Lithuanian", NativeName: "Lietuvių"},
	"lv": {Name: "Latvian", NativeName: "Latviešu"},
	"nl": {Name: "Dutch", NativeName: "Nederlands"},
	"no": {Name: "Norwegian", NativeName: "Norsk"},
	"pl": {Name: "Polish", NativeName: "Polski"},
	"pt": {Name: "Portuguese", NativeName: "Português"},
	"ro": {Name: "Romanian", NativeName: "Română"},
	"ru": {Name: "Russian", NativeName: "Русский"},
	"sk": {Name: "Slovak", NativeName: "Slovenčina"},
	"sv": {Name: "Swedish", NativeName: "Svenska"},
	"th": {Name: "Thai", NativeName: "ไทย"},
	"tr": {Name: "Turkish", NativeName: "Türkçe"},
	"uk": {Name: "Ukrainian", NativeName: "Українська"},
	"vi": {Name: "Vietnamese", NativeName: "Tiếng Việt"},
	"zh": {Name: "Chinese", NativeName: "中文"},
}

// Parse canonicalizes a language tag and validates it against the supported
// set. Locale variants are reduced to their base language ("pt-BR" and
// "pt_BR" both parse as "pt"). Returns ErrUnsupported for tags outside the
// supported set.
func Parse(s string) (Tag, error) {
	base := baseCode(s)
	if base == "" {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
	}

	tag := Tag(base)
	if _, ok := registry[tag]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
	return tag, nil
}

// MustParse is like Parse but panics on error. Intended for constants.
func MustParse(s string) Tag {
	tag, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return tag
}

// baseCode extracts the lowercase base language code from a tag like
// "pt-BR", "pt_BR.UTF-8", or "pt". BCP 47 canonicalization is delegated to
// x/text for structurally valid tags; malformed input falls back to a plain
// split so that lenient inputs like "EN_us" still resolve.
func baseCode(s string) string {
	norm := strings.ReplaceAll(strings.TrimSpace(s), "_", "-")
	// Strip an encoding suffix such as ".UTF-8" from POSIX locale names.
	if idx := strings.IndexByte(norm, '.'); idx >= 0 {
		norm = norm[:idx]
	}
	if norm == "" {
		return ""
	}

	if parsed, err := xlanguage.Parse(norm); err == nil {
		base, _ := parsed.Base()
		return base.String()
	}

	base, _, _ := strings.Cut(norm, "-")
	return strings.ToLower(base)
}

// Supported reports whether s resolves to a supported language.
func Supported(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Tags returns the supported language tags in sorted order.
func Tags() []Tag {
	tags := make([]Tag, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// String returns the tag as a plain string.
func (t Tag) String() string {
	return string(t)
}

// Info returns display metadata for the tag. Unsupported tags yield a
// zero Info.
func (t Tag) Info() Info {
	return registry[t]
}

// Match returns the first supported language from a preference list,
// falling back to Default when none matches.
func Match(preferred ...string) Tag {
	for _, p := range preferred {
		if tag, err := Parse(p); err == nil {
			return tag
		}
	}
	return Default
}
