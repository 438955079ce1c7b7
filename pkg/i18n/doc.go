// Package i18n resolves message keys against per-language catalogs with
// placeholder substitution and fallback to a default language.
//
// A Bundle is built once from functional options and is immutable after
// construction, making it safe for concurrent use. Catalogs load from
// .properties or YAML files following the <prefix>-<code>.<ext> naming
// convention, or can be supplied directly.
//
// # Basic Usage
//
//	bundle, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithCatalog(i18n.NewCatalog("en", map[string]string{
//			"greet": "Hello, {name}!",
//		})),
//		i18n.WithCatalog(i18n.NewCatalog("de", map[string]string{
//			"greet": "Hallo, {name}!",
//		})),
//	)
//
//	bundle.T("de", "greet", i18n.Vars{"name": "Welt"}) // "Hallo, Welt!"
//
// # Resolution semantics
//
// Lookup returns an explicit (value, ok) pair: a missing key is an expected,
// recoverable condition during development, never an error. T returns the
// key itself on a miss and notifies the optional missing-key handler.
// Requests for a language without a catalog fall back to the default
// language's catalog and notify the optional fallback handler, so fallbacks
// are observable rather than silent.
//
// # Placeholders
//
// Messages reference substitution values as {name} tokens. Tokens without a
// matching value stay verbatim in the output; supplied values the message
// never references are ignored.
//
// # File-based catalogs
//
//	//go:embed catalogs
//	var catalogFS embed.FS
//
//	sub, _ := fs.Sub(catalogFS, "catalogs")
//	bundle, err := i18n.New(
//		i18n.WithPropertiesFS(sub, "messages"), // messages-en.properties, messages-de.properties, ...
//	)
//
// Catalog files parse concurrently and merge deterministically; a file that
// fails to parse reports ErrMalformedCatalog naming the file, and a missing
// source reports ErrNotFound.
package i18n
