// Package msgkit resolves user-facing message keys against per-language
// catalogs stored as flat .properties files.
//
// A Resolver combines two catalog sources: an internal bundled source
// (an embed.FS shipped inside the binary) and an optional external
// override directory supplied by the deploying user. On startup the
// override directory is created and seeded from the bundled source, and
// catalogs found there take precedence per key, so deployments can edit
// messages without rebuilding.
//
//	//go:embed catalogs
//	var catalogFS embed.FS
//
//	sub, _ := fs.Sub(catalogFS, "catalogs")
//	resolver, err := msgkit.New(
//		msgkit.WithLogger(log),
//		msgkit.WithBundled(sub),
//		msgkit.WithOverrideDir("${APPDIR}/locale"),
//	)
//	if err != nil {
//		return err
//	}
//
//	lang := resolver.Resolve("pt-BR") // "pt", or the default for unsupported tags
//	msg := resolver.T(lang, "greet", i18n.Vars{"name": "World"})
//
// Language fallbacks and missing keys are reported through the injected
// logger rather than swallowed. Reload rebuilds the catalogs and swaps
// them in atomically, so concurrent lookups always observe a complete
// bundle. The heavy lifting lives in the pkg subpackages: pkg/i18n
// (resolution), pkg/properties (catalog format), pkg/language (supported
// tags), pkg/fsutil (bootstrap file operations), and pkg/logger.
package msgkit
