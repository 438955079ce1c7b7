package i18n

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/msgkit/pkg/language"
	"github.com/dmitrymomot/msgkit/pkg/properties"
)

// catalogFile is one parsed per-language catalog file.
type catalogFile struct {
	lang    language.Tag
	entries map[string]string
	name    string
}

// WithPropertiesFS loads .properties catalogs from the root of fsys.
// File naming convention: <prefix>-<code>.properties, where <code> is a
// supported language tag. Files with an unsupported code are skipped.
func WithPropertiesFS(fsys fs.FS, prefix string) Option {
	return func(b *Bundle) error {
		return loadFS(b, fsys, prefix, []string{".properties"}, parseProperties)
	}
}

// WithPropertiesDir loads .properties catalogs from a directory on disk.
// A missing or unreadable directory reports ErrNotFound.
func WithPropertiesDir(dir, prefix string) Option {
	return func(b *Bundle) error {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return loadFS(b, os.DirFS(dir), prefix, []string{".properties"}, parseProperties)
	}
}

// WithYAMLFS loads YAML catalogs from the root of fsys. Nested mappings are
// flattened to dot-notation keys. File naming convention:
// <prefix>-<code>.yaml (or .yml).
func WithYAMLFS(fsys fs.FS, prefix string) Option {
	return func(b *Bundle) error {
		return loadFS(b, fsys, prefix, []string{".yaml", ".yml"}, parseYAML)
	}
}

// loadFS discovers catalog files, parses them concurrently, and merges the
// results into the bundle in deterministic (filename) order.
func loadFS(b *Bundle, fsys fs.FS, prefix string, exts []string, parse func([]byte) (map[string]string, error)) error {
	if prefix == "" {
		return fmt.Errorf("i18n: catalog prefix cannot be empty")
	}

	dirEntries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		if catalogLanguage(de.Name(), prefix, exts) != "" {
			names = append(names, de.Name())
		}
	}
	if len(names) == 0 {
		return fmt.Errorf("%w: no %s-*%s files", ErrNotFound, prefix, exts[0])
	}
	sort.Strings(names)

	files := make([]*catalogFile, len(names))
	var g errgroup.Group
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			code := catalogLanguage(name, prefix, exts)
			lang, err := language.Parse(code)
			if err != nil {
				return nil // unsupported language file, skip
			}

			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrNotFound, name, err)
			}

			entries, err := parse(data)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrMalformedCatalog, name, err)
			}

			files[i] = &catalogFile{lang: lang, entries: entries, name: name}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, f := range files {
		if f != nil {
			b.addEntries(f.lang, f.entries)
		}
	}
	return nil
}

// catalogLanguage extracts the language code from a catalog filename,
// returning "" when the name does not match <prefix>-<code><ext>.
func catalogLanguage(name, prefix string, exts []string) string {
	rest, ok := strings.CutPrefix(name, prefix+"-")
	if !ok {
		return ""
	}
	for _, ext := range exts {
		if code, ok := strings.CutSuffix(rest, ext); ok && code != "" {
			return code
		}
	}
	return ""
}

func parseProperties(data []byte) (map[string]string, error) {
	doc, err := properties.Parse(data)
	if err != nil {
		return nil, err
	}
	return doc.Map(), nil
}

func parseYAML(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return flatten(raw, ""), nil
}

// flatten converts nested mappings into dot-notation keys.
func flatten(data map[string]any, prefix string) map[string]string {
	out := make(map[string]string, len(data))
	for key, value := range data {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			out[full] = v
		case map[string]any:
			for k, s := range flatten(v, full) {
				out[k] = s
			}
		default:
			out[full] = fmt.Sprintf("%v", v)
		}
	}
	return out
}
