package msgkit_test

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgkit"
	"github.com/dmitrymomot/msgkit/pkg/fsutil"
	"github.com/dmitrymomot/msgkit/pkg/i18n"
	"github.com/dmitrymomot/msgkit/pkg/language"
)

func bundledCatalogs() fstest.MapFS {
	return fstest.MapFS{
		"messages-en.properties": {Data: []byte("greet=Hello, {name}!\nbye=Goodbye\n")},
		"messages-de.properties": {Data: []byte("greet=Hallo, {name}!\n")},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("bundled source only", func(t *testing.T) {
		t.Parallel()
		resolver, err := msgkit.New(msgkit.WithBundled(bundledCatalogs()))
		require.NoError(t, err)

		require.Equal(t, "Hello, World!", resolver.T("en", "greet", i18n.Vars{"name": "World"}))
		require.Equal(t, []language.Tag{"en", "de"}, resolver.Languages())
		require.Empty(t, resolver.OverrideDir())
	})

	t.Run("no source configured", func(t *testing.T) {
		t.Parallel()
		_, err := msgkit.New()
		require.Error(t, err)
		require.ErrorIs(t, err, i18n.ErrNotFound)
	})

	t.Run("seeds the override directory", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "locale")

		_, err := msgkit.New(
			msgkit.WithBundled(bundledCatalogs()),
			msgkit.WithOverrideDir(dir),
		)
		require.NoError(t, err)

		seeded, err := os.ReadFile(filepath.Join(dir, "messages-en.properties"))
		require.NoError(t, err)
		require.Contains(t, string(seeded), "greet=Hello, {name}!")
	})

	t.Run("override entries win per key", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		override := []byte("greet=Howdy, {name}!\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, "messages-en.properties"), override, 0o644))

		resolver, err := msgkit.New(
			msgkit.WithBundled(bundledCatalogs()),
			msgkit.WithOverrideDir(dir),
		)
		require.NoError(t, err)

		// Overridden key uses the deployed file, untouched keys fall
		// through to the bundled catalog.
		require.Equal(t, "Howdy, Ann!", resolver.T("en", "greet", i18n.Vars{"name": "Ann"}))

		v, ok := resolver.Lookup("en", "bye")
		require.True(t, ok)
		require.Equal(t, "Goodbye", v)
	})

	t.Run("base dir token expands", func(t *testing.T) {
		t.Parallel()
		base := t.TempDir()

		resolver, err := msgkit.New(
			msgkit.WithBundled(bundledCatalogs()),
			msgkit.WithOverrideDir("${APPDIR}/locale"),
			msgkit.WithBaseDir(base),
		)
		require.NoError(t, err)
		require.Equal(t, filepath.Join(base, "locale"), resolver.OverrideDir())
		require.DirExists(t, resolver.OverrideDir())
	})

	t.Run("custom prefix", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"app-en.properties": {Data: []byte("greet=Hi\n")},
		}
		resolver, err := msgkit.New(
			msgkit.WithBundled(fsys),
			msgkit.WithPrefix("app"),
		)
		require.NoError(t, err)

		v, ok := resolver.Lookup("en", "greet")
		require.True(t, ok)
		require.Equal(t, "Hi", v)
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("supported tag", func(t *testing.T) {
		t.Parallel()
		resolver, err := msgkit.New(msgkit.WithBundled(bundledCatalogs()))
		require.NoError(t, err)
		require.Equal(t, language.Tag("de"), resolver.Resolve("de-AT"))
	})

	t.Run("unsupported tag falls back and is logged", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		resolver, err := msgkit.New(
			msgkit.WithBundled(bundledCatalogs()),
			msgkit.WithLogger(log),
		)
		require.NoError(t, err)

		require.Equal(t, language.Default, resolver.Resolve("xx"))
		assert.Contains(t, buf.String(), "unsupported language tag")
		assert.Contains(t, buf.String(), "tag=xx")
	})

	t.Run("language without catalog is reported on lookup", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		resolver, err := msgkit.New(
			msgkit.WithBundled(bundledCatalogs()),
			msgkit.WithLogger(log),
		)
		require.NoError(t, err)

		// "fr" is a supported language but no catalog ships for it.
		require.Equal(t, "Goodbye", resolver.T("fr", "bye"))
		assert.Contains(t, buf.String(), "falling back")
		assert.Contains(t, buf.String(), "requested=fr")
	})
}

func TestReload(t *testing.T) {
	t.Parallel()

	t.Run("picks up edited override catalogs", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		resolver, err := msgkit.New(
			msgkit.WithBundled(bundledCatalogs()),
			msgkit.WithOverrideDir(dir),
		)
		require.NoError(t, err)
		require.Equal(t, "Goodbye", resolver.T("en", "bye"))

		edited := []byte("greet=Hello, {name}!\nbye=See you\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, "messages-en.properties"), edited, 0o644))

		require.NoError(t, resolver.Reload())
		require.Equal(t, "See you", resolver.T("en", "bye"))
	})

	t.Run("failed reload keeps the previous bundle", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		resolver, err := msgkit.New(
			msgkit.WithBundled(bundledCatalogs()),
			msgkit.WithOverrideDir(dir),
		)
		require.NoError(t, err)

		broken := []byte("bad=\\uZZZZ\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, "messages-en.properties"), broken, 0o644))

		err = resolver.Reload()
		require.Error(t, err)
		require.ErrorIs(t, err, i18n.ErrMalformedCatalog)

		// Old bundle still serves lookups.
		require.Equal(t, "Goodbye", resolver.T("en", "bye"))
	})
}

func TestTranslator(t *testing.T) {
	t.Parallel()

	resolver, err := msgkit.New(msgkit.WithBundled(bundledCatalogs()))
	require.NoError(t, err)

	tr := resolver.Translator("de")
	require.Equal(t, "Hallo, Welt!", tr.T("greet", i18n.Vars{"name": "Welt"}))
}

// diskFiles is a plain Files implementation for tests.
type diskFiles struct{}

func (diskFiles) Exists(path string) bool             { return fsutil.Exists(path) }
func (diskFiles) EnsureDir(path string) error         { return fsutil.EnsureDir(path) }
func (diskFiles) CopyFS(dst string, fsys fs.FS) error { return fsutil.CopyFS(dst, fsys) }

// recordingFiles wraps a real capability and records bootstrap calls.
type recordingFiles struct {
	msgkit.Files
	ensured []string
	seeded  []string
}

func (f *recordingFiles) EnsureDir(path string) error {
	f.ensured = append(f.ensured, path)
	return f.Files.EnsureDir(path)
}

func (f *recordingFiles) CopyFS(dst string, fsys fs.FS) error {
	f.seeded = append(f.seeded, dst)
	return f.Files.CopyFS(dst, fsys)
}

func TestWithFiles(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "locale")
	files := &recordingFiles{Files: diskFiles{}}

	_, err := msgkit.New(
		msgkit.WithBundled(bundledCatalogs()),
		msgkit.WithOverrideDir(dir),
		msgkit.WithFiles(files),
	)
	require.NoError(t, err)
	require.Equal(t, []string{dir}, files.ensured)
	require.Equal(t, []string{dir}, files.seeded)
}
