package properties_test

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgkit/pkg/properties"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("basic pairs", func(t *testing.T) {
		t.Parallel()
		doc, err := properties.Parse([]byte("greet=Hello\nfarewell = Goodbye \n"))
		require.NoError(t, err)

		v, ok := doc.Get("greet")
		require.True(t, ok)
		require.Equal(t, "Hello", v)

		v, ok = doc.Get("farewell")
		require.True(t, ok)
		require.Equal(t, "Goodbye", v)
	})

	t.Run("colon separator", func(t *testing.T) {
		t.Parallel()
		doc, err := properties.Parse([]byte("greet: Hello\n"))
		require.NoError(t, err)

		v, ok := doc.Get("greet")
		require.True(t, ok)
		require.Equal(t, "Hello", v)
	})

	t.Run("comments and blank lines ignored", func(t *testing.T) {
		t.Parallel()
		doc, err := properties.Parse([]byte("# a comment\n! another\n\ngreet=Hello\n"))
		require.NoError(t, err)
		require.Equal(t, 1, doc.Len())
		require.Equal(t, []string{"greet"}, doc.Keys())
	})

	t.Run("line continuation", func(t *testing.T) {
		t.Parallel()
		doc, err := properties.Parse([]byte("list=one,\\\n    two,\\\n    three\n"))
		require.NoError(t, err)

		v, ok := doc.Get("list")
		require.True(t, ok)
		require.Equal(t, "one,two,three", v)
	})

	t.Run("escaped trailing backslash is not a continuation", func(t *testing.T) {
		t.Parallel()
		doc, err := properties.Parse([]byte("path=C\\\\\nnext=ok\n"))
		require.NoError(t, err)

		v, ok := doc.Get("path")
		require.True(t, ok)
		require.Equal(t, `C\`, v)

		_, ok = doc.Get("next")
		require.True(t, ok)
	})

	t.Run("escape sequences", func(t *testing.T) {
		t.Parallel()
		doc, err := properties.Parse([]byte(`msg=line1\nline2\tend \u0041`))
		require.NoError(t, err)

		v, ok := doc.Get("msg")
		require.True(t, ok)
		require.Equal(t, "line1\nline2\tend A", v)
	})

	t.Run("escaped separator in key", func(t *testing.T) {
		t.Parallel()
		doc, err := properties.Parse([]byte(`a\=b=c`))
		require.NoError(t, err)

		v, ok := doc.Get("a=b")
		require.True(t, ok)
		require.Equal(t, "c", v)
	})

	t.Run("unknown escape drops the backslash", func(t *testing.T) {
		t.Parallel()
		doc, err := properties.Parse([]byte(`msg=a\zb`))
		require.NoError(t, err)

		v, _ := doc.Get("msg")
		require.Equal(t, "azb", v)
	})

	t.Run("invalid unicode escape", func(t *testing.T) {
		t.Parallel()
		_, err := properties.Parse([]byte("ok=fine\nbad=\\uZZZZ\n"))
		require.Error(t, err)
		require.ErrorIs(t, err, properties.ErrMalformed)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("empty key", func(t *testing.T) {
		t.Parallel()
		_, err := properties.Parse([]byte("=value\n"))
		require.Error(t, err)
		require.ErrorIs(t, err, properties.ErrMalformed)
	})

	t.Run("missing separator yields empty value", func(t *testing.T) {
		t.Parallel()
		doc, err := properties.Parse([]byte("standalone\n"))
		require.NoError(t, err)

		v, ok := doc.Get("standalone")
		require.True(t, ok)
		require.Equal(t, "", v)
	})

	t.Run("duplicate key keeps last value and first position", func(t *testing.T) {
		t.Parallel()
		doc, err := properties.Parse([]byte("a=1\nb=2\na=3\n"))
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b"}, doc.Keys())

		v, _ := doc.Get("a")
		require.Equal(t, "3", v)
	})

	t.Run("windows line endings", func(t *testing.T) {
		t.Parallel()
		doc, err := properties.Parse([]byte("a=1\r\nb=2\r\n"))
		require.NoError(t, err)
		require.Equal(t, map[string]string{"a": "1", "b": "2"}, doc.Map())
	})
}

func TestDocumentMutation(t *testing.T) {
	t.Parallel()

	t.Run("set updates existing key in place", func(t *testing.T) {
		t.Parallel()
		doc, err := properties.Parse([]byte("a=1\nb=2\n"))
		require.NoError(t, err)

		doc.Set("a", "changed")
		v, _ := doc.Get("a")
		require.Equal(t, "changed", v)
		require.Equal(t, []string{"a", "b"}, doc.Keys())
	})

	t.Run("set appends new key", func(t *testing.T) {
		t.Parallel()
		doc := properties.New()
		doc.Set("fresh", "value")
		require.Equal(t, 1, doc.Len())

		v, ok := doc.Get("fresh")
		require.True(t, ok)
		require.Equal(t, "value", v)
	})

	t.Run("map returns a copy", func(t *testing.T) {
		t.Parallel()
		doc := properties.New()
		doc.Set("a", "1")

		m := doc.Map()
		m["a"] = "mutated"

		v, _ := doc.Get("a")
		require.Equal(t, "1", v)
	})
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	t.Run("round trip preserves entries", func(t *testing.T) {
		t.Parallel()
		src := "# header\n\ngreet=Hello, {name}!\nmulti=line1\\nline2\ntab=a\\tb\n"
		doc, err := properties.Parse([]byte(src))
		require.NoError(t, err)

		again, err := properties.Parse(doc.Marshal())
		require.NoError(t, err)
		require.Equal(t, doc.Map(), again.Map())
	})

	t.Run("preserves comments and blank lines", func(t *testing.T) {
		t.Parallel()
		src := "# header\n\na=1\n"
		doc, err := properties.Parse([]byte(src))
		require.NoError(t, err)
		require.Equal(t, src, string(doc.Marshal()))
	})

	t.Run("escapes separators in keys", func(t *testing.T) {
		t.Parallel()
		doc := properties.New()
		doc.Set("a=b", "c")

		again, err := properties.Parse(doc.Marshal())
		require.NoError(t, err)

		v, ok := again.Get("a=b")
		require.True(t, ok)
		require.Equal(t, "c", v)
	})
}

func TestFileIO(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := properties.ParseFile(filepath.Join(t.TempDir(), "nope.properties"))
		require.Error(t, err)
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("write and read back", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "nested", "dir", "messages-en.properties")

		doc := properties.New()
		doc.Set("greet", "Hello, {name}!")
		require.NoError(t, doc.WriteFile(path))

		again, err := properties.ParseFile(path)
		require.NoError(t, err)
		require.Equal(t, doc.Map(), again.Map())
	})

	t.Run("load twice yields identical mappings", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "messages-en.properties")

		doc := properties.New()
		doc.Set("a", "1")
		doc.Set("b", "2")
		require.NoError(t, doc.WriteFile(path))

		first, err := properties.ParseFile(path)
		require.NoError(t, err)
		second, err := properties.ParseFile(path)
		require.NoError(t, err)
		require.Equal(t, first.Map(), second.Map())
	})
}
