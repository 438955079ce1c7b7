package properties

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// lineKind classifies each line of a parsed document.
type lineKind int

const (
	lineBlank   lineKind = iota // blank / whitespace-only line
	lineComment                 // comment line (starts with # or !)
	lineEntry                   // key=value pair
)

// line is a single logical line in the document.
type line struct {
	kind  lineKind
	raw   string // original text for comments and blanks
	key   string // decoded key, only for lineEntry
	value string // decoded value, only for lineEntry
}

// Document is a parsed .properties file. It preserves line order and
// comments so that Marshal reproduces the source structure.
//
// A Document is not safe for concurrent mutation; treat it as read-only
// after parsing or guard Set calls externally.
type Document struct {
	lines []line
	index map[string]int // key -> position in lines
}

// New returns an empty Document.
func New() *Document {
	return &Document{index: make(map[string]int)}
}

// ParseFile reads and parses a .properties file from disk.
// A missing file surfaces as an *os.PathError wrapping fs.ErrNotExist.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("properties: reading %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return doc, nil
}

// Parse parses .properties content.
//
// Grammar: one key=value (or key: value) pair per line; lines whose first
// non-blank character is '#' or '!' are comments; a line ending in an odd
// number of backslashes continues on the next line with its leading
// whitespace skipped; \t \n \r \f \\ \uXXXX and escaped separators are
// decoded. Duplicate keys keep the first position, last value wins.
func Parse(data []byte) (*Document, error) {
	doc := New()

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	raw := strings.Split(text, "\n")
	if len(raw) > 0 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	for i := 0; i < len(raw); i++ {
		trimmed := strings.TrimLeft(raw[i], " \t\f")

		switch {
		case trimmed == "":
			doc.lines = append(doc.lines, line{kind: lineBlank, raw: raw[i]})

		case trimmed[0] == '#' || trimmed[0] == '!':
			doc.lines = append(doc.lines, line{kind: lineComment, raw: raw[i]})

		default:
			logical := trimmed
			lineNo := i + 1
			for hasContinuation(logical) && i+1 < len(raw) {
				i++
				logical = logical[:len(logical)-1] + strings.TrimLeft(raw[i], " \t\f")
			}

			key, value, err := splitEntry(logical)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineNo, err)
			}
			doc.set(key, value)
		}
	}

	return doc, nil
}

// hasContinuation reports whether a logical line ends with an odd number
// of backslashes, meaning the trailing one escapes the line terminator.
func hasContinuation(s string) bool {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// splitEntry splits a logical line at the first unescaped '=' or ':' and
// decodes escapes on both sides. A line without a separator becomes a key
// with an empty value.
func splitEntry(s string) (key, value string, err error) {
	sep := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++ // skip escaped character
		case '=', ':':
			sep = i
		}
		if sep >= 0 {
			break
		}
	}

	rawKey, rawValue := s, ""
	if sep >= 0 {
		rawKey = strings.TrimRight(s[:sep], " \t\f")
		rawValue = strings.TrimLeft(s[sep+1:], " \t\f")
	}

	if key, err = unescape(rawKey); err != nil {
		return "", "", err
	}
	if value, err = unescape(rawValue); err != nil {
		return "", "", err
	}
	if key == "" {
		return "", "", fmt.Errorf("empty key")
	}
	return key, value, nil
}

// unescape decodes backslash escapes. Unknown escapes drop the backslash,
// matching java.util.Properties.
func unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			break // trailing backslash with nothing to escape
		}
		switch s[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 'f':
			b.WriteByte('\f')
		case 'u':
			if i+4 >= len(s) {
				return "", fmt.Errorf("truncated \\u escape")
			}
			code, err := strconv.ParseUint(s[i+1:i+5], 16, 32)
			if err != nil {
				return "", fmt.Errorf("invalid \\u escape %q", s[i+1:i+5])
			}
			b.WriteRune(rune(code))
			i += 4
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String(), nil
}

// set inserts or updates a key. Duplicate keys keep their first position.
func (d *Document) set(key, value string) {
	if idx, ok := d.index[key]; ok {
		d.lines[idx].value = value
		return
	}
	d.index[key] = len(d.lines)
	d.lines = append(d.lines, line{kind: lineEntry, key: key, value: value})
}

// Get returns the value for key and whether it was found.
func (d *Document) Get(key string) (string, bool) {
	if idx, ok := d.index[key]; ok {
		return d.lines[idx].value, true
	}
	return "", false
}

// Set inserts or updates a key. New keys are appended at the end.
func (d *Document) Set(key, value string) {
	d.set(key, value)
}

// Len returns the number of entries.
func (d *Document) Len() int {
	return len(d.index)
}

// Keys returns all keys in document order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.index))
	for _, ln := range d.lines {
		if ln.kind == lineEntry {
			keys = append(keys, ln.key)
		}
	}
	return keys
}

// Map returns a copy of the entries as a plain map.
func (d *Document) Map() map[string]string {
	m := make(map[string]string, len(d.index))
	for _, ln := range d.lines {
		if ln.kind == lineEntry {
			m[ln.key] = ln.value
		}
	}
	return m
}

// Marshal serializes the document back to .properties format.
// Escaping mirrors Parse, so Parse(Marshal(d)) yields an equal map.
func (d *Document) Marshal() []byte {
	var b strings.Builder
	for _, ln := range d.lines {
		switch ln.kind {
		case lineBlank:
			b.WriteByte('\n')
		case lineComment:
			b.WriteString(ln.raw)
			b.WriteByte('\n')
		case lineEntry:
			b.WriteString(escapeKey(ln.key))
			b.WriteByte('=')
			b.WriteString(escapeValue(ln.value))
			b.WriteByte('\n')
		}
	}
	return []byte(b.String())
}

// WriteFile serializes and writes to path, creating parent directories.
func (d *Document) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("properties: mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, d.Marshal(), 0o644); err != nil {
		return fmt.Errorf("properties: writing %s: %w", path, err)
	}
	return nil
}

func escapeKey(s string) string {
	return escape(s, " =:#!")
}

func escapeValue(s string) string {
	// Only a leading space needs protection inside values.
	escaped := escape(s, "")
	if strings.HasPrefix(escaped, " ") {
		escaped = `\` + escaped
	}
	return escaped
}

// escape encodes backslash, control characters, and every byte of extra.
func escape(s, extra string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x80 && strings.ContainsRune(extra, r) {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
