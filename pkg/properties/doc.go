// Package properties implements reading and writing of Java-style
// .properties files, the flat key=value catalog format used for message
// catalogs.
//
// The format follows java.util.Properties conventions: one key=value (or
// key: value) pair per line, '#' and '!' comment lines, backslash line
// continuation, and \t \n \r \f \uXXXX escapes. Parsed documents preserve
// line order and comments, so a parse/marshal round trip reproduces the
// source structure.
//
// # Usage
//
//	doc, err := properties.Parse([]byte("greet=Hello, {name}!\n"))
//	if err != nil {
//		return err
//	}
//	v, ok := doc.Get("greet") // "Hello, {name}!", true
//
// Documents read from disk with ParseFile report a missing file via the
// wrapped fs.ErrNotExist and unparseable content via ErrMalformed.
package properties
