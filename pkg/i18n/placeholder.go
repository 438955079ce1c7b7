package i18n

import "strings"

// Vars supplies values for placeholder substitution.
type Vars = map[string]string

// Replace substitutes {name} placeholder tokens in the template with values
// from vars. A token whose name has no entry in vars is left verbatim, and
// vars entries that the template never references are ignored.
//
// Example:
//
//	Replace("Hello, {name}!", Vars{"name": "World"}) // "Hello, World!"
//	Replace("Hi, {who}!", Vars{"name": "World"})     // "Hi, {who}!"
func Replace(template string, vars Vars) string {
	if len(vars) == 0 || !strings.Contains(template, "{") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	i := 0
	for i < len(template) {
		open := strings.IndexByte(template[i:], '{')
		if open < 0 {
			b.WriteString(template[i:])
			break
		}
		open += i

		end := strings.IndexByte(template[open:], '}')
		if end < 0 {
			b.WriteString(template[i:])
			break
		}
		end += open

		name := template[open+1 : end]
		value, ok := vars[name]
		if !ok {
			// Unknown token stays literal; resume after the brace.
			b.WriteString(template[i : open+1])
			i = open + 1
			continue
		}

		b.WriteString(template[i:open])
		b.WriteString(value)
		i = end + 1
	}

	return b.String()
}

// mergeVars flattens a variadic list of maps into one, later maps winning.
func mergeVars(vars []Vars) Vars {
	switch len(vars) {
	case 0:
		return nil
	case 1:
		return vars[0]
	}

	merged := make(Vars)
	for _, v := range vars {
		for key, value := range v {
			merged[key] = value
		}
	}
	return merged
}
