package language

import (
	"os"
	"strings"
)

// Detect determines the preferred language from the process environment,
// following GNU gettext conventions: LANGUAGE > LC_ALL > LC_MESSAGES > LANG.
// The "C" and "POSIX" locales and unsupported languages are skipped.
// Returns Default when nothing usable is set.
func Detect() Tag {
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(env)
		if val == "" {
			continue
		}

		// LANGUAGE can hold a colon-separated priority list.
		for _, candidate := range strings.Split(val, ":") {
			if candidate == "" || candidate == "C" || candidate == "POSIX" {
				continue
			}
			if tag, err := Parse(candidate); err == nil {
				return tag
			}
		}
	}
	return Default
}
