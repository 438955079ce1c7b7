package language

import "errors"

// ErrUnsupported reports a language tag outside the supported set.
// Callers typically fall back to Default and log the event.
var ErrUnsupported = errors.New("language: unsupported tag")
