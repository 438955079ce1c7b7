package properties

import "errors"

// ErrMalformed reports content that cannot be parsed as key=value lines,
// such as an invalid \u escape. Wrapped errors carry the line number.
var ErrMalformed = errors.New("properties: malformed content")
