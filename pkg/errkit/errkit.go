package errkit

import "errors"

// maxDepth bounds unwrap traversal against malformed self-referential chains.
const maxDepth = 64

// Cause returns the innermost error of err's unwrap chain: the original
// failure before any fmt.Errorf("%w") wrapping. For joined errors the
// first branch is followed. Returns nil for a nil err.
func Cause(err error) error {
	for depth := 0; err != nil && depth < maxDepth; depth++ {
		next := unwrapFirst(err)
		if next == nil {
			return err
		}
		err = next
	}
	return err
}

// Chain returns err and every error it wraps, outermost first. Joined
// errors contribute all branches in order.
func Chain(err error) []error {
	if err == nil {
		return nil
	}

	var out []error
	visit(err, &out, 0)
	return out
}

func visit(err error, out *[]error, depth int) {
	if err == nil || depth >= maxDepth {
		return
	}
	*out = append(*out, err)

	switch x := err.(type) {
	case interface{ Unwrap() error }:
		visit(x.Unwrap(), out, depth+1)
	case interface{ Unwrap() []error }:
		for _, branch := range x.Unwrap() {
			visit(branch, out, depth+1)
		}
	}
}

// unwrapFirst follows one unwrap step, taking the first branch of a
// joined error.
func unwrapFirst(err error) error {
	switch x := err.(type) {
	case interface{ Unwrap() error }:
		return x.Unwrap()
	case interface{ Unwrap() []error }:
		if branches := x.Unwrap(); len(branches) > 0 {
			return branches[0]
		}
	}
	return nil
}

// HasType reports whether any error in err's chain is of type T.
// It is a generic convenience over errors.As when the target value
// itself is not needed.
func HasType[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}
