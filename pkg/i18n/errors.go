package i18n

import "errors"

var (
	// ErrNotFound reports a catalog source that is missing or unreadable.
	ErrNotFound = errors.New("i18n: catalog source not found")
	// ErrMalformedCatalog reports a catalog file that cannot be parsed.
	// Wrapped errors name the offending file.
	ErrMalformedCatalog = errors.New("i18n: malformed catalog")
	// ErrEmptyLanguage reports a catalog without a language tag.
	ErrEmptyLanguage = errors.New("i18n: catalog language cannot be empty")
	// ErrNilCatalog reports a nil catalog passed to WithCatalog.
	ErrNilCatalog = errors.New("i18n: catalog cannot be nil")
	// ErrDuplicateCatalog reports two WithCatalog options for one language.
	ErrDuplicateCatalog = errors.New("i18n: duplicate catalog for language")
)
