package domain

import "errors"

// Sentinel errors for the stock domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested stock item does not exist.
	ErrItemNotFound = errors.New("stock item not found")

	// ErrItemAlreadyExists indicates an item with the same unique constraint already exists.
	ErrItemAlreadyExists = errors.New("stock item already exists")

	// ErrInvalidItem indicates a stock item field violates domain constraints.
	ErrInvalidItem = errors.New("invalid stock item")

	// ErrEmptyImport indicates a bulk name import contained no usable lines.
	ErrEmptyImport = errors.New("import contains no names")

	// ErrSuggestionInFlight indicates a suggestion call is already running
	// for this caller; the client should wait for it to finish.
	ErrSuggestionInFlight = errors.New("suggestion request already in flight")

	// ErrSuggestionUnavailable indicates the text-generation backend could
	// not produce a result after all retries.
	ErrSuggestionUnavailable = errors.New("suggestion service unavailable")
)
