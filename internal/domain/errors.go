package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are missing or empty
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrFetchFailed is returned when the product page cannot be retrieved
	ErrFetchFailed = errors.New("failed to fetch product page")

	// ErrEmptyDocument is returned when the fetched page has no usable content
	ErrEmptyDocument = errors.New("fetched page is empty")

	// ErrCompletionFailed is returned when the chat-completion request fails
	// at the transport level (the completion client absorbs this into a
	// fallback record; it never reaches the HTTP layer)
	ErrCompletionFailed = errors.New("chat completion request failed")
)
