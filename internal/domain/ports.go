package domain

import "context"

// PageFetcher defines the interface for retrieving raw page markup.
type PageFetcher interface {
	FetchPage(ctx context.Context, url string) (string, error)
}

// CompletionClient defines the interface for turning an assembled prompt into
// a normalized ProductRecord. Implementations must self-heal: any transport or
// parse failure yields a fallback record, never an error.
type CompletionClient interface {
	CompleteProduct(ctx context.Context, apiKey, url, prompt string) CompletionResult
}
