package ports

import "context"

// Element is one matched node of a page.
type Element interface {
	// Attr returns the named attribute and whether it exists.
	Attr(name string) (string, bool)

	// Text returns the visible text content.
	Text() string
}

// Document is a read-only query capability over a fetched page. Extraction
// strategies are expressed as selectors against it, so page-structure
// knowledge stays out of the de-dup and retry logic.
type Document interface {
	// Select returns all elements matching the CSS selector, in document
	// order. An unmatched selector returns an empty slice.
	Select(selector string) []Element
}

// PageFetcher retrieves a page and exposes it as a Document.
type PageFetcher interface {
	FetchDocument(ctx context.Context, pageURL string) (Document, error)
}
