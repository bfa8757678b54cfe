package application

import (
	"strings"

	"yt2reader/internal/domain"
	"yt2reader/internal/ports"
)

// channelNameSelector locates the uploader name; the lookup is
// independent of which video strategy matched.
const channelNameSelector = "ytd-channel-name #text"

// ExtractResult is what the cascade found on a page.
type ExtractResult struct {
	Items  []domain.Item
	Author string // empty when no channel name element was found
}

// linkStrategy is one way of finding video links on a page. Strategies
// are tried in order; the first one yielding any item wins.
type linkStrategy struct {
	name     string
	selector string
	item     func(ports.Element) (domain.Item, bool)
}

var watchStrategies = []linkStrategy{
	{
		name:     "video-title",
		selector: "a#video-title",
		item:     canonicalItem,
	},
	{
		name:     "playlist-renderer",
		selector: "a.yt-simple-endpoint.style-scope.ytd-playlist-video-renderer",
		item:     watchHrefItem(domain.WatchPathMarker),
	},
	{
		name:     "compact-renderer",
		selector: "a.yt-simple-endpoint.style-scope.ytd-compact-video-renderer",
		item:     watchHrefItem(domain.WatchPathMarker),
	},
	{
		name:     "any-anchor",
		selector: "a",
		item:     watchHrefItem("youtube.com/" + domain.WatchPathMarker),
	},
}

// ExtractService applies the selector cascade to a document. It is a pure
// read: no side effects, and a page with no recognizable videos yields an
// empty result, not an error.
type ExtractService struct{}

// NewExtractService creates an extraction service.
func NewExtractService() *ExtractService {
	return &ExtractService{}
}

// Extract returns the de-duplicated, order-preserving video list found by
// the most specific matching strategy, plus the channel name when present.
func (s *ExtractService) Extract(doc ports.Document) ExtractResult {
	var items []domain.Item
	for _, st := range watchStrategies {
		items = collectItems(doc, st)
		if len(items) > 0 {
			break
		}
	}

	result := ExtractResult{Items: domain.DedupeItems(items)}

	if els := doc.Select(channelNameSelector); len(els) > 0 {
		result.Author = strings.TrimSpace(els[0].Text())
	}

	return result
}

func collectItems(doc ports.Document, st linkStrategy) []domain.Item {
	var items []domain.Item
	for _, el := range doc.Select(st.selector) {
		// A malformed element is skipped, never fatal.
		if it, ok := st.item(el); ok {
			items = append(items, it)
		}
	}
	return items
}

// canonicalItem parses the href and rebuilds the canonical watch URL from
// its v parameter. Elements without a usable v parameter are discarded.
func canonicalItem(el ports.Element) (domain.Item, bool) {
	href, ok := el.Attr("href")
	if !ok {
		return domain.Item{}, false
	}

	watchURL, ok := domain.ParseWatchURL(href)
	if !ok {
		return domain.Item{}, false
	}

	return domain.Item{Title: elementTitle(el), URL: watchURL}, true
}

// watchHrefItem keeps the raw href when it contains the given watch-link
// marker.
func watchHrefItem(marker string) func(ports.Element) (domain.Item, bool) {
	return func(el ports.Element) (domain.Item, bool) {
		href, ok := el.Attr("href")
		if !ok || !strings.Contains(href, marker) {
			return domain.Item{}, false
		}
		return domain.Item{Title: elementTitle(el), URL: href}, true
	}
}

func elementTitle(el ports.Element) string {
	if title, ok := el.Attr("title"); ok && strings.TrimSpace(title) != "" {
		return strings.TrimSpace(title)
	}
	return strings.TrimSpace(el.Text())
}
