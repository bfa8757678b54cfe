package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// WatchPathMarker is the substring that identifies a canonical watch link.
const WatchPathMarker = "watch?v="

// Item is one video eligible for submission. URL is the identity used
// for de-duplication; Title may be empty.
type Item struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Playlist is the working list carried between extraction, curation and
// submission. It is an explicit value passed around, never a singleton.
type Playlist struct {
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	Items       []Item    `json:"items"`
	ExtractedAt time.Time `json:"extracted_at"`
}

// URLs returns the item URLs in order.
func (p *Playlist) URLs() []string {
	urls := make([]string, 0, len(p.Items))
	for _, it := range p.Items {
		urls = append(urls, it.URL)
	}
	return urls
}

// Valid video ID pattern (alphanumeric, dash, underscore)
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ParseWatchURL extracts the video ID from a YouTube link and returns the
// canonical watch URL. Returns false for malformed links or links without
// a usable v parameter.
func ParseWatchURL(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}

	id := u.Query().Get("v")
	if id == "" || !videoIDPattern.MatchString(id) {
		return "", false
	}

	return fmt.Sprintf("https://www.youtube.com/%s%s", WatchPathMarker, id), true
}

// DedupeItems removes items whose URL was already seen, preserving
// first-seen order. Titles are not part of the identity.
func DedupeItems(items []Item) []Item {
	seen := make(map[string]bool, len(items))
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if seen[it.URL] {
			continue
		}
		seen[it.URL] = true
		out = append(out, it)
	}
	return out
}
