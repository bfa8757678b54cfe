package application

import (
	"context"
	"strings"
	"time"

	"yt2reader/internal/domain"
	"yt2reader/internal/ports"
)

// PlaylistService handles the working list between extraction and
// submission: loading, curation edits, clearing.
type PlaylistService struct {
	store ports.PlaylistStore
}

// NewPlaylistService creates a new playlist service.
func NewPlaylistService(store ports.PlaylistStore) *PlaylistService {
	return &PlaylistService{store: store}
}

// Load returns the saved working list.
func (s *PlaylistService) Load(ctx context.Context) (*domain.Playlist, error) {
	return s.store.Load(ctx)
}

// Save persists the working list.
func (s *PlaylistService) Save(ctx context.Context, p *domain.Playlist) error {
	return s.store.Save(ctx, p)
}

// Clear removes the working list.
func (s *PlaylistService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// Keep retains only the items whose URL appears in urls, preserving list
// order, and persists the result.
func (s *PlaylistService) Keep(ctx context.Context, urls []string) (*domain.Playlist, error) {
	p, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	keep := make(map[string]bool, len(urls))
	for _, u := range urls {
		keep[u] = true
	}

	kept := make([]domain.Item, 0, len(p.Items))
	for _, it := range p.Items {
		if keep[it.URL] {
			kept = append(kept, it)
		}
	}
	p.Items = kept

	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Replace rebuilds the working list from raw URL lines, as when the user
// hand-edits the list. Blank lines are dropped; order and duplicates are
// cleaned up the same way extraction output is.
func (s *PlaylistService) Replace(ctx context.Context, lines []string) (*domain.Playlist, error) {
	items := make([]domain.Item, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, domain.Item{URL: line})
	}
	items = domain.DedupeItems(items)

	p, err := s.store.Load(ctx)
	if err == domain.ErrPlaylistNotFound {
		p = &domain.Playlist{Title: "Custom Playlist"}
	} else if err != nil {
		return nil, err
	}

	p.Items = items
	p.ExtractedAt = time.Now()

	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
