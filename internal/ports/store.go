package ports

import (
	"context"

	"yt2reader/internal/domain"
)

// PlaylistStore persists the working list between sessions.
type PlaylistStore interface {
	// Load returns the saved playlist, or domain.ErrPlaylistNotFound when
	// nothing has been saved yet.
	Load(ctx context.Context) (*domain.Playlist, error)

	// Save replaces the saved playlist.
	Save(ctx context.Context, p *domain.Playlist) error

	// Clear removes the saved playlist. Clearing an empty store is not an
	// error.
	Clear(ctx context.Context) error
}

// TokenStore supplies the Reader API bearer credential.
type TokenStore interface {
	// Token returns the credential and whether one is configured.
	Token() (string, bool)
}
