// Package store persists the working list and supplies the API token.
package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"yt2reader/internal/domain"
)

// PlaylistFile keeps the working list as a single JSON document on disk.
type PlaylistFile struct {
	fs   afero.Fs
	path string
}

// NewPlaylistFile creates a playlist store at path.
func NewPlaylistFile(fs afero.Fs, path string) *PlaylistFile {
	return &PlaylistFile{fs: fs, path: path}
}

func (s *PlaylistFile) Load(ctx context.Context) (*domain.Playlist, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, err
	}

	var p domain.Playlist
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PlaylistFile) Save(ctx context.Context, p *domain.Playlist) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.path, data, 0644)
}

func (s *PlaylistFile) Clear(ctx context.Context) error {
	err := s.fs.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
