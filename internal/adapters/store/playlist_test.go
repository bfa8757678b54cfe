package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"

	"yt2reader/internal/domain"
)

func TestPlaylistFile_Roundtrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewPlaylistFile(fs, "/data/yt2reader/playlist.json")

	p := &domain.Playlist{
		Title:  "Mix",
		Author: "Chan",
		Items: []domain.Item{
			{Title: "one", URL: "https://www.youtube.com/watch?v=a"},
			{Title: "two", URL: "https://www.youtube.com/watch?v=b"},
		},
		ExtractedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}

	if err := s.Save(context.Background(), p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.Title != "Mix" || got.Author != "Chan" || len(got.Items) != 2 {
		t.Errorf("loaded = %+v", got)
	}
	if got.Items[1].URL != "https://www.youtube.com/watch?v=b" {
		t.Errorf("item order lost: %v", got.Items)
	}
	if !got.ExtractedAt.Equal(p.ExtractedAt) {
		t.Errorf("ExtractedAt = %v", got.ExtractedAt)
	}
}

func TestPlaylistFile_LoadMissing(t *testing.T) {
	s := NewPlaylistFile(afero.NewMemMapFs(), "/nope/playlist.json")

	_, err := s.Load(context.Background())
	if !errors.Is(err, domain.ErrPlaylistNotFound) {
		t.Fatalf("err = %v, want ErrPlaylistNotFound", err)
	}
}

func TestPlaylistFile_Clear(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewPlaylistFile(fs, "/data/playlist.json")

	if err := s.Save(context.Background(), &domain.Playlist{Title: "x"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Clear(context.Background()); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := s.Load(context.Background()); !errors.Is(err, domain.ErrPlaylistNotFound) {
		t.Fatalf("after Clear, err = %v", err)
	}

	// Clearing twice is fine.
	if err := s.Clear(context.Background()); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}
