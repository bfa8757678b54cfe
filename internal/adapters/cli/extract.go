package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"yt2reader/internal/adapters/scrape"
	"yt2reader/internal/domain"
	"yt2reader/internal/ports"
)

var extractTitleFlag string

// NewExtractCmd creates the extract command
func NewExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <url|file.html>",
		Short: "Extract playlist videos from a page",
		Long: `Extract the video list from a YouTube playlist page and save it as
the working list. The argument is either a page URL or a locally saved
HTML file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtractFrom(args[0])
		},
	}

	cmd.Flags().StringVar(&extractTitleFlag, "title", "", "Override the playlist title")

	return cmd
}

func runExtractFrom(source string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	ctx := context.Background()

	doc, err := loadDocument(ctx, app, source)
	if err != nil {
		return err
	}

	result := app.ExtractSvc.Extract(doc)
	if len(result.Items) == 0 {
		return domain.ErrNoVideosFound
	}

	title := extractTitleFlag
	if title == "" {
		title = strings.TrimSpace(scrape.PageTitle(doc))
	}

	playlist := &domain.Playlist{
		Title:       title,
		Author:      result.Author,
		Items:       result.Items,
		ExtractedAt: time.Now(),
	}

	if err := app.PlaylistSvc.Save(ctx, playlist); err != nil {
		return fmt.Errorf("failed to save working list: %w", err)
	}

	if !quietFlag {
		fmt.Printf("Extracted %d videos from %q\n", len(playlist.Items), playlist.Title)
		if playlist.Author != "" {
			fmt.Printf("Channel: %s\n", playlist.Author)
		}
		fmt.Println("Run 'yt2reader list edit' to curate, 'yt2reader submit' to save to Reader.")
	}
	return nil
}

// loadDocument treats an existing file path as a saved page, anything
// else as a URL to fetch.
func loadDocument(ctx context.Context, app *App, source string) (ports.Document, error) {
	if fi, err := os.Stat(source); err == nil && !fi.IsDir() {
		f, err := os.Open(source)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return scrape.NewDocumentFromReader(f)
	}

	doc, err := app.Fetcher.FetchDocument(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	return doc, nil
}
