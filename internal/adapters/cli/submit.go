package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"yt2reader/internal/adapters/cli/tui"
	"yt2reader/internal/domain"
)

var (
	submitLocationFlag string
	submitDryRunFlag   bool
)

// NewSubmitCmd creates the submit command
func NewSubmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Save the working list to Readwise Reader",
		Long: `Save every video of the working list to Readwise Reader, one at a
time. Rate limits (HTTP 429) are obeyed: the run waits the advertised
Retry-After and retries the video after the rest of the queue. A video
that keeps being rate limited is retried without bound; press Ctrl-C to
stop and keep the partial result.`,
		RunE: runSubmit,
	}

	cmd.Flags().StringVar(&submitLocationFlag, "location", "", "Reader location: new, later, archive or feed (default from config)")
	cmd.Flags().BoolVar(&submitDryRunFlag, "dry-run", false, "Print the request bodies instead of calling the API")

	return cmd
}

func runSubmit(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	location := submitLocationFlag
	if location == "" {
		location = app.Config.Defaults.Location
	}
	if !domain.ValidLocation(location) {
		return domain.ErrInvalidLocation
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	playlist, err := app.PlaylistSvc.Load(ctx)
	if err != nil {
		return err
	}

	meta := domain.CollectionMeta{
		Title:    playlist.Title,
		Author:   playlist.Author,
		Location: location,
	}

	if submitDryRunFlag {
		return printDryRun(playlist.Items, meta)
	}

	token, ok := app.Tokens.Token()
	if !ok {
		return domain.ErrMissingToken
	}

	progress := tui.NewSubmitProgress(len(playlist.Items), quietFlag)

	report, err := app.SubmitSvc.Run(ctx, playlist.Items, token, meta, progress.Handle)
	if errors.Is(err, context.Canceled) {
		fmt.Println("\nInterrupted")
		err = nil
	}
	if err != nil {
		return err
	}

	progress.Complete(report)

	if !report.AllSucceeded() {
		return fmt.Errorf("%d of %d videos failed", report.FailureCount, len(playlist.Items))
	}
	return nil
}

func printDryRun(items []domain.Item, meta domain.CollectionMeta) error {
	for _, it := range items {
		body, err := json.Marshal(domain.NewSubmissionRequest(it, meta))
		if err != nil {
			return err
		}
		fmt.Println(string(body))
	}
	return nil
}
