package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"yt2reader/internal/adapters/cli/tui"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the working list",
		RunE:  runListShow,
	}

	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Interactively pick which videos to keep",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListEdit()
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <file>",
		Short: "Replace the working list with URLs from a file",
		Long: `Replace the working list with the URLs in the given file, one per
line. Blank lines and lines starting with # are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: runListSet,
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the working list",
		RunE:  runListClear,
	}

	cmd.AddCommand(editCmd, setCmd, clearCmd)
	return cmd
}

func runListShow(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	playlist, err := app.PlaylistSvc.Load(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Playlist: %s | %d videos | Extracted: %s\n\n",
		playlist.Title, len(playlist.Items), playlist.ExtractedAt.Format("2006-01-02 15:04"))
	for i, it := range playlist.Items {
		fmt.Printf("%3d. %s\n", i+1, tui.FormatItemLine(it, 50))
	}
	return nil
}

func runListEdit() error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	ctx := context.Background()

	playlist, err := app.PlaylistSvc.Load(ctx)
	if err != nil {
		return err
	}

	kept, err := tui.RunItemSelector(playlist.Items)
	if err != nil {
		return err
	}
	if kept == nil {
		fmt.Println("Cancelled")
		return nil
	}

	updated, err := app.PlaylistSvc.Keep(ctx, kept)
	if err != nil {
		return err
	}

	fmt.Printf("Kept %d of %d videos\n", len(updated.Items), len(playlist.Items))
	return nil
}

func runListSet(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	lines, err := ReadURLLines(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	playlist, err := app.PlaylistSvc.Replace(context.Background(), lines)
	if err != nil {
		return err
	}

	fmt.Printf("Working list replaced: %d videos\n", len(playlist.Items))
	return nil
}

func runListClear(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	if err := app.PlaylistSvc.Clear(context.Background()); err != nil {
		return err
	}
	fmt.Println("Working list cleared")
	return nil
}
