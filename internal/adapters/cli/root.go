package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"yt2reader/internal/adapters/cli/tui"
)

var (
	// Global flags
	quietFlag bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "yt2reader",
		Short: "Save YouTube playlists to Readwise Reader",
		Long: `yt2reader extracts the videos of a YouTube playlist page, lets you
curate the list, and saves every video to your Readwise Reader account.

Run without arguments for an interactive menu, or use the subcommands
directly:

  yt2reader extract https://www.youtube.com/playlist?list=PL...
  yt2reader list edit
  yt2reader submit`,
		RunE: runRoot,
	}

	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress progress output")

	rootCmd.AddCommand(NewExtractCmd())
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewExportCmd())
	rootCmd.AddCommand(NewSubmitCmd())
	rootCmd.AddCommand(NewTokenCmd())

	return rootCmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	options := []tui.MenuOption{
		{Label: "Extract a playlist", Value: "extract"},
		{Label: "Review the saved list", Value: "review"},
		{Label: "Submit to Reader", Value: "submit"},
		{Label: "Set API token", Value: "token"},
	}

	selected, err := tui.RunMenu("What would you like to do?", options)
	if err != nil {
		return err
	}

	switch selected {
	case "extract":
		pageURL, err := tui.RunPrompt("Playlist URL:", "https://www.youtube.com/playlist?list=...", false)
		if err != nil {
			return err
		}
		if pageURL == "" {
			fmt.Println("Cancelled")
			return nil
		}
		return runExtractFrom(pageURL)
	case "review":
		return runListEdit()
	case "submit":
		return runSubmit(cmd, nil)
	case "token":
		return runTokenSet(cmd, nil)
	case "":
		fmt.Println("Cancelled")
	}

	return nil
}
