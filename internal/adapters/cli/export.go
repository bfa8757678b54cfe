package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var exportOutputFlag string

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the working list's URLs, one per line",
		RunE:  runExport,
	}

	cmd.Flags().StringVarP(&exportOutputFlag, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	playlist, err := app.PlaylistSvc.Load(context.Background())
	if err != nil {
		return err
	}

	text := strings.Join(playlist.URLs(), "\n") + "\n"

	if exportOutputFlag == "" {
		fmt.Print(text)
		return nil
	}

	if err := os.WriteFile(exportOutputFlag, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutputFlag, err)
	}
	if !quietFlag {
		fmt.Printf("Wrote %d URLs to %s\n", len(playlist.Items), exportOutputFlag)
	}
	return nil
}
