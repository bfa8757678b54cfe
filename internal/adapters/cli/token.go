package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"yt2reader/internal/adapters/cli/tui"
	"yt2reader/internal/config"
)

// NewTokenCmd creates the token command
func NewTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the Reader API token",
	}

	setCmd := &cobra.Command{
		Use:   "set [token]",
		Short: "Store the API token in the config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTokenSet,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the configured token (masked)",
		RunE:  runTokenShow,
	}

	cmd.AddCommand(setCmd, showCmd)
	return cmd
}

func runTokenSet(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	var token string
	if len(args) > 0 {
		token = args[0]
	} else {
		token, err = tui.RunPrompt("Reader API token:", "get one at readwise.io/access_token", true)
		if err != nil {
			return err
		}
	}

	token = strings.TrimSpace(token)
	if token == "" {
		fmt.Println("Cancelled")
		return nil
	}

	app.Config.Reader.Token = token
	if err := app.Config.Save(config.ConfigPath()); err != nil {
		return err
	}

	fmt.Println("Token saved")
	return nil
}

func runTokenShow(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	token, ok := app.Tokens.Token()
	if !ok {
		fmt.Println("No token configured")
		return nil
	}

	fmt.Println(maskToken(token))
	return nil
}

// maskToken hides all but the last 4 characters.
func maskToken(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-4) + token[len(token)-4:]
}
