package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/newsdesk/commentscan/internal/config"
)

//go:embed templates/commentscan.yaml
var configTemplate embed.FS

// configFileName is the default configuration file name.
const configFileName = config.DefaultConfigFile

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new commentscan configuration file",
		Long: `Initialize creates a new .commentscan configuration file in the current directory.

The generated file documents every site setting with its default value:
- Base URL and URL templates for listings, comment pages and reactions
- CSS selectors used to extract articles and comments
- Timestamp layout, session cookie and extra request headers

Examples:
  # Create .commentscan in current directory
  commentscan init

  # Create config file at a specific path
  commentscan init -o ~/.config/commentscan/config.yaml

  # Force overwrite existing file
  commentscan init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile("templates/commentscan.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to adapt commentscan to a site, for example:")
	fmt.Fprintln(out, "  - Base URL and URL templates")
	fmt.Fprintln(out, "  - CSS selectors for articles and comments")
	fmt.Fprintln(out, "  - Session cookie and request headers")

	return nil
}
