// Package initcmd contains the definition for the comicfetch init command.
package initcmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/solenware/comicfetch/internal/core/comic"
	"github.com/solenware/comicfetch/internal/core/config"
)

// Helper function to prompt user and get input with a default value
func promptWithDefault(reader *bufio.Reader, promptText string, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Printf("%s (default: %s): ", promptText, defaultValue)
	} else {
		fmt.Printf("%s: ", promptText)
	}

	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input for '%s': %w", promptText, err)
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue, nil
	}
	return input, nil
}

// NewInitCommand returns the definition for the "init" command.
func NewInitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize a comic project (creates comic.toml)",
		Action: func(c *cli.Context) error {
			fmt.Println("Starting comic initialization...")

			reader := bufio.NewReader(os.Stdin)

			name, err := promptWithDefault(reader, "Comic name", "issue-1-hq")
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			description, err := promptWithDefault(reader, "Description (optional)", "")
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			manifestPath, err := promptWithDefault(reader, "Manifest path", comic.DefaultManifest)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			outputDir, err := promptWithDefault(reader, "Output directory", comic.DefaultOutput)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			cfg := comic.NewComic()
			cfg.Meta.Name = name
			cfg.Meta.Description = description
			cfg.Pages.Manifest = manifestPath
			cfg.Pages.Output = outputDir

			if err := config.WriteComicToml(".", cfg); err != nil {
				return cli.Exit(fmt.Sprintf("Error writing %s: %v", config.ComicTomlName, err), 1)
			}

			fmt.Printf("\nWrote to %s\n", config.ComicTomlName)

			return nil
		},
	}
}
