package fetch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/solenware/comicfetch/internal/core/config"
	"github.com/solenware/comicfetch/internal/core/downloader"
	"github.com/solenware/comicfetch/internal/core/manifest"
)

// tally counts per-entry outcomes for the completion line.
type tally struct {
	downloaded int
	failed     int
	skipped    int
}

// NewFetchCommand creates a new cli.Command for the "fetch" command.
func NewFetchCommand() *cli.Command {
	return &cli.Command{
		Name:  "fetch",
		Usage: "Downloads every page image listed in the comic manifest",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "manifest",
				Aliases: []string{"m"},
				Usage:   "Path to the manifest file (defaults to comic.toml, then the built-in path)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Directory to write page images into",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output",
			},
		},
		Action: fetchAction,
	}
}

func fetchAction(c *cli.Context) error {
	verbose := c.Bool("verbose")

	pages, err := config.ResolvePages(c.String("manifest"), c.String("output"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error loading %s: %v", config.ComicTomlName, err), 1)
	}
	timeout := time.Duration(pages.TimeoutSeconds) * time.Second

	if verbose {
		fmt.Printf("Manifest: %s\n", pages.Manifest)
		fmt.Printf("Output directory: %s\n", pages.Output)
		fmt.Printf("Request timeout: %s\n", timeout)
	}

	if err := os.MkdirAll(pages.Output, 0755); err != nil {
		return cli.Exit(fmt.Sprintf("Error creating output directory '%s': %v", pages.Output, err), 1)
	}

	entries, err := manifest.Load(pages.Manifest)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error reading manifest '%s': %v", pages.Manifest, err), 1)
	}

	failedColor := color.New(color.FgRed, color.Bold).SprintFunc()
	doneColor := color.New(color.FgGreen, color.Bold).SprintFunc()

	var t tally
	for _, entry := range entries {
		// Non-URL lines consume their position but produce nothing.
		if !entry.IsURL() {
			t.skipped++
			if verbose {
				fmt.Printf("Skipping line %d: not a URL\n", entry.Position)
			}
			continue
		}

		outputPath := filepath.Join(pages.Output, entry.PageFilename())
		fmt.Printf("Downloading %s -> %s\n", entry.Text, outputPath)

		body, err := downloader.DownloadFileTimeout(entry.Text, timeout)
		if err != nil {
			fmt.Printf("  %s: %v\n", failedColor("FAILED"), err)
			t.failed++
			continue
		}

		if err := os.WriteFile(outputPath, body, 0644); err != nil {
			fmt.Printf("  %s: %v\n", failedColor("FAILED"), err)
			t.failed++
			continue
		}
		t.downloaded++
	}

	fmt.Printf("%s %d downloaded, %d failed, %d skipped.\n",
		doneColor("Done."), t.downloaded, t.failed, t.skipped)

	return nil
}
