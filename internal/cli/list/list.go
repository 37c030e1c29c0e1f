package list

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/solenware/comicfetch/internal/core/config"
	"github.com/solenware/comicfetch/internal/core/manifest"
)

// pageDisplayInfo holds all information needed for displaying a manifest entry.
type pageDisplayInfo struct {
	Position int
	Text     string
	Filename string
	Status   string
}

const (
	statusDownloaded = "downloaded"
	statusMissing    = "missing"
	statusSkipped    = "skipped"
)

// NewListCommand creates a new cli.Command for the 'list' command.
func NewListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "Displays manifest entries and their download status",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "manifest",
				Aliases: []string{"m"},
				Usage:   "Path to the manifest file",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Directory page images were written into",
			},
		},
		Action: func(c *cli.Context) error {
			pages, err := config.ResolvePages(c.String("manifest"), c.String("output"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error loading %s: %v", config.ComicTomlName, err), 1)
			}

			entries, err := manifest.Load(pages.Manifest)
			if err != nil {
				if os.IsNotExist(err) {
					return cli.Exit(fmt.Sprintf("Error: manifest '%s' not found.", pages.Manifest), 1)
				}
				return cli.Exit(fmt.Sprintf("Error reading manifest '%s': %v", pages.Manifest, err), 1)
			}

			var display []pageDisplayInfo
			for _, entry := range entries {
				info := pageDisplayInfo{
					Position: entry.Position,
					Text:     entry.Text,
					Filename: entry.PageFilename(),
				}
				switch {
				case !entry.IsURL():
					info.Status = statusSkipped
					info.Filename = "-"
				default:
					if _, statErr := os.Stat(filepath.Join(pages.Output, entry.PageFilename())); statErr == nil {
						info.Status = statusDownloaded
					} else {
						info.Status = statusMissing
					}
				}
				display = append(display, info)
			}

			headerColor := color.New(color.FgCyan, color.Bold).SprintFunc()
			pathColor := color.New(color.FgHiBlack).SprintFunc()
			downloadedColor := color.New(color.FgGreen).SprintFunc()
			missingColor := color.New(color.FgYellow).SprintFunc()
			skippedColor := color.New(color.FgHiBlack).SprintFunc()

			fmt.Printf("%s %s\n", headerColor("Manifest:"), pathColor(pages.Manifest))
			fmt.Printf("%s %s\n", headerColor("Output:"), pathColor(pages.Output))
			fmt.Println()

			if len(display) == 0 {
				fmt.Println("(Manifest is empty)")
				return nil
			}

			for _, info := range display {
				// Pad before coloring; ANSI escapes would break %-11s widths.
				padded := fmt.Sprintf("%-11s", info.Status)
				var status string
				switch info.Status {
				case statusDownloaded:
					status = downloadedColor(padded)
				case statusMissing:
					status = missingColor(padded)
				default:
					status = skippedColor(padded)
				}
				fmt.Printf("%3d  %-12s %s %s\n", info.Position, info.Filename, status, info.Text)
			}

			return nil
		},
	}
}
