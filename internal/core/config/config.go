package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/solenware/comicfetch/internal/core/comic"
)

const ComicTomlName = "comic.toml"

// LoadComicToml reads the comic.toml file from the given dirPath and unmarshals it.
func LoadComicToml(dirPath string) (*comic.Comic, error) {
	fullPath := filepath.Join(dirPath, ComicTomlName)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, err
	}

	var c comic.Comic
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// WriteComicToml marshals the Comic data and writes it to the specified dirPath.
// It will overwrite the file if it already exists.
func WriteComicToml(dirPath string, data *comic.Comic) error {
	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(data); err != nil {
		return err
	}

	fullPath := filepath.Join(dirPath, ComicTomlName)
	file, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	_, err = file.Write(buf.Bytes())
	return err
}

// ResolvePages returns the effective page settings for a command run in the
// current directory. Flag values win over comic.toml, which wins over the
// built-in defaults; a missing comic.toml is not an error.
func ResolvePages(manifestFlag, outputFlag string) (comic.Pages, error) {
	pages := comic.Pages{
		Manifest: manifestFlag,
		Output:   outputFlag,
	}

	if pages.Manifest == "" || pages.Output == "" {
		c, err := LoadComicToml(".")
		if err != nil && !os.IsNotExist(err) {
			return comic.Pages{}, err
		}
		if err == nil {
			if pages.Manifest == "" {
				pages.Manifest = c.Pages.Manifest
			}
			if pages.Output == "" {
				pages.Output = c.Pages.Output
			}
			pages.TimeoutSeconds = c.Pages.TimeoutSeconds
		}
	}

	if pages.Manifest == "" {
		pages.Manifest = comic.DefaultManifest
	}
	if pages.Output == "" {
		pages.Output = comic.DefaultOutput
	}
	if pages.TimeoutSeconds <= 0 {
		pages.TimeoutSeconds = comic.DefaultTimeoutSeconds
	}

	return pages, nil
}
