package comic

// Defaults reproduce the zero-configuration run: a manifest extracted from
// the issue markdown, images written next to it.
const (
	DefaultManifest       = "comics/issue-1-hq.md"
	DefaultOutput         = "comics/issue-1-hq-images"
	DefaultTimeoutSeconds = 30
)

// Comic represents the overall structure of the comic.toml file.
type Comic struct {
	Meta  *Meta `toml:"comic"`
	Pages Pages `toml:"pages"`
}

// Meta holds metadata for the comic issue.
type Meta struct {
	Name        string `toml:"name"`
	Description string `toml:"description,omitempty"`
}

// Pages locates the manifest and the output directory for page images.
type Pages struct {
	Manifest       string `toml:"manifest"`
	Output         string `toml:"output"`
	TimeoutSeconds int    `toml:"timeout_seconds,omitempty"`
}

// NewComic creates and returns a new Comic instance with default paths.
func NewComic() *Comic {
	return &Comic{
		Meta: &Meta{},
		Pages: Pages{
			Manifest:       DefaultManifest,
			Output:         DefaultOutput,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
	}
}
