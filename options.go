package proposal

import (
	"time"

	"go.uber.org/zap"

	"github.com/lvillar/proposal/assets"
	"github.com/lvillar/proposal/convert"
	"github.com/lvillar/proposal/render"
)

// Option is a functional option for configuring a Generator via New.
type Option func(*generatorConfig)

type generatorConfig struct {
	assetsDir   string
	fonts       map[string]string
	headerImage string
	coverImages []string
	before      string
	after       string
	chrome      render.Chrome
	signatory   []string
	reference   bool
	namePrefix  string
	encoder     convert.Encoder
	now         func() time.Time
	loadImage   func(path string) (assets.Image, error)
	logger      *zap.SugaredLogger
}

// DefaultFonts maps the families the stylesheet uses to their files in the
// assets directory.
func DefaultFonts() map[string]string {
	return map[string]string{
		"MicrosoftSansSerif": "MicrosoftSansSerif.ttf",
		"Roboto":             "Roboto-Regular.ttf",
		"Roboto-Bold":        "Roboto-Bold.ttf",
	}
}

// WithAssetsDir sets the directory fonts and images are looked up in.
func WithAssetsDir(dir string) Option {
	return func(c *generatorConfig) {
		c.assetsDir = dir
	}
}

// WithFonts replaces the font files, keyed by family. Relative paths are
// resolved against the assets directory.
func WithFonts(files map[string]string) Option {
	return func(c *generatorConfig) {
		c.fonts = files
	}
}

// WithHeaderImage sets the image drawn across the top of every page after
// the cover. An empty name always draws the band header.
func WithHeaderImage(name string) Option {
	return func(c *generatorConfig) {
		c.headerImage = name
	}
}

// WithCoverImages sets the candidate cover image file names, in order of
// preference. When none exists the cover is set in text.
func WithCoverImages(names ...string) Option {
	return func(c *generatorConfig) {
		c.coverImages = names
	}
}

// WithStaticPages sets the static PDFs stitched in before and after the
// dynamic body.
func WithStaticPages(before, after string) Option {
	return func(c *generatorConfig) {
		c.before = before
		c.after = after
	}
}

// WithChrome replaces the page header and footer, including the page
// number offsets.
func WithChrome(ch render.Chrome) Option {
	return func(c *generatorConfig) {
		c.chrome = ch
	}
}

// WithSignatory sets the lines closing the client letter.
func WithSignatory(lines ...string) Option {
	return func(c *generatorConfig) {
		c.signatory = lines
	}
}

// WithReferenceQR turns the artifact-name QR code under the letter on or off.
func WithReferenceQR(on bool) Option {
	return func(c *generatorConfig) {
		c.reference = on
	}
}

// WithNamePrefix sets the prefix of artifact names.
func WithNamePrefix(prefix string) Option {
	return func(c *generatorConfig) {
		c.namePrefix = prefix
	}
}

// WithEncoder sets the converter used by GenerateWord.
func WithEncoder(enc convert.Encoder) Option {
	return func(c *generatorConfig) {
		c.encoder = enc
	}
}

// WithClock sets the time source for artifact names and default dates.
func WithClock(now func() time.Time) Option {
	return func(c *generatorConfig) {
		c.now = now
	}
}

// WithImageLoader replaces how header and cover images are read.
func WithImageLoader(load func(path string) (assets.Image, error)) Option {
	return func(c *generatorConfig) {
		c.loadImage = load
	}
}

// WithLogger sets the logger warnings are reported to.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *generatorConfig) {
		c.logger = l
	}
}
