// Package assets loads the optional files a proposal is decorated with:
// fonts, the page header image and the cover image. Every asset is optional
// and callers are expected to fall back to plain rendering when one is
// missing.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotFound is returned when none of the candidate files exist.
var ErrNotFound = errors.New("assets: not found")

// Image is image data in a format the PDF writer reads directly. Type is
// "PNG", "JPG" or "GIF".
type Image struct {
	Data []byte
	Type string
}

// passthrough maps decoder names to the image types gofpdf embeds as is.
var passthrough = map[string]string{
	"png":  "PNG",
	"jpeg": "JPG",
	"gif":  "GIF",
}

// LoadImage reads the image at path. PNG, JPEG and GIF files are returned
// unchanged; WebP, BMP and TIFF files are converted to PNG.
func LoadImage(path string) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("assets: %w", err)
	}
	return DecodeImage(data)
}

// DecodeImage is LoadImage for data already in memory.
func DecodeImage(data []byte) (Image, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("assets: unrecognized image: %w", err)
	}
	if typ, ok := passthrough[format]; ok {
		return Image{Data: data, Type: typ}, nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("assets: decoding %s: %w", format, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Image{}, fmt.Errorf("assets: converting %s to png: %w", format, err)
	}
	return Image{Data: buf.Bytes(), Type: "PNG"}, nil
}

// Find returns the first of names that exists as a regular file in dir.
func Find(dir string, names ...string) (string, error) {
	for _, name := range names {
		p := filepath.Join(dir, name)
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrNotFound, strings.Join(names, ", "), dir)
}

// Font is a TrueType file and the family name it is registered under.
type Font struct {
	Family string
	Data   []byte
}

// LoadFonts reads the font files named in files, keyed by family, from dir.
// Fonts that cannot be read are skipped and reported as warnings.
func LoadFonts(dir string, files map[string]string) ([]Font, []string) {
	var fonts []Font
	var warnings []string
	for _, family := range slices.Sorted(maps.Keys(files)) {
		p := files[family]
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("font %s unavailable: %v", family, err))
			continue
		}
		fonts = append(fonts, Font{Family: family, Data: data})
	}
	return fonts, warnings
}
