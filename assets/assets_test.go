package assets_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/bmp"

	"github.com/lvillar/proposal/assets"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(1, 1, color.RGBA{R: 0xff, A: 0xff})
	return img
}

func TestLoadImagePNGPassthrough(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(t.TempDir(), "header.png")
	if err := os.WriteFile(p, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	img, err := assets.LoadImage(p)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if img.Type != "PNG" || !bytes.Equal(img.Data, buf.Bytes()) {
		t.Errorf("LoadImage = %s (%d bytes), want the original PNG", img.Type, len(img.Data))
	}
}

func TestDecodeImageConvertsBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, testImage()); err != nil {
		t.Fatal(err)
	}
	img, err := assets.DecodeImage(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if img.Type != "PNG" {
		t.Fatalf("Type = %q, want PNG", img.Type)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil {
		t.Fatalf("converted data is not PNG: %v", err)
	}
	if cfg.Width != 4 || cfg.Height != 2 {
		t.Errorf("converted size = %dx%d, want 4x2", cfg.Width, cfg.Height)
	}
}

func TestDecodeImageRejectsUnknownData(t *testing.T) {
	if _, err := assets.DecodeImage([]byte("not an image")); err == nil {
		t.Error("DecodeImage accepted text")
	}
	if _, err := assets.LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("LoadImage accepted a missing file")
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"cover_image.jpg", "cover_image.jpeg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "cover_image.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := assets.Find(dir, "cover_image.png", "cover_image.jpg", "cover_image.jpeg")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if want := filepath.Join(dir, "cover_image.jpg"); got != want {
		t.Errorf("Find = %q, want %q", got, want)
	}

	if _, err := assets.Find(dir, "nope.png"); !errors.Is(err, assets.ErrNotFound) {
		t.Errorf("Find(missing) = %v, want ErrNotFound", err)
	}
}

func TestLoadFonts(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Roboto-Regular.ttf"), []byte("ttf"), 0o644); err != nil {
		t.Fatal(err)
	}
	fonts, warnings := assets.LoadFonts(dir, map[string]string{
		"Roboto":      "Roboto-Regular.ttf",
		"Roboto-Bold": "Roboto-Bold.ttf",
	})
	want := []assets.Font{{Family: "Roboto", Data: []byte("ttf")}}
	if diff := cmp.Diff(want, fonts); diff != "" {
		t.Errorf("fonts mismatch (-want +got):\n%s", diff)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "Roboto-Bold") {
		t.Errorf("warnings = %q", warnings)
	}
}
