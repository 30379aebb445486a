package convert_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/lvillar/proposal/convert"
)

// assertClean fails if the converter left anything behind in dir.
func assertClean(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		t.Errorf("scratch entry left behind: %s", e.Name())
	}
}

func TestCommandEncode(t *testing.T) {
	tmp := t.TempDir()
	c := &convert.Command{
		Path:    "sh",
		Args:    []string{"-c", `tr a-z A-Z < "$0" > "$1"`, "{in}", "{out}"},
		TempDir: tmp,
	}
	got, err := c.Encode(context.Background(), []byte("%pdf body"))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(got, []byte("%PDF BODY")) {
		t.Errorf("Encode = %q, want %q", got, "%PDF BODY")
	}
	assertClean(t, tmp)
}

func TestCommandFailureCleansUp(t *testing.T) {
	tmp := t.TempDir()
	c := &convert.Command{
		Path:    "sh",
		Args:    []string{"-c", "echo broken >&2; exit 3"},
		TempDir: tmp,
	}
	_, err := c.Encode(context.Background(), []byte("%PDF"))
	if err == nil {
		t.Fatal("Encode succeeded for a failing command")
	}
	if !bytes.Contains([]byte(err.Error()), []byte("broken")) {
		t.Errorf("error %q does not carry the converter's stderr", err)
	}
	assertClean(t, tmp)
}

func TestCommandNoOutput(t *testing.T) {
	tmp := t.TempDir()
	c := &convert.Command{Path: "true", TempDir: tmp}
	if _, err := c.Encode(context.Background(), []byte("%PDF")); !errors.Is(err, convert.ErrNoOutput) {
		t.Errorf("Encode = %v, want ErrNoOutput", err)
	}
	assertClean(t, tmp)
}

func TestCommandTimeout(t *testing.T) {
	tmp := t.TempDir()
	c := &convert.Command{Path: "sleep", Args: []string{"5"}, TempDir: tmp, Timeout: 50 * time.Millisecond}
	start := time.Now()
	if _, err := c.Encode(context.Background(), []byte("%PDF")); err == nil {
		t.Fatal("Encode outlived its timeout")
	}
	if time.Since(start) > 4*time.Second {
		t.Error("timeout did not stop the command")
	}
	assertClean(t, tmp)
}

func TestCommandUnconfigured(t *testing.T) {
	if _, err := (&convert.Command{}).Encode(context.Background(), nil); err == nil {
		t.Error("Encode without a command succeeded")
	}
}

func TestFunc(t *testing.T) {
	var enc convert.Encoder = convert.Func(func(_ context.Context, pdf []byte) ([]byte, error) {
		return append([]byte("docx:"), pdf...), nil
	})
	got, err := enc.Encode(context.Background(), []byte("x"))
	if err != nil || string(got) != "docx:x" {
		t.Errorf("Encode = %q, %v", got, err)
	}
}

func TestLibreOfficeArgs(t *testing.T) {
	c := convert.LibreOffice()
	if c.Path != "soffice" || c.Ext != ".docx" {
		t.Errorf("LibreOffice() = %+v", c)
	}
}
