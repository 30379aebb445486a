// Package convert turns a finished proposal PDF into an editable word
// processing document. The conversion itself is delegated to an external
// program; the package only stages its input and collects its output.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNoOutput is returned when the converter exits cleanly without writing
// anything.
var ErrNoOutput = errors.New("convert: converter produced no output")

// Encoder converts PDF bytes into another document format.
type Encoder interface {
	Encode(ctx context.Context, pdf []byte) ([]byte, error)
}

// Func adapts a function to an Encoder.
type Func func(ctx context.Context, pdf []byte) ([]byte, error)

// Encode calls f.
func (f Func) Encode(ctx context.Context, pdf []byte) ([]byte, error) { return f(ctx, pdf) }

// Command converts by running an external program. Args may contain the
// placeholders {in}, {out} and {outdir}: the staged input PDF, the expected
// output file and the directory holding both. The output file has the input's
// name with Ext in place of ".pdf", which is where LibreOffice's
// --convert-to writes.
type Command struct {
	Path    string
	Args    []string
	Ext     string        // output extension, default ".docx"
	TempDir string        // parent of the scratch directory, default os.TempDir()
	Timeout time.Duration // zero means no limit beyond ctx
}

// LibreOffice returns a Command running soffice in headless mode.
func LibreOffice() *Command {
	return &Command{
		Path: "soffice",
		Args: []string{"--headless", "--infilter=writer_pdf_import", "--convert-to", "docx", "--outdir", "{outdir}", "{in}"},
		Ext:  ".docx",
	}
}

// Encode stages pdf in a fresh scratch directory, runs the command and
// returns the output file's contents. The scratch directory is removed
// before Encode returns, whether or not the conversion succeeded.
func (c *Command) Encode(ctx context.Context, pdf []byte) ([]byte, error) {
	if c.Path == "" {
		return nil, errors.New("convert: no command configured")
	}
	dir, err := os.MkdirTemp(c.TempDir, "proposal-convert-")
	if err != nil {
		return nil, fmt.Errorf("convert: creating scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	ext := c.Ext
	if ext == "" {
		ext = ".docx"
	}
	stem := uuid.NewString()
	in := filepath.Join(dir, stem+".pdf")
	out := filepath.Join(dir, stem+ext)
	if err := os.WriteFile(in, pdf, 0o600); err != nil {
		return nil, fmt.Errorf("convert: staging input: %w", err)
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	r := strings.NewReplacer("{in}", in, "{out}", out, "{outdir}", dir)
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = r.Replace(a)
	}
	cmd := exec.CommandContext(ctx, c.Path, args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("convert: %s: %w: %s", filepath.Base(c.Path), err, msg)
		}
		return nil, fmt.Errorf("convert: %s: %w", filepath.Base(c.Path), err)
	}

	data, err := os.ReadFile(out)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoOutput
	}
	if err != nil {
		return nil, fmt.Errorf("convert: reading output: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoOutput
	}
	return data, nil
}
