// Package config loads the proposal service configuration from YAML with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all settings of the proposal service.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Assets     AssetsConfig     `yaml:"assets"`
	Static     StaticConfig     `yaml:"static"`
	Pagination PaginationConfig `yaml:"pagination"`
	Brand      BrandConfig      `yaml:"brand"`
	Convert    ConvertConfig    `yaml:"convert"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig configures the HTTP transport.
type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// AssetsConfig locates the optional fonts and images. Relative file names
// are resolved against Dir.
type AssetsConfig struct {
	Dir         string            `yaml:"dir"`
	Fonts       map[string]string `yaml:"fonts"`
	HeaderImage string            `yaml:"header_image"`
	CoverImages []string          `yaml:"cover_images"`
	Form        string            `yaml:"form"`
}

// StaticConfig names the pre-rendered page ranges stitched around the
// dynamic pages.
type StaticConfig struct {
	Before string `yaml:"before"`
	After  string `yaml:"after"`
}

// PaginationConfig holds the page-number offsets: the static pages placed
// before dynamic page 1 and after the last dynamic page.
type PaginationConfig struct {
	OffsetBefore int `yaml:"offset_before"`
	OffsetAfter  int `yaml:"offset_after"`
}

// BrandConfig holds the house text printed on every proposal.
type BrandConfig struct {
	URL         string   `yaml:"url"`
	Copyright   string   `yaml:"copyright"`
	Notice      string   `yaml:"notice"`
	Name        string   `yaml:"name"`
	Tagline     string   `yaml:"tagline"`
	Signatory   []string `yaml:"signatory"`
	NamePrefix  string   `yaml:"name_prefix"`
	ReferenceQR bool     `yaml:"reference_qr"`
}

// ConvertConfig configures the PDF to Word converter. An empty Command
// disables the Word endpoint.
type ConvertConfig struct {
	Command string        `yaml:"command"`
	Args    []string      `yaml:"args"`
	TempDir string        `yaml:"temp_dir"`
	Timeout time.Duration `yaml:"timeout"`
}

// LoggingConfig selects the log mode: "development" or "production".
type LoggingConfig struct {
	Mode string `yaml:"mode"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        ":5000",
			CORSOrigins: []string{"*"},
		},
		Assets: AssetsConfig{
			Dir: ".",
			Fonts: map[string]string{
				"MicrosoftSansSerif": "MicrosoftSansSerif.ttf",
				"Roboto":             "Roboto-Regular.ttf",
				"Roboto-Bold":        "Roboto-Bold.ttf",
			},
			HeaderImage: "incorp_header.png",
			CoverImages: []string{"cover_image.png", "cover_image.jpg", "cover_image.jpeg"},
			Form:        "incorp_form.html",
		},
		Static: StaticConfig{
			Before: filepath.Join("static_pdfs", "static_pages_2_3_4.pdf"),
			After:  filepath.Join("static_pdfs", "static_pages_14_21.pdf"),
		},
		Pagination: PaginationConfig{OffsetBefore: 3, OffsetAfter: 9},
		Brand: BrandConfig{
			URL:         "www.incorp.asia",
			Copyright:   "© In.Corp Global Pte Ltd. All Right Reserved.",
			Notice:      "This document is being furnished to you on a confidential basis and solely for your information.",
			Name:        "In.Corp",
			Tagline:     "An Ascentium Company",
			NamePrefix:  "InCorp_Proposal",
			ReferenceQR: true,
		},
		Convert: ConvertConfig{
			Command: "soffice",
			Args:    []string{"--headless", "--infilter=writer_pdf_import", "--convert-to", "docx", "--outdir", "{outdir}", "{in}"},
			Timeout: 2 * time.Minute,
		},
		Logging: LoggingConfig{Mode: "development"},
	}
}

// Load reads the YAML file at path over the defaults and applies the
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err) || path == "":
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}
	if addr := os.Getenv("PROPOSAL_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if dir := os.Getenv("PROPOSAL_ASSETS_DIR"); dir != "" {
		c.Assets.Dir = dir
	}
	if dir := os.Getenv("PROPOSAL_STATIC_DIR"); dir != "" {
		c.Static.Before = filepath.Join(dir, filepath.Base(c.Static.Before))
		c.Static.After = filepath.Join(dir, filepath.Base(c.Static.After))
	}
	if mode := os.Getenv("LOG_MODE"); mode != "" {
		c.Logging.Mode = mode
	}
	if cmd, ok := os.LookupEnv("PROPOSAL_CONVERT_COMMAND"); ok {
		fields := strings.Fields(cmd)
		c.Convert.Command, c.Convert.Args = "", nil
		if len(fields) > 0 {
			c.Convert.Command, c.Convert.Args = fields[0], fields[1:]
		}
	}
}

// Validate checks the settings that would otherwise fail at request time.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server address not configured (set server.addr or PROPOSAL_ADDR)")
	}
	if c.Pagination.OffsetBefore < 0 || c.Pagination.OffsetAfter < 0 {
		return fmt.Errorf("invalid page offsets %d/%d: must not be negative",
			c.Pagination.OffsetBefore, c.Pagination.OffsetAfter)
	}
	switch strings.ToLower(c.Logging.Mode) {
	case "", "dev", "development", "prod", "production":
	default:
		return fmt.Errorf("invalid logging mode: %s (valid: development, production)", c.Logging.Mode)
	}
	return nil
}

// Path resolves name against the assets directory. Absolute and empty
// names are returned unchanged.
func (c *Config) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Assets.Dir, name)
}
