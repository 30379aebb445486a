package main

import (
	"fmt"

	"github.com/lvillar/proposal"
	"github.com/lvillar/proposal/convert"
	"github.com/lvillar/proposal/internal/config"
	"github.com/lvillar/proposal/internal/logger"
	"github.com/lvillar/proposal/render"
)

// loadConfig reads the configuration and applies the command-line
// overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if assetsDir != "" {
		cfg.Assets.Dir = assetsDir
	}
	if logMode != "" {
		cfg.Logging.Mode = logMode
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg *config.Config) (*logger.Logger, error) {
	log, err := logger.New(cfg.Logging.Mode)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

// generatorOptions maps the configuration onto generator options.
func generatorOptions(cfg *config.Config, log *logger.Logger) []proposal.Option {
	chrome := render.DefaultChrome()
	chrome.URL = cfg.Brand.URL
	chrome.Copyright = cfg.Brand.Copyright
	chrome.Notice = cfg.Brand.Notice
	chrome.Brand = cfg.Brand.Name
	chrome.Tagline = cfg.Brand.Tagline
	chrome.Before = cfg.Pagination.OffsetBefore
	chrome.After = cfg.Pagination.OffsetAfter

	opts := []proposal.Option{
		proposal.WithAssetsDir(cfg.Assets.Dir),
		proposal.WithFonts(cfg.Assets.Fonts),
		proposal.WithHeaderImage(cfg.Assets.HeaderImage),
		proposal.WithCoverImages(cfg.Assets.CoverImages...),
		proposal.WithStaticPages(cfg.Static.Before, cfg.Static.After),
		proposal.WithChrome(chrome),
		proposal.WithReferenceQR(cfg.Brand.ReferenceQR),
		proposal.WithLogger(log.SugaredLogger),
	}
	if len(cfg.Brand.Signatory) > 0 {
		opts = append(opts, proposal.WithSignatory(cfg.Brand.Signatory...))
	}
	if cfg.Brand.NamePrefix != "" {
		opts = append(opts, proposal.WithNamePrefix(cfg.Brand.NamePrefix))
	}
	if cfg.Convert.Command != "" {
		opts = append(opts, proposal.WithEncoder(&convert.Command{
			Path:    cfg.Convert.Command,
			Args:    cfg.Convert.Args,
			TempDir: cfg.Convert.TempDir,
			Timeout: cfg.Convert.Timeout,
		}))
	}
	return opts
}

// setup loads the configuration and builds the logger and generator every
// subcommand shares.
func setup() (*config.Config, *logger.Logger, *proposal.Generator, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, log, proposal.New(generatorOptions(cfg, log)...), nil
}
