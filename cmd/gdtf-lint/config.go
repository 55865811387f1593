package main

import (
	"io"
	"os"
	"slices"

	"github.com/lestrrat-go/gdtf/internal/export"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	formatSummary = "summary"
	formatXML     = "xml"
)

// config is the merged result of the config file and the command line.
type config struct {
	Format    string `yaml:"format"`
	Strict    bool   `yaml:"strict"`
	RoundTrip bool   `yaml:"roundtrip"`
	Verbose   bool   `yaml:"verbose"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, `failed to open config`)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, errors.Wrapf(err, `failed to decode config %s`, path)
	}
	return cfg, nil
}

// resolveConfig layers the command line over the config file. A boolean
// flag can only switch a setting on.
func resolveConfig(opts cmdopts) (config, error) {
	var cfg config
	if opts.Config != "" {
		var err error
		if cfg, err = loadConfig(opts.Config); err != nil {
			return cfg, err
		}
	}

	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	if cfg.Format == "" {
		cfg.Format = formatSummary
	}
	cfg.Strict = cfg.Strict || opts.Strict
	cfg.RoundTrip = cfg.RoundTrip || opts.RoundTrip
	cfg.Verbose = cfg.Verbose || opts.Verbose

	switch {
	case cfg.Format == formatSummary, cfg.Format == formatXML:
	case slices.Contains(export.Formats, export.Format(cfg.Format)):
	default:
		return cfg, errors.Errorf(`unknown format %q`, cfg.Format)
	}
	return cfg, nil
}
