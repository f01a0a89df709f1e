// Package config loads the optional HCL configuration file of the parser
// command line tool.
//
// Example:
//
//	max_parallel     = 8
//	max_file_size    = 33554432
//	log_level        = "debug"
//	output           = "json"
//	disabled_formats = ["gmv"]
package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/tasmovie/parser/internal/logger"
	"github.com/tasmovie/parser/internal/parser"
)

// Output formats understood by the command line tool.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputHCL  = "hcl"
)

// ErrInvalid is wrapped by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

// Config is the decoded configuration file.
type Config struct {
	MaxParallel     int      `hcl:"max_parallel,optional"`
	MaxFileSize     int      `hcl:"max_file_size,optional"`
	LogLevel        string   `hcl:"log_level,optional"`
	Output          string   `hcl:"output,optional"`
	DisabledFormats []string `hcl:"disabled_formats,optional"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		MaxFileSize: parser.DefaultMaxFileSize,
		LogLevel:    "info",
		Output:      OutputText,
	}
}

// Load decodes an HCL (or HCL JSON) file on top of Default and validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadSource is Load for in-memory content; filename selects the syntax
// (".hcl" or ".json") and is used in diagnostics.
func LoadSource(filename string, src []byte) (Config, error) {
	cfg := Default()
	if err := hclsimple.Decode(filename, src, nil, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges and names.
func (c Config) Validate() error {
	if c.MaxParallel < 0 {
		return fmt.Errorf("%w: max_parallel must be >= 0", ErrInvalid)
	}
	if c.MaxFileSize < 0 {
		return fmt.Errorf("%w: max_file_size must be >= 0", ErrInvalid)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Output {
	case "", OutputText, OutputJSON, OutputHCL:
	default:
		return fmt.Errorf("%w: unknown output %q", ErrInvalid, c.Output)
	}
	return nil
}

// ParserOptions converts the config into parser options.
func (c Config) ParserOptions() parser.Options {
	opts := parser.DefaultOptions()
	opts.MaxParallel = c.MaxParallel
	if c.MaxFileSize > 0 {
		opts.MaxFileSize = c.MaxFileSize
	}
	return opts
}
