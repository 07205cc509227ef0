// Package config handles norgestion-pdf configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/norgestion/reportpdf"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "norgestion-pdf.yaml"

// Config is the root configuration structure.
type Config struct {
	Browser BrowserConfig `yaml:"browser"`
	Output  OutputConfig  `yaml:"output"`
	Capture CaptureConfig `yaml:"capture"`
}

// BrowserConfig holds headless Chrome settings.
type BrowserConfig struct {
	ChromePath   string        `yaml:"chrome_path"`
	NoSandbox    bool          `yaml:"no_sandbox"`
	AutoDownload bool          `yaml:"auto_download"`
	Timeout      time.Duration `yaml:"timeout"`
}

// OutputConfig holds where documents are saved and under which names.
type OutputConfig struct {
	Dir       string `yaml:"dir"`
	Visual    string `yaml:"visual"`
	Editorial string `yaml:"editorial"`
	Proposal  string `yaml:"proposal"`
}

// CaptureConfig holds the raster pipeline constants. Unset values keep the
// library defaults.
type CaptureConfig struct {
	URL                   string  `yaml:"url"`
	TargetID              string  `yaml:"target_id"`
	WindowWidth           int     `yaml:"window_width"`
	Scale                 float64 `yaml:"scale"`
	Quality               int     `yaml:"quality"`
	TableMaxHeight        int     `yaml:"table_max_height"`
	OrphanThreshold       float64 `yaml:"orphan_threshold"`
	TrailingDropThreshold float64 `yaml:"trailing_drop_threshold"`
}

// Default returns the default configuration.
func Default() *Config {
	c := reportpdf.DefaultCaptureOptions()
	return &Config{
		Browser: BrowserConfig{
			Timeout: 60 * time.Second,
		},
		Output: OutputConfig{
			Dir:       ".",
			Visual:    reportpdf.DefaultVisualFilename,
			Editorial: reportpdf.DefaultEditorialFilename,
			Proposal:  reportpdf.DefaultProposalFilename,
		},
		Capture: CaptureConfig{
			TargetID:              reportpdf.DefaultTargetID,
			WindowWidth:           c.WindowWidth,
			Scale:                 c.Scale,
			Quality:               c.Quality,
			TableMaxHeight:        c.TableMaxHeight,
			OrphanThreshold:       c.OrphanThreshold,
			TrailingDropThreshold: c.TrailingDropThreshold,
		},
	}
}

// Load loads configuration from a file on fs.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads config from path, or returns the default if path is
// empty or does not exist.
func LoadOrDefault(fs afero.Fs, path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := fs.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(fs, path)
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(fs afero.Fs, path string) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Init writes the default config to path unless a file is already there.
func Init(fs afero.Fs, path string) (created bool, err error) {
	if _, err := fs.Stat(path); err == nil {
		return false, nil
	}
	if err := Default().Save(fs, path); err != nil {
		return false, err
	}
	return true, nil
}

// CaptureOptions overlays the configured constants on the library
// defaults.
func (c *Config) CaptureOptions() reportpdf.CaptureOptions {
	o := reportpdf.DefaultCaptureOptions()
	cc := c.Capture
	if cc.WindowWidth != 0 {
		o.WindowWidth = cc.WindowWidth
	}
	if cc.Scale != 0 {
		o.Scale = cc.Scale
	}
	if cc.Quality != 0 {
		o.Quality = cc.Quality
	}
	if cc.TableMaxHeight != 0 {
		o.TableMaxHeight = cc.TableMaxHeight
	}
	if cc.OrphanThreshold != 0 {
		o.OrphanThreshold = cc.OrphanThreshold
	}
	if cc.TrailingDropThreshold != 0 {
		o.TrailingDropThreshold = cc.TrailingDropThreshold
	}
	return o
}

// Options returns the Exporter options this configuration describes.
func (c *Config) Options() []reportpdf.Option {
	opts := []reportpdf.Option{
		reportpdf.WithTimeout(c.Browser.Timeout),
		reportpdf.WithOutputDir(c.Output.Dir),
		reportpdf.WithCaptureOptions(c.CaptureOptions()),
	}
	if c.Browser.ChromePath != "" {
		opts = append(opts, reportpdf.WithChromePath(c.Browser.ChromePath))
	}
	if c.Browser.NoSandbox {
		opts = append(opts, reportpdf.WithNoSandbox())
	}
	if c.Browser.AutoDownload {
		opts = append(opts, reportpdf.WithAutoDownload())
	}
	return opts
}

// TargetID is the configured capture target, or the default one.
func (c *Config) TargetID() string {
	if c.Capture.TargetID == "" {
		return reportpdf.DefaultTargetID
	}
	return c.Capture.TargetID
}
