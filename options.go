package reportpdf

import (
	"time"

	"go.uber.org/zap"
)

// exporterConfig holds internal configuration for an Exporter.
type exporterConfig struct {
	chromePath   string
	timeout      time.Duration
	noSandbox    bool
	headless     string
	autoDownload bool
	logger       *zap.Logger
	saver        Saver
	outputDir    string
	capture      CaptureOptions
}

func defaultConfig() exporterConfig {
	return exporterConfig{
		timeout:  60 * time.Second,
		headless: "new",
		logger:   zap.NewNop(),
		capture:  DefaultCaptureOptions(),
	}
}

// Option configures an [Exporter].
type Option func(*exporterConfig)

// WithChromePath sets the path to the Chrome or Chromium executable.
// By default chromedp searches standard locations automatically.
func WithChromePath(path string) Option {
	return func(c *exporterConfig) {
		c.chromePath = path
	}
}

// WithTimeout sets the maximum duration for a single export.
// Defaults to 60 seconds. A zero or negative value disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *exporterConfig) {
		c.timeout = d
	}
}

// WithNoSandbox disables the Chrome sandbox. This is required when
// running as root, for example inside Docker containers.
func WithNoSandbox() Option {
	return func(c *exporterConfig) {
		c.noSandbox = true
	}
}

// WithAutoDownload fetches a known-good Chromium build on first use when
// no browser path is configured. The binary is cached by the rod launcher.
func WithAutoDownload() Option {
	return func(c *exporterConfig) {
		c.autoDownload = true
	}
}

// WithLogger sets the logger for export events. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *exporterConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSaver replaces the default filesystem saver.
func WithSaver(s Saver) Option {
	return func(c *exporterConfig) {
		c.saver = s
	}
}

// WithOutputDir sets the directory the default saver writes to. It has no
// effect when [WithSaver] is also given.
func WithOutputDir(dir string) Option {
	return func(c *exporterConfig) {
		c.outputDir = dir
	}
}

// WithCaptureOptions replaces the raster capture settings.
func WithCaptureOptions(o CaptureOptions) Option {
	return func(c *exporterConfig) {
		c.capture = o
	}
}
