package reportpdf

import (
	"fmt"

	"github.com/go-rod/rod/lib/launcher"
)

// resolveBrowser downloads a compatible Chromium binary if one is not
// already cached and returns the path to the executable. The binary is
// stored in ~/.cache/rod/browser (Unix) or %APPDATA%\rod\browser (Windows).
func resolveBrowser() (string, error) {
	path, err := launcher.NewBrowser().Get()
	if err != nil {
		return "", fmt.Errorf("reportpdf: downloading browser: %w", err)
	}
	return path, nil
}

// browserPath picks the executable for a new allocator. An explicit path
// wins; otherwise auto download, otherwise chromedp's own lookup.
func browserPath(cfg exporterConfig) (string, error) {
	if cfg.chromePath != "" {
		return cfg.chromePath, nil
	}
	if cfg.autoDownload {
		return resolveBrowser()
	}
	return "", nil
}
