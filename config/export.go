package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// ExportSettings holds the spreadsheet export configuration. All values
// are configurable via an optional YAML file so the layout can change
// without a rebuild; missing values fall back to the defaults below.
type ExportSettings struct {
	// Recipient is the fixed administrator address the export is mailed to.
	Recipient string `yaml:"recipient"`
	// From is the sender address of the export email.
	From string `yaml:"from"`
	// SheetName is the name of the single worksheet.
	SheetName string `yaml:"sheetName"`
	// OutputDir is where the transient .xlsx file is written.
	OutputDir string `yaml:"outputDir"`
	// MaxColumnWidth caps the auto-sized column width.
	MaxColumnWidth float64 `yaml:"maxColumnWidth"`
}

// DefaultExportSettings matches the layout the administrator has always
// received.
var DefaultExportSettings = ExportSettings{
	Recipient:      "tijmenbaas83@outlook.com",
	From:           "info@samenwerktwbd.nl",
	SheetName:      "Ledenoverzicht",
	OutputDir:      ".",
	MaxColumnWidth: 50,
}

// LoadExportSettings loads the export configuration from a YAML file.
// A missing file is not an error; the defaults are returned. The
// EXPORT_RECIPIENT environment variable overrides the recipient either way.
func LoadExportSettings(path string) (*ExportSettings, error) {
	settings := DefaultExportSettings

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults apply.
	case err != nil:
		return nil, fmt.Errorf("failed to read export settings %s: %w", path, err)
	default:
		var loaded ExportSettings
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			slog.Warn("Failed to parse export settings, using defaults", "path", path, "error", err)
		} else {
			settings.apply(loaded)
		}
	}

	if recipient := os.Getenv("EXPORT_RECIPIENT"); recipient != "" {
		settings.Recipient = recipient
	}

	return &settings, nil
}

// apply merges non-zero loaded values over the defaults.
func (s *ExportSettings) apply(loaded ExportSettings) {
	if loaded.Recipient != "" {
		s.Recipient = loaded.Recipient
	}
	if loaded.From != "" {
		s.From = loaded.From
	}
	if loaded.SheetName != "" {
		s.SheetName = loaded.SheetName
	}
	if loaded.OutputDir != "" {
		s.OutputDir = loaded.OutputDir
	}
	if loaded.MaxColumnWidth > 0 {
		s.MaxColumnWidth = loaded.MaxColumnWidth
	}
}
