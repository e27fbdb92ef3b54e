package data

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestReadSettingsFileMissing(t *testing.T) {
	settings, err := ReadSettingsFile(filepath.Join(t.TempDir(), "settings.txt"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestSettingsApply(t *testing.T) {
	settings := DefaultSettings()
	settings.Apply(map[string]string{
		SourceSetting:           "https://example.com/gameSort.json",
		PlaceholderImageSetting: "https://example.com/none.png",
		StylesheetSetting:       "/styles/style.css",
		PortSetting:             "8080",
	})

	assert.Equal(t, "https://example.com/gameSort.json", settings.Source)
	assert.Equal(t, "https://example.com/none.png", settings.PlaceholderImage)
	assert.Equal(t, "/styles/style.css", settings.Stylesheet)
	assert.Equal(t, 8080, settings.Port)
}

func TestSettingsApplyKeepsDefaults(t *testing.T) {
	settings := DefaultSettings()
	settings.Apply(map[string]string{
		SourceSetting: "",
		PortSetting:   "not-a-port",
	})
	assert.Equal(t, DefaultSettings(), settings)
}

func TestReadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.txt")
	require.NoError(t, os.WriteFile(path, []byte("source=https://example.com/gameSort.json\nport=9000\n"), 0644))

	settings, err := ReadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/gameSort.json", settings.Source)
	assert.Equal(t, 9000, settings.Port)
	assert.Equal(t, DefaultPlaceholderImage, settings.PlaceholderImage)
}
