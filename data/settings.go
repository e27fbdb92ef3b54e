package data

import (
	"github.com/boggydigital/pathways"
	"github.com/boggydigital/wits"
	"os"
	"path/filepath"
	"strconv"
)

const (
	settingsFilename = "settings.txt"

	SourceSetting           = "source"
	PlaceholderImageSetting = "placeholder-image"
	StylesheetSetting       = "stylesheet"
	PortSetting             = "port"
)

const (
	DefaultPlaceholderImage = "https://via.placeholder.com/400x250.png?text=No+Image"
	DefaultPort             = 1862
)

type Settings struct {
	Source           string
	PlaceholderImage string
	Stylesheet       string
	Port             int
}

func DefaultSettings() *Settings {
	return &Settings{
		Source:           DefaultGameSortSource,
		PlaceholderImage: DefaultPlaceholderImage,
		Port:             DefaultPort,
	}
}

// LoadSettings reads settings.txt from the metadata directory. A missing file
// leaves defaults in place.
func LoadSettings() (*Settings, error) {

	metadataDir, err := pathways.GetAbsDir(Metadata)
	if err != nil {
		return nil, err
	}

	return ReadSettingsFile(filepath.Join(metadataDir, settingsFilename))
}

func ReadSettingsFile(path string) (*Settings, error) {

	settings := DefaultSettings()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	kv, err := wits.ReadKeyValue(file)
	if err != nil {
		return nil, err
	}

	settings.Apply(kv)

	return settings, nil
}

func (s *Settings) Apply(kv map[string]string) {
	if src := kv[SourceSetting]; src != "" {
		s.Source = src
	}
	if phi := kv[PlaceholderImageSetting]; phi != "" {
		s.PlaceholderImage = phi
	}
	if ss := kv[StylesheetSetting]; ss != "" {
		s.Stylesheet = ss
	}
	if portStr := kv[PortSetting]; portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			s.Port = port
		}
	}
}
