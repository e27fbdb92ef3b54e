package cli

import (
	"github.com/arelate/gamesort/data"
	"net/url"
	"strings"
)

// Values splits comma separated query values, clo joins multiple values that way.
// Don't use it for arguments that may contain commas themselves, such as URLs.
func Values(u *url.URL, key string) []string {

	q := u.Query()

	var values []string
	if q.Has(key) {
		for _, v := range strings.Split(q.Get(key), ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}

	return values
}

// SettingsFromUrl loads settings.txt and applies any settings passed as
// command arguments on top of it.
func SettingsFromUrl(u *url.URL) (*data.Settings, error) {

	settings, err := data.LoadSettings()
	if err != nil {
		return nil, err
	}

	q := u.Query()

	overrides := make(map[string]string)
	for _, key := range []string{
		data.SourceSetting,
		data.PlaceholderImageSetting,
		data.StylesheetSetting,
		data.PortSetting,
	} {
		if q.Has(key) {
			overrides[key] = q.Get(key)
		}
	}

	settings.Apply(overrides)

	return settings, nil
}
