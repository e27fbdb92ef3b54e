package cli

import (
	"github.com/arelate/gamesort/data"
	"github.com/arelate/gamesort/view"
	"github.com/boggydigital/nod"
	"github.com/boggydigital/pathways"
	"net/url"
	"os"
	"path/filepath"
)

func RenderHandler(u *url.URL) error {

	settings, err := SettingsFromUrl(u)
	if err != nil {
		return err
	}

	criteria := Values(u, "criterion")

	pagesDir, err := pathways.GetAbsDir(data.Pages)
	if err != nil {
		return err
	}

	return Render(pagesDir, LoadGameSort(settings.Source), settings, criteria...)
}

// Render writes static pages for baseline order and every sort criterion,
// or only for the requested criteria. Pages link to each other through the
// sort controls.
func Render(pagesDir string, games []data.GameRecord, settings *data.Settings, criteria ...string) error {

	ra := nod.NewProgress("rendering pages...")
	defer ra.EndWithResult("done")

	if len(criteria) == 0 {
		criteria = append([]string{""}, data.SortCriteria()...)
	}

	ra.TotalInt(len(criteria))

	opts := &view.PageOptions{
		Stylesheet:  settings.Stylesheet,
		Placeholder: settings.PlaceholderImage,
		ControlHref: data.PageFilename,
	}

	for _, criterion := range criteria {
		if err := renderPage(filepath.Join(pagesDir, data.PageFilename(criterion)), data.SortGames(games, criterion), opts); err != nil {
			return ra.EndWithError(err)
		}
		ra.Increment()
	}

	return nil
}

func renderPage(path string, games []data.GameRecord, opts *view.PageOptions) (err error) {

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	return view.RenderPage(file, games, opts)
}
