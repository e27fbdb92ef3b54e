package cli

import (
	"fmt"
	"github.com/arelate/gamesort/data"
	"github.com/arelate/gamesort/view"
	"io"
	"net/url"
	"os"
)

func SortHandler(u *url.URL) error {

	settings, err := SettingsFromUrl(u)
	if err != nil {
		return err
	}

	criterion := u.Query().Get("criterion")

	return Sort(os.Stdout, LoadGameSort(settings.Source), criterion)
}

// Sort prints games titles and developers in the criterion order.
func Sort(w io.Writer, games []data.GameRecord, criterion string) error {
	for _, gr := range data.SortGames(games, criterion) {
		if _, err := fmt.Fprintf(w, "%s (%s%s)\n",
			gr.StringOr(data.AppNameProperty, view.UntitledTitle),
			view.DeveloperPrefix,
			gr.StringOr(data.DevNameProperty, view.UnknownDeveloper)); err != nil {
			return err
		}
	}
	return nil
}
