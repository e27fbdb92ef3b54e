package cli

import (
	"fmt"
	"github.com/arelate/gamesort/data"
	"github.com/arelate/gamesort/rest"
	"github.com/boggydigital/nod"
	"net/http"
	"net/url"
)

func ServeHandler(u *url.URL) error {

	settings, err := SettingsFromUrl(u)
	if err != nil {
		return err
	}

	stderr := u.Query().Has("stderr")

	return Serve(settings, stderr)
}

// Serve loads gameSort once and serves pages sorted from that baseline.
// A failed load is reported and the pages are served with an empty list.
func Serve(settings *data.Settings, stderr bool) error {

	if stderr {
		nod.EnableStdErrLogger()
		nod.DisableOutput(nod.StdOut)
	}

	games := rest.NewGames(LoadGameSort(settings.Source), settings)

	mux := http.NewServeMux()
	rest.HandleFuncs(mux, games)

	sa := nod.Begin("serving games at http://localhost:%d", settings.Port)
	defer sa.EndWithResult("done")

	return http.ListenAndServe(fmt.Sprintf(":%d", settings.Port), mux)
}
