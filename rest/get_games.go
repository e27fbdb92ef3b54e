package rest

import (
	"bytes"
	"github.com/arelate/gamesort/view"
	"github.com/boggydigital/nod"
	"net/http"
	"net/url"
)

const sortParam = "sort"

func sortHref(criterion string) string {
	if criterion == "" {
		return "/"
	}
	return "/?" + url.Values{sortParam: {criterion}}.Encode()
}

func (g *Games) GetGames(w http.ResponseWriter, r *http.Request) {

	// GET /?sort=criterion

	criterion := r.URL.Query().Get(sortParam)

	opts := &view.PageOptions{
		Stylesheet:  g.stylesheet,
		Placeholder: g.placeholder,
		ControlHref: sortHref,
	}

	buf := new(bytes.Buffer)
	if err := view.RenderPage(buf, g.Sorted(criterion), opts); err != nil {
		http.Error(w, nod.Error(err).Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		nod.Error(err)
	}
}
