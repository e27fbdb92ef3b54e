package rest

import (
	"github.com/arelate/gamesort/data"
	"github.com/boggydigital/nod"
	"net/http"
)

func (g *Games) GetGameSort(w http.ResponseWriter, _ *http.Request) {

	// GET /gameSort.json

	w.Header().Set("Content-Type", "application/json")
	if err := data.WriteGameSort(w, g.baseline); err != nil {
		http.Error(w, nod.Error(err).Error(), http.StatusInternalServerError)
		return
	}
}
