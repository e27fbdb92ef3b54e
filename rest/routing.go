package rest

import (
	"github.com/boggydigital/nod"
	"net/http"
)

var (
	Log = nod.RequestLog
)

func HandleFuncs(mux *http.ServeMux, games *Games) {

	patternHandlers := map[string]http.Handler{
		"GET /{$}":           Log(http.HandlerFunc(games.GetGames)),
		"GET /gameSort.json": Log(http.HandlerFunc(games.GetGameSort)),
		// health
		"GET /health":     Log(http.HandlerFunc(GetHealth)),
		"OPTIONS /health": Log(http.HandlerFunc(GetHealth)),
	}

	for p, h := range patternHandlers {
		mux.HandleFunc(p, h.ServeHTTP)
	}
}
