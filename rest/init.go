package rest

import (
	"github.com/arelate/gamesort/data"
)

// Games is built once from the fetched document and shared by all handlers.
// Baseline is never reordered, every sort works on a copy.
type Games struct {
	baseline    []data.GameRecord
	placeholder string
	stylesheet  string
}

func NewGames(baseline []data.GameRecord, settings *data.Settings) *Games {
	if settings == nil {
		settings = data.DefaultSettings()
	}
	return &Games{
		baseline:    baseline,
		placeholder: settings.PlaceholderImage,
		stylesheet:  settings.Stylesheet,
	}
}

func (g *Games) Sorted(criterion string) []data.GameRecord {
	return data.SortGames(g.baseline, criterion)
}
