package data

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"slices"
)

const (
	SortByName      = "name"
	SortByDeveloper = "developer"
)

var sortProperties = map[string]string{
	SortByName:      AppNameProperty,
	SortByDeveloper: DevNameProperty,
}

func SortCriteria() []string {
	return []string{SortByName, SortByDeveloper}
}

// SortGames returns a new slice ordered by the criterion property, compared
// case-insensitively with locale-aware collation. Missing values sort as "".
// Unknown criteria return a copy in input order. The input slice is
// never modified.
func SortGames(games []GameRecord, criterion string) []GameRecord {

	sorted := slices.Clone(games)

	property, ok := sortProperties[criterion]
	if !ok {
		return sorted
	}

	// collators keep internal buffers, one per call
	cl := collate.New(language.Und, collate.Loose)

	slices.SortStableFunc(sorted, func(a, b GameRecord) int {
		return cl.CompareString(a.StringOr(property, ""), b.StringOr(property, ""))
	})

	return sorted
}
