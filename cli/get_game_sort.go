package cli

import (
	"errors"
	"github.com/arelate/gamesort/data"
	"github.com/boggydigital/busan"
	"github.com/boggydigital/kevlar"
	"github.com/boggydigital/nod"
	"github.com/boggydigital/pathways"
	"net/url"
)

func GetGameSortHandler(u *url.URL) error {

	settings, err := SettingsFromUrl(u)
	if err != nil {
		return err
	}

	force := u.Query().Has("force")

	return GetGameSort(settings.Source, force)
}

// GetGameSort fetches the gameSort document from the source and stores it
// in the metadata key-values under that source. An already stored document
// is kept unless forced.
func GetGameSort(source string, force bool) error {

	gga := nod.Begin("getting gameSort from %s...", source)
	defer gga.EndWithResult("done")

	kvGameSort, err := newGameSortKeyValues()
	if err != nil {
		return gga.EndWithError(err)
	}

	if err = fetchGameSort(source, kvGameSort, force); err != nil {
		return gga.EndWithError(err)
	}

	return nil
}

func newGameSortKeyValues() (kevlar.KeyValues, error) {
	gameSortDir, err := pathways.GetAbsRelDir(data.GameSortDocuments)
	if err != nil {
		return nil, err
	}
	return kevlar.NewKeyValues(gameSortDir, kevlar.JsonExt)
}

// gameSortKey keeps documents from different sources apart.
func gameSortKey(source string) string {
	return busan.Sanitize(source)
}

func fetchGameSort(source string, kvGameSort kevlar.KeyValues, force bool) error {

	key := gameSortKey(source)

	if has, err := kvGameSort.Has(key); err == nil {
		if has && !force {
			return nil
		}
	} else {
		return err
	}

	rc, err := data.OpenGameSortSource(source)
	if err != nil {
		return err
	}
	defer rc.Close()

	return kvGameSort.Set(key, rc)
}

// LoadGameSort returns the baseline game records. The source is fetched once
// per call, a failed fetch falls back to the document stored for that source.
// When neither is available the failure is reported and the list is empty.
func LoadGameSort(source string) []data.GameRecord {

	lgsa := nod.Begin("loading gameSort...")

	kvGameSort, err := newGameSortKeyValues()
	if err != nil {
		_ = lgsa.EndWithError(err)
		return []data.GameRecord{}
	}

	records, err := loadGameSort(source, kvGameSort)
	if err != nil {
		_ = lgsa.EndWithError(err)
		return []data.GameRecord{}
	}

	lgsa.EndWithResult("loaded %d games", len(records))

	return records
}

func loadGameSort(source string, kvGameSort kevlar.KeyValues) ([]data.GameRecord, error) {

	if err := fetchGameSort(source, kvGameSort, true); err != nil {
		nod.Error(err)
	}

	key := gameSortKey(source)

	if has, err := kvGameSort.Has(key); err != nil {
		return nil, err
	} else if !has {
		return nil, errors.New("gameSort is not available for " + source)
	}

	rc, err := kvGameSort.Get(key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return data.ReadGameSort(rc)
}
