package clo_delegates

import (
	"github.com/arelate/gamesort/data"
)

var FuncMap = map[string]func() []string{
	"sort-criteria": data.SortCriteria,
}
