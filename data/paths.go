package data

import (
	"github.com/boggydigital/busan"
	"github.com/boggydigital/pathways"
	"os"
	"path/filepath"
	"strings"
)

const gameSortDirname = "gamesort"

const (
	DirsOverrideFilename = "directories.txt"
	htmlExt              = ".html"
	indexPageFilename    = "index" + htmlExt
)

const (
	Backups  pathways.AbsDir = "backups"
	Logs     pathways.AbsDir = "logs"
	Metadata pathways.AbsDir = "metadata"
	Pages    pathways.AbsDir = "pages"
)

const (
	GameSortDocuments pathways.RelDir = "game-sort"
	GameSortBackups   pathways.RelDir = "game-sort-backups"
	PagesBackups      pathways.RelDir = "pages-backups"
)

var RelToAbsDirs = map[pathways.RelDir]pathways.AbsDir{
	GameSortDocuments: Metadata,
	GameSortBackups:   Backups,
	PagesBackups:      Backups,
}

var AllAbsDirs = []pathways.AbsDir{
	Backups,
	Logs,
	Metadata,
	Pages,
}

func DefaultRootDir() (string, error) {
	udhd, err := UserDataHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(udhd, gameSortDirname), nil
}

func InitRootDir() (string, error) {

	rootDir, err := DefaultRootDir()
	if err != nil {
		return "", err
	}

	for _, ad := range AllAbsDirs {
		absDir := filepath.Join(rootDir, string(ad))
		if _, err := os.Stat(absDir); os.IsNotExist(err) {
			if err := os.MkdirAll(absDir, 0755); err != nil {
				return "", err
			}
		}
	}

	for rd, ad := range RelToAbsDirs {
		absRelDir := filepath.Join(rootDir, string(ad), string(rd))
		if _, err := os.Stat(absRelDir); os.IsNotExist(err) {
			if err := os.MkdirAll(absRelDir, 0755); err != nil {
				return "", err
			}
		}
	}

	return rootDir, nil
}

// PageFilename returns the static page name for a sort criterion, baseline
// order is the index page.
func PageFilename(criterion string) string {
	if criterion == "" {
		return indexPageFilename
	}
	return "by-" + busan.Sanitize(strings.ToLower(criterion)) + htmlExt
}
