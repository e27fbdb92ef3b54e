package cli

import (
	"github.com/arelate/gamesort/data"
	"github.com/boggydigital/backups"
	"github.com/boggydigital/nod"
	"github.com/boggydigital/pathways"
	"net/url"
	"os"
)

func BackupHandler(_ *url.URL) error {
	return Backup()
}

// Backup archives stored gameSort documents and rendered pages, each set into
// its own backups directory, so that cleanup keeps recent archives of both.
func Backup() error {

	gameSortDir, err := pathways.GetAbsRelDir(data.GameSortDocuments)
	if err != nil {
		return err
	}

	gameSortBackupsDir, err := pathways.GetAbsRelDir(data.GameSortBackups)
	if err != nil {
		return err
	}

	if err = backupDir("gameSort documents", gameSortDir, gameSortBackupsDir); err != nil {
		return err
	}

	pagesDir, err := pathways.GetAbsDir(data.Pages)
	if err != nil {
		return err
	}

	pagesBackupsDir, err := pathways.GetAbsRelDir(data.PagesBackups)
	if err != nil {
		return err
	}

	return backupDir("rendered pages", pagesDir, pagesBackupsDir)
}

func backupDir(title, fromDir, toDir string) error {

	bda := nod.NewProgress("backing up " + title + "...")
	defer bda.End()

	entries, err := os.ReadDir(fromDir)
	if err != nil {
		return bda.EndWithError(err)
	}

	if len(entries) == 0 {
		bda.EndWithResult("nothing to backup")
		return nil
	}

	if err = backups.Compress(fromDir, toDir); err != nil {
		return bda.EndWithError(err)
	}

	if err = backups.Cleanup(toDir, true, bda); err != nil {
		return bda.EndWithError(err)
	}

	bda.EndWithResult("done")

	return nil
}
