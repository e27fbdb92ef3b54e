package main

import (
	"bytes"
	_ "embed"
	"github.com/arelate/gamesort/cli"
	"github.com/arelate/gamesort/clo_delegates"
	"github.com/arelate/gamesort/data"
	"github.com/boggydigital/clo"
	"github.com/boggydigital/nod"
	"github.com/boggydigital/pathways"
	"log"
	"os"
)

var (
	//go:embed "cli-commands.txt"
	cliCommands []byte
	//go:embed "cli-help.txt"
	cliHelp []byte
)

const debugParam = "debug"

func main() {

	nod.EnableStdOutPresenter()

	gsa := nod.Begin("gamesort is rendering games")
	defer gsa.EndWithResult("done")

	defaultRootDir, err := data.InitRootDir()
	if err != nil {
		log.Fatalln(err)
	}

	if err := pathways.Setup(data.DirsOverrideFilename,
		defaultRootDir,
		data.RelToAbsDirs,
		data.AllAbsDirs...); err != nil {
		log.Fatalln(err)
	}

	defs, err := clo.Load(
		bytes.NewBuffer(cliCommands),
		bytes.NewBuffer(cliHelp),
		clo_delegates.FuncMap)
	if err != nil {
		log.Fatalln(err)
	}

	clo.HandleFuncs(map[string]clo.Handler{
		"backup":        cli.BackupHandler,
		"get-game-sort": cli.GetGameSortHandler,
		"normalize-url": cli.NormalizeUrlHandler,
		"render":        cli.RenderHandler,
		"serve":         cli.ServeHandler,
		"sort":          cli.SortHandler,
		"version":       cli.VersionHandler,
	})

	if err := defs.AssertCommandsHaveHandlers(); err != nil {
		log.Fatalln(err)
	}

	u, err := defs.Parse(os.Args[1:])
	if err != nil {
		log.Fatalln(err)
	}

	if q := u.Query(); q.Has(debugParam) {
		logsDir, err := pathways.GetAbsDir(data.Logs)
		if err != nil {
			log.Fatalln(err)
		}
		logger, err := nod.EnableFileLogger(u.Path, logsDir)
		if err != nil {
			log.Fatalln(err)
		}
		defer logger.Close()
	}

	if err := defs.Serve(u); err != nil {
		_ = gsa.EndWithError(err)
		log.Fatalln(err)
	}
}
