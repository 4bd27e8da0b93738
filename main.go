package main

import (
	"context"
	"flag"
	stdlog "log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/levelstore"
	"github.com/milk9111/platformer/logging"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and overlay")
	levelName := flag.String("level", "", "embedded level name (.json optional) or path to a level file")
	levelID := flag.String("level-id", "", "id of a level in the -db store")
	dbPath := flag.String("db", "", "sqlite level store")
	tuningPath := flag.String("tuning", "", "tuning yaml, embedded defaults when empty")
	assetDir := flag.String("assets", "", "directory whose files override the embedded assets")
	watch := flag.Bool("watch", false, "hot reload tuning, level and script files")
	flag.Parse()

	log, err := logging.New(*debug)
	if err != nil {
		stdlog.Fatal(err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	opts := Options{
		Level:      *levelName,
		LevelID:    *levelID,
		TuningPath: *tuningPath,
		AssetDir:   *assetDir,
		Debug:      *debug,
		Watch:      *watch,
	}
	if *dbPath != "" {
		store, err := levelstore.Open(ctx, *dbPath, log)
		if err != nil {
			log.Fatal("open level store", zap.Error(err))
		}
		defer store.Close()
		opts.Store = store
	}

	game, err := NewGame(ctx, opts, log)
	if err != nil {
		log.Fatal("start game", zap.Error(err))
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(game.tuning.Canvas.Width, game.tuning.Canvas.Height)
	ebiten.SetWindowTitle("platformer")

	if err := ebiten.RunGame(game); err != nil {
		log.Error("game exited", zap.Error(err))
	}
}
