package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/cardtable/pkg/app"
	"github.com/gonewx/cardtable/pkg/config"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	seed := flag.Int64("seed", 0, "deck shuffle seed (0 = time-based)")
	flag.Parse()

	cardApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Seed:    *seed,
	})
	if err != nil {
		log.Fatalf("init failed: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Card Table")

	if err := ebiten.RunGame(cardApp); err != nil {
		log.Fatal(err)
	}

	// RunGame 正常返回（窗口关闭）后保存设置
	cardApp.Shutdown()
}
