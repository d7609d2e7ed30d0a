package main

import (
	"context"
	"log"
	"os"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/buildinfo"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/cli"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
