package main

import (
	"context"
	"log"

	"github.com/ishauck/canvas-cli/internal/cli"
	"github.com/ishauck/canvas-cli/internal/config"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
