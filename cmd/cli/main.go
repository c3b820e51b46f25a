package main

import (
	"context"
	"log"
	"os"

	"github.com/sellit-io/sellit/internal/buildinfo"
	"github.com/sellit-io/sellit/internal/cli"
	"github.com/sellit-io/sellit/internal/config"
	"github.com/sellit-io/sellit/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, logging.NewJSON())

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
