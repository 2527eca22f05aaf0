package main

import (
	"context"
	"log"
	"os"

	"github.com/moneytrack/moneytrack/internal/buildinfo"
	"github.com/moneytrack/moneytrack/internal/client/cli"
	"github.com/moneytrack/moneytrack/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
