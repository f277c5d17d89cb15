package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"datashare/internal/buildinfo"
	"datashare/internal/client/cli"
	"datashare/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	// optional .env next to the binary; absence is fine
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
