package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/recipeplanner/internal/buildinfo"
	"github.com/dmitrijs2005/recipeplanner/internal/client/cli"
	"github.com/dmitrijs2005/recipeplanner/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, config.LoadConfig())
	if err != nil {
		log.Fatalf("cli init error: %v", err)
	}

	// Run closes the local store and the gRPC connection on return.
	app.Run(ctx)
}
