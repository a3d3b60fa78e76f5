package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"pull-request-stats/internal/app"
	"pull-request-stats/internal/config"
	"pull-request-stats/internal/lib/logger"
	"pull-request-stats/internal/lib/logger/sl"
)

func main() {
	_ = godotenv.Load()

	opts, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "pr-report:", err)
		os.Exit(1)
	}

	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	a := app.MustNew(log, cfg, opts)

	if err := a.Run(context.Background()); err != nil {
		log.Error("report failed", sl.Err(err))
		os.Exit(1)
	}
}
