package main

import (
	"go.uber.org/zap"

	"lambda-functions/internal/config"
	"lambda-functions/internal/functions/functiontwo"
	"lambda-functions/pkg/lambdahttp"
)

func main() {
	cfg := config.New()
	defer cfg.Logger.Sync()
	if err := cfg.Load(); err != nil {
		cfg.Logger.Fatal("could not load config", zap.Error(err))
	}

	lambdahttp.RunDirect(cfg.RunOptions(), functiontwo.Handle)
}
