package main

import (
	"go.uber.org/zap"

	"lambda-functions/internal/config"
	"lambda-functions/internal/functions/functionfour"
	"lambda-functions/pkg/lambdahttp"
)

func main() {
	cfg := config.New()
	defer cfg.Logger.Sync()
	if err := cfg.Load(); err != nil {
		cfg.Logger.Fatal("could not load config", zap.Error(err))
	}

	c := functionfour.New(cfg)
	if err := c.Connect(); err != nil {
		cfg.Logger.Fatal("could not connect to dynamodb", zap.Error(err))
	}

	if err := lambdahttp.Run(cfg.RunOptions(), c.Handle); err != nil {
		cfg.Logger.Fatal("function exited", zap.Error(err))
	}
}
