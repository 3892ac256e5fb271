package main

import (
	"os"

	_ "time/tzdata"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/mandalnilabja/friday/internal/app"
	"github.com/mandalnilabja/friday/internal/config"
	"github.com/mandalnilabja/friday/internal/transport/serverless"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		app.NewLogger(&config.Config{LogFormat: "json"}, os.Stderr).Error("failed to load config", "error", err)
		os.Exit(1)
	}
	// CloudWatch ingests structured lines best.
	cfg.LogFormat = "json"

	logger := app.NewLogger(cfg, os.Stdout)
	logger.Info("friday lambda starting", "function", os.Getenv("AWS_LAMBDA_FUNCTION_NAME"))

	lambda.Start(serverless.New(app.NewHandler(cfg, logger)).Invoke)
}
