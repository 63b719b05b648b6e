package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/mmynk/settleup/internal/cli"
	"github.com/mmynk/settleup/pkg/logging"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
