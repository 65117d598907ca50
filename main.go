package main

import (
	"os"

	"github.com/willfleury/electricitymap/cmd"
	"github.com/willfleury/electricitymap/infra/logger"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logger.New("main").Errorf("%v", err)
		os.Exit(1)
	}
}
