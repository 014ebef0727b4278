package main

import (
	"jobnest_backend/internal/app"
	"jobnest_backend/internal/logger"
)

func main() {
	application, err := app.New()
	if err != nil {
		logger.Fatal("failed to initialize application", "error", err.Error())
	}

	if err := application.Run(); err != nil {
		logger.Fatal("server stopped", "error", err.Error())
	}
}
