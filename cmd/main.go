package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/civiclens/civiclens-backend/internal/app"
)

func main() {
	// Missing .env is fine in container deployments; real env wins either way.
	_ = godotenv.Load()

	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	addr := ":" + a.Cfg.Port
	a.Log.Info("Starting server", "addr", addr)
	if err := a.Run(addr); err != nil {
		a.Log.Error("Server exited", "error", err)
		a.Close()
		os.Exit(1)
	}
}
