package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/gophblog/internal/server"
	"github.com/dmitrijs2005/gophblog/internal/server/config"
	"github.com/joho/godotenv"
)

func main() {

	// a missing .env is fine; real environment variables still apply
	_ = godotenv.Load()

	if err := run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}

// run loads the configuration, builds the app and serves until shutdown.
// Startup failures are returned so main exits non-zero.
func run(ctx context.Context) error {
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)
	if err != nil {
		return err
	}

	return app.Run(ctx)
}
