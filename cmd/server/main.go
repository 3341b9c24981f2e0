package main

import (
	"context"
	"log"

	"github.com/cookiecravings/api/internal/server"
	"github.com/cookiecravings/api/internal/server/config"
	"github.com/joho/godotenv"
)

func main() {

	// .env is optional; real deployments pass the environment directly.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
