package main

import (
	"context"
	"log"

	"podium/internal/app/bootstrap"
)

// Process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start the expiry sweep loop and the HTTP server.
func main() {
	log.Println("podium api starting")
	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("bootstrap api failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("api shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("podium api stopped with error: %v", err)
	}
}
