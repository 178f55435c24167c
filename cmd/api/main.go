package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"stray-adoption/internal/platform/logger"
	"stray-adoption/internal/router"
)

func main() {
	_ = godotenv.Load() // opcional: .env local de desarrollo

	log := logger.NewFromEnv()
	defer func() { _ = log.Sync() }()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	h, err := router.New(router.Options{Logger: log})
	if err != nil {
		log.Fatalw("bootstrap failed", "error", err)
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Infow("starting server", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalw("server error", "error", err)
	}
}
