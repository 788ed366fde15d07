package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campus-parkfinder/parkfinder/internal/adapters/fakeapi"
)

func main() {
	port := getenv("PORT", "5000")

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	s := fakeapi.NewServer(fakeapi.DefaultSeed())
	s.Logger = logger

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           fakeapi.NewRouter(s),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("fake parking api listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
