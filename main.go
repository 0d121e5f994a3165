package main // import "github.com/lighthouses-aicup/go-bot"

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
)

func main() {
	name := flag.String("bn", getEnvDefault("BOT_NAME", ""), "bot name")
	listen := flag.String("la", getEnvDefault("LISTEN_ADDRESS", ":3001"), "listen address")
	engine := flag.String("gs", getEnvDefault("GAME_SERVER_ADDRESS", ""), "game server address")
	verbose := flag.Bool("v", false, "dump received messages")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if *engine == "" {
		log.Error("game server address is required (-gs or GAME_SERVER_ADDRESS)")
		os.Exit(1)
	}
	botName := *name
	if botName == "" {
		botName = "random-bot-" + uuid.NewString()[:8]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tracker := NewTracker()
	client := NewEngineClient(*engine, log)
	id, err := client.JoinWithRetry(ctx, NewPlayer{Name: botName, ServerAddress: *listen})
	if err != nil {
		log.Error("join failed", "error", err)
		os.Exit(1)
	}
	tracker.SetPlayerID(id.PlayerID)

	srv := NewBotServer(tracker, log, *verbose)
	server := &http.Server{
		Addr:         *listen,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("starting to listen", "addr", *listen, "bot", botName)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		log.Error("server stopped", "error", err)
		os.Exit(1)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", "error", err)
		}
	}
}

func getEnvDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
