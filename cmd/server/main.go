package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"writeassess/config"
	"writeassess/internal/credentials"
	"writeassess/internal/logger"
	"writeassess/routes"
	"writeassess/services"
	"writeassess/websocket"
)

const sweepInterval = 5 * time.Minute

func main() {
	configPath := flag.String("config", os.Getenv("WRITEASSESS_CONFIG"), "path to config file")
	flag.Parse()

	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", "error", err.Error())
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := credentials.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open credential store: %w", err)
	}
	defer closeStore()

	hub := websocket.NewHub(log)
	client := services.NewChatGPT(cfg.Openai.BaseURL, cfg.Openai.Model, cfg.Timeout(), log)
	manager := services.NewSessionManager(client, store, hub, log)
	go manager.Run(ctx, sweepInterval, cfg.SessionIdle())

	if cfg.Log.Mode == "production" || cfg.Log.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.NewRouter(cfg, manager, hub, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.Server.Port, "model", cfg.Openai.Model, "credentials", cfg.Credentials.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
