package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"medpractice/doctor-dashboard/internal/api"
	"medpractice/doctor-dashboard/internal/config"
	"medpractice/doctor-dashboard/internal/service"
	"medpractice/doctor-dashboard/internal/storage"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("config-dir")
			return runServer(cmd.Context(), dir)
		},
	}
}

// newStore builds the store from configuration.
func newStore(cfg config.Config) (*service.Store, error) {
	token, err := service.NewSessionToken(cfg.Auth.JWTSecret, cfg.Auth.Token)
	if err != nil {
		return nil, fmt.Errorf("render session token: %w", err)
	}
	return service.NewStore(service.Options{
		Latency:      cfg.Store.Latency,
		DemoPassword: cfg.Auth.DemoPassword,
		Token:        token,
	})
}

func runServer(ctx context.Context, configDir string) error {
	log.Println("Starting Doctor Dashboard Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log.Println("Configuration loaded.")

	// --- Store ---
	store, err := newStore(cfg)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	log.Printf("Store initialized with %s simulated latency.", cfg.Store.Latency)

	// --- Archive Storage ---
	var fileStorage storage.FileStorage
	if cfg.S3.Enabled() {
		log.Println("Initializing export archive storage...")
		fileStorage, err = storage.NewS3Storage(ctx, cfg.S3)
		if err != nil {
			return fmt.Errorf("initialize S3 storage: %w", err)
		}
	} else {
		log.Println("WARN: s3.bucket_name not set, export archiving disabled.")
	}
	archiveService := service.NewArchiveService(store, fileStorage, cfg.S3.URLExpiry)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware
	api.SetupRoutes(router, store, archiveService, cfg.Server.AllowedOrigins)

	server := &http.Server{
		Addr:        cfg.Server.Address,
		Handler:     router,
		ReadTimeout: 10 * time.Second,
		// No WriteTimeout: /api/v1/events keeps its response open.
		IdleTimeout: 120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-quit:
	case <-ctx.Done():
	}
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("Server exiting.")
	return nil
}
