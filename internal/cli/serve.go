package cli

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"github.com/zakariamou/sahha/internal/api"
	"github.com/zakariamou/sahha/internal/db"
	"github.com/zakariamou/sahha/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Sahha HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	path := resolveDBPath()
	port := getEnv("PORT", "8080")

	database, err := db.OpenSQLite(path)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	repositories := db.NewRepositories(database)
	bootstrap := services.NewBootstrapService(
		repositories.Settings,
		repositories.PlanDays,
		repositories.DailyLogs,
		repositories.Measurements,
	)
	if err := bootstrap.EnsureBootstrapped(time.Now().In(location)); err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}

	handler := api.NewHandler(database, location)

	app := fiber.New(fiber.Config{
		AppName:               "Sahha",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	reminder := services.NewReminderService(repositories.PlanDays, repositories.Settings, location)
	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	reminder.Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Sahha listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, path, location.String())
	if err := app.Listen(":" + port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
