package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "sahha",
	Short: "Sahha is a self-hosted fitness and nutrition planner",
	Long:  "Sahha generates a multi-week workout and meal schedule from your profile, tracks daily adherence, and derives a priced grocery list. All data stays in a local SQLite file.",
}

func Execute() {
	// Missing .env is fine, env vars may come from the shell.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}

func resolveDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if fromEnv := os.Getenv("DB_PATH"); fromEnv != "" {
		return fromEnv
	}
	return filepath.Join("data", "sahha.db")
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
