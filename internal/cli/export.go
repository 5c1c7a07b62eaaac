package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zakariamou/sahha/internal/db"
	"github.com/zakariamou/sahha/internal/services"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a full backup document as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command) error {
	database, err := db.OpenSQLite(resolveDBPath())
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	repositories := db.NewRepositories(database)
	backup := services.NewBackupService(
		repositories.Settings,
		repositories.PlanDays,
		repositories.DailyLogs,
		repositories.Measurements,
		repositories.Prices,
	)

	doc, err := backup.Export(time.Now())
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	payload = append(payload, '\n')

	if exportOut == "" {
		cmd.OutOrStdout().Write(payload)
		return nil
	}
	if err := os.WriteFile(exportOut, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	return nil
}
