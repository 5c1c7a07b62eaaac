package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridable at build time with -ldflags.
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sahha %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
