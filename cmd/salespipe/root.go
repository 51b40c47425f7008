package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "salespipe",
	Short: "Salespipe sequences research, scoring and outreach for sales leads",
	Long: `Salespipe is a small sales pipeline engine. It researches a company,
scores the lead, and generates a validated outreach email, keeping all
intermediate state in a session store.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("redis", "", "Redis address for the session store (default: in-memory)")
}
