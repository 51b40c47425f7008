package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// runCmd represents the demo run command
var runCmd = &cobra.Command{
	Use:   "run <company> <contact>",
	Short: "Run the full pipeline for a single lead",
	Long:  `Researches the company, scores the lead, generates a validated outreach email, and prints the aggregate result as JSON.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp(cmd)
		if err != nil {
			fmt.Printf("[Error] %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Sales Pipeline - Demo Run")
		fmt.Println("-------------------------")

		result, err := a.pipeline.Run(cmd.Context(), args[0], args[1])
		if err != nil {
			// Single-line failure, no stack trace.
			fmt.Printf("\n[Error] workflow failed: %v\n", err)
			os.Exit(1)
		}

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Printf("\n[Error] failed to render result: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		fmt.Println("\n[Success] workflow completed.")
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
