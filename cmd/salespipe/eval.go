package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type evalCase struct {
	Company string `yaml:"company"`
	Contact string `yaml:"contact"`
}

var defaultCases = []evalCase{
	{Company: "TechNova", Contact: "Sarah"},
	{Company: "GreenEnergy", Contact: "Mike"},
	{Company: "QuantumSoft", Contact: "Jen"},
}

// evalCmd runs a batch of leads and prints a pass/fail table.
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Run a batch of leads and report structure and validation outcomes",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp(cmd)
		if err != nil {
			fmt.Printf("[Error] %v\n", err)
			os.Exit(1)
		}

		cases := defaultCases
		if path, _ := cmd.Flags().GetString("cases"); path != "" {
			cases, err = loadCases(path)
			if err != nil {
				fmt.Printf("[Error] %v\n", err)
				os.Exit(1)
			}
		}

		fmt.Printf("%-15s | %-10s | %-10s | %-10s\n", "Company", "Contact", "Status", "Validation")
		fmt.Println(strings.Repeat("-", 55))

		for _, c := range cases {
			result, err := a.pipeline.Run(cmd.Context(), c.Company, c.Contact)
			if err != nil {
				fmt.Printf("%-15s | %-10s | ERROR      | %v\n", c.Company, c.Contact, err)
				continue
			}

			status := "PASS"
			if result.SessionID == "" || result.Research.CompanyName == "" || result.Outreach.Outreach.Email == "" {
				status = "FAIL"
			}
			fmt.Printf("%-15s | %-10s | %-10s | %-10s\n",
				c.Company, c.Contact, status, result.Outreach.Outreach.ValidationStatus)
		}
	},
}

func loadCases(path string) ([]evalCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cases file: %w", err)
	}
	var cases []evalCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("failed to parse cases file: %w", err)
	}
	return cases, nil
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().String("cases", "", "YAML file with a list of {company, contact} cases")
}
