package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "boardroom",
	Short: "Practice your roadmap pitch against an AI stakeholder panel",
	Long: "Boardroom grills a product-roadmap pitch with three AI stakeholder\n" +
		"personas (CEO, CTO, Head of Design), then scores how ready the pitch\n" +
		"is for the real meeting.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(grillCmd)
	rootCmd.AddCommand(exampleCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
