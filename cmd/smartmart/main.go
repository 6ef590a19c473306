package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "smartmart",
	Short: "SmartMart — single-store POS data tools",
	Long:  "Ops CLI for the SmartMart POS backend: seed the data directory and inspect its records.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (defaults to DATA_DIR or ./data)")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(salesCmd)
	rootCmd.AddCommand(cashiersCmd)
	rootCmd.AddCommand(productsCmd)
}
