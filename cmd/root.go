package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "photopacker",
	Short: "Create photo collages with exact physical dimensions",
	Long: `PhotoPacker lays out batches of same-size photos onto fixed-size pages
(a4, a3, letter, legal) and renders each page as a print-ready PNG.
Input photos are grouped by size-named folders such as 10_15 for 10×15cm.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
