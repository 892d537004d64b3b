package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yotam4h/photopacker/internal/config"
)

var sizesCmd = &cobra.Command{
	Use:   "sizes",
	Short: "List supported page sizes",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		for _, name := range cfg.PageSizeNames() {
			page, _ := cfg.PageSize(name)
			fmt.Printf("%-8s %g×%gcm\n", name, page.WidthCm, page.HeightCm)
		}
	},
}

func init() {
	rootCmd.AddCommand(sizesCmd)
}
