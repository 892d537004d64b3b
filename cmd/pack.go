package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yotam4h/photopacker/internal/config"
	"github.com/yotam4h/photopacker/internal/packer"
	"github.com/yotam4h/photopacker/internal/scanner"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Render photo collages from size-named folders",
	Long: `Pack scans the input directory for size-named folders (e.g. 10_15 for
10×15cm prints), fits each photo proportionally into its slot, and renders
full pages into <output>/collages as PNG files carrying the run DPI.

Input directory structure:
  input/
    10_15/     (10×15cm photos)
    13_18/     (13×18cm photos)
    20_25/     (20×25cm photos)`,
	RunE: runPack,
}

func init() {
	rootCmd.AddCommand(packCmd)

	packCmd.Flags().StringP("input", "i", "", "Input directory containing size-named folders")
	packCmd.Flags().StringP("output", "o", "", "Output directory for collages")
	packCmd.Flags().String("page-size", config.DefaultPageSize, "Page size: a4, a3, letter, legal")
	packCmd.Flags().Int("dpi", config.DefaultDPI, "Output resolution in DPI")
	packCmd.Flags().Int("margin", config.DefaultMarginMM, "Margin between images in millimeters")
	packCmd.Flags().Int("workers", 0, "Parallel page renders (0 = config default)")
	packCmd.Flags().BoolP("verbose", "v", false, "Print per-group grid details")

	_ = packCmd.MarkFlagRequired("input")
	_ = packCmd.MarkFlagRequired("output")
}

func runPack(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	inputDir := mustGetString(cmd, "input")
	outputDir := mustGetString(cmd, "output")
	pageSize := mustGetString(cmd, "page-size")
	dpi := mustGetInt(cmd, "dpi")
	margin := mustGetInt(cmd, "margin")
	workers := mustGetInt(cmd, "workers")
	verbose := mustGetBool(cmd, "verbose")

	if workers == 0 {
		workers = cfg.Workers
	}

	page, err := cfg.PageSize(pageSize)
	if err != nil {
		return err
	}

	backing, err := cfg.BackingColor()
	if err != nil {
		return err
	}

	p, err := packer.New(page, dpi, margin, outputDir)
	if err != nil {
		return err
	}
	p.SetBacking(backing)

	// Handle Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal...")
		cancel()
	}()

	groups, warnings, err := scanner.Scan(inputDir)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: skipping folder %s\n", w)
	}
	if len(groups) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no size-named folders found in input directory")
	}

	fmt.Printf("Page: %s (%g×%gcm) at %d DPI, %dmm margin\n",
		page.Name, page.WidthCm, page.HeightCm, dpi, margin)

	result, err := p.Pack(ctx, groups, packer.Options{
		Workers:      workers,
		ShowProgress: true,
		Verbose:      verbose,
	})
	if err != nil {
		return fmt.Errorf("packing failed: %w", err)
	}

	fmt.Printf("\nRun %s\n", result.RunID)
	fmt.Printf("Groups processed: %d\n", result.GroupsProcessed)
	fmt.Printf("Pages written: %d\n", result.PagesWritten)
	if result.GroupsSkipped > 0 {
		fmt.Printf("Groups skipped: %d\n", result.GroupsSkipped)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	if len(result.Errors) > 0 {
		fmt.Fprintf(os.Stderr, "Errors: %d\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "  - %v\n", e)
		}
	}

	if result.Failed() {
		return errors.New("run completed with failures")
	}
	return nil
}
