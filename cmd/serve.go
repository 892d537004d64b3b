package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yotam4h/photopacker/internal/packer"
	"github.com/yotam4h/photopacker/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview rendered collages in a browser",
	Long: `Serve starts a small web server over an output directory so rendered
pages can be inspected before printing.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("output", "o", "", "Output directory that holds the collages subdirectory")
	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	serveCmd.Flags().String("host", "0.0.0.0", "Host to bind to")

	_ = serveCmd.MarkFlagRequired("output")
}

func runServe(cmd *cobra.Command, args []string) error {
	outputDir := mustGetString(cmd, "output")
	port := mustGetInt(cmd, "port")
	host := mustGetString(cmd, "host")

	collagesDir := filepath.Join(outputDir, packer.CollagesDir)
	if _, err := os.Stat(collagesDir); err != nil {
		return fmt.Errorf("no collages directory at %s, run pack first: %w", collagesDir, err)
	}

	server := web.NewServer(collagesDir, host, port)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigChan:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	}
}
