package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rashmi-kavindya/RubiksCube"
	"github.com/Rashmi-kavindya/RubiksCube/internal/metrics"
	"github.com/Rashmi-kavindya/RubiksCube/internal/server"
)

var serveAddr string

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the cube over HTTP",
	Long: `Start an HTTP server holding one cube.

Endpoints:
  GET  /cube            - Full cube state
  GET  /faces/{face}    - One face (up, left, front, right, bottom, back)
  POST /moves/{token}   - Apply a move token (200 applied, 422 unknown, 409 EX)
  POST /shuffle         - Shuffle using the configured mode
  POST /reset           - Reset to solved
  GET  /metrics         - Prometheus metrics

Requests are applied one at a time in arrival order.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	engine, closeJournal, err := newEngine("http")
	if err != nil {
		return err
	}
	defer closeJournal()

	m := metrics.New()
	engine.OnEvent(m.Observe)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	owner := rubikscube.NewOwner(engine)
	ownerDone := make(chan struct{})
	go func() {
		owner.Run(ctx)
		close(ownerDone)
	}()

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.NewHandler(owner, logger, m.Handler()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		stop()
		<-ownerDone
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
		if err := srv.Close(); err != nil {
			logger.Error("failed to close server", "error", err)
		}
	}
	<-ownerDone
	logger.Info("server stopped")
	return nil
}
