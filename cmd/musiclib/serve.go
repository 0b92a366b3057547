package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KidCrippler/music-library-mcp/internal/library"
	"github.com/KidCrippler/music-library-mcp/internal/logging"
	"github.com/KidCrippler/music-library-mcp/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the library over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := library.OpenStore(cfg.Source)
		if err != nil {
			return err
		}
		st := store.Library().Stats()
		logging.Info().
			Str("source", cfg.Source).
			Int("songs", st.TotalSongs).
			Str("version", st.Version).
			Msg("library loaded")

		srv := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           server.New(store).Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logging.Info().Str("addr", cfg.Server.Addr).Msg("listening")
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logging.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}
