package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/npillmayer/translit/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the websocket host for browser text boxes",
	Long: `Serve the transliteration engine over a websocket.

Endpoints:
  GET  /ws                 - keystroke protocol
  POST /api/transliterate  - convert a text key by key
  GET  /api/tables         - list the active tables

With keymap.watch set, the keymap file is reloaded when it changes.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, eng, err := setup()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(eng, server.Options{
		CollabTimeout:  cfg.Collab.Timeout.Duration,
		DefaultGender:  cfg.Collab.Gender,
		DefaultRegion:  cfg.Collab.Region,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		ReadTimeout:    cfg.Server.ReadTimeout.Duration,
		WriteTimeout:   cfg.Server.WriteTimeout.Duration,
	})
	if cfg.Keymap.Watch && cfg.Keymap.Path != "" {
		if err := srv.WatchKeymap(ctx, cfg.Keymap.Path); err != nil {
			return err
		}
	}
	return srv.ListenAndServe(ctx, cfg.Address())
}
