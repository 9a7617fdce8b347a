package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dennis-J-Carroll/copyboard-app/internal/clip"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/host"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/logging"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/paste"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/persist"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/wire"
)

func newHostCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "host",
		Short: "Run the native messaging host on stdin/stdout",
		Long: `Serves the browser extension protocol: 4-byte native-order length prefix
plus UTF-8 JSON, both directions, on stdin/stdout.

Browsers launch this process themselves from the native messaging manifest;
running it by hand is only useful for debugging. Logs go to a file because
stdout carries protocol frames.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runHost(v) },
	}

	f := cmd.Flags()
	f.String("log-file", defaultHostLog(), "log file path (empty = stderr)")
	f.String("log-level", "info", "log level: debug|info|warn|error")
	addBoardFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func defaultHostLog() string {
	dir, err := persist.DefaultDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "native_messaging.log")
}

func runHost(v *viper.Viper) error {
	if path := v.GetString("log-file"); path != "" {
		closer, err := logging.SetupFile(path, logging.ParseLevel(v.GetString("log-level")))
		if err != nil {
			slog.Warn("log file unavailable, logging to stderr", "err", err)
		} else {
			defer closer.Close()
		}
	}

	store, mgr, err := openStore(v)
	if err != nil {
		return err
	}
	// Runs on every exit path, panics included, so the batching window
	// never swallows the last mutation.
	defer mgr.ForceSave()

	// Browsers run several hosts concurrently (one per extension port); the
	// session id keeps their interleaved log lines separable.
	log := slog.With("session", uuid.NewString())
	log.Info("native messaging host started", "version", Version, "board_file", mgr.Path())

	backend := clip.New(0)
	defer backend.Close()

	h := host.New(store, backend, paste.New(), mgr)
	if err := h.Serve(wire.New(os.Stdin, os.Stdout)); err != nil {
		log.Error("host session failed", "err", err)
		return err
	}
	log.Info("native messaging host stopped")
	return nil
}
