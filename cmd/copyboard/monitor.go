package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dennis-J-Carroll/copyboard-app/internal/clip"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/host"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/ipc"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/paste"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/poller"
)

func newMonitorCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Run the clipboard monitor daemon",
		Long: `Watches the system clipboard and records every change on the board.

While the monitor runs it also answers the other copyboard commands over a
local socket, so they all share its live board, and it follows the board
file on disk so edits made by other processes are picked up.

Config file search order:
  /etc/copyboard/copyboard.toml
  $HOME/.config/copyboard/copyboard.toml
  path supplied via --config

Precedence (lowest → highest): defaults → config file → COPYBOARD_* env vars → flags`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runMonitor(v) },
	}

	cmd.Flags().Duration("interval", clip.DefaultPollInterval, "clipboard poll interval")
	addBoardFlags(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runMonitor(v *viper.Viper) error {
	setupLogging(v)

	store, mgr, err := openStore(v)
	if err != nil {
		return err
	}
	// Runs on every exit path, panics included, so the batching window
	// never swallows the last mutation.
	defer mgr.ForceSave()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("copyboard monitor starting",
		"version", Version,
		"board_file", mgr.Path(),
		"entries", store.Size(),
		"max_size", store.MaxSize(),
	)

	backend := clip.New(v.GetDuration("interval"))
	defer backend.Close()
	slog.Info("clipboard backend", "name", backend.Name())

	h := host.New(store, backend, paste.New(), mgr)

	if ln, err := ipc.Listen(); err != nil {
		slog.Warn("control socket unavailable", "err", err)
	} else {
		defer ln.Close()
		slog.Info("control socket listening", "path", ipc.SocketPath())
		go h.ServeListener(ln)
	}

	go mgr.Flusher(ctx.Done())

	if err := mgr.Watch(ctx.Done(), func(entries []string) {
		store.Replace(entries)
		slog.Info("board file rewritten externally, board reloaded", "entries", len(entries))
	}); err != nil {
		slog.Warn("board file watch unavailable", "err", err)
	}

	poller.New(store, backend).Run(ctx)

	slog.Info("copyboard monitor stopped")
	return nil
}
