// copyboard: multi-slot clipboard history.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dennis-J-Carroll/copyboard-app/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "copyboard",
		Short: "Multi-slot clipboard history",
		Long: `copyboard keeps a bounded history of clipboard entries (the board) and
lets you restage, combine, and paste them from the command line, a browser
extension, or a background monitor daemon.

Run "copyboard monitor" to capture clipboard changes continuously. While the
monitor runs, every other command talks to it over a local socket; without
it, commands operate on the board file directly.

Config file search order (first found wins):
  /etc/copyboard/copyboard.toml
  $HOME/.config/copyboard/copyboard.toml
  path supplied via --config

All flags can be set via COPYBOARD_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newListCmd(),
		newAddCmd(),
		newCopyCmd(),
		newCopyAllCmd(),
		newComboCmd(),
		newRemoveCmd(),
		newClearCmd(),
		newStatusCmd(),
		newMonitorCmd(),
		newHostCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("copyboard %s\n", Version)
		},
	}
}

// resolveLogging sets up the global slog logger after flags are parsed.
func resolveLogging(interactive bool, formatStr, levelStr string) {
	format := logging.ParseFormat(formatStr)
	level := logging.ParseLevel(levelStr)
	if levelStr == "" {
		if interactive {
			level = logging.ParseLevel("debug")
		} else {
			level = logging.ParseLevel("info")
		}
	}
	logging.Setup(format, level)
}
