package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dennis-J-Carroll/copyboard-app/internal/board"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/logging"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/persist"
)

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and COPYBOARD_* env var prefix.
//
// Precedence (lowest → highest): defaults → config file → COPYBOARD_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("copyboard")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/copyboard/")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(fmt.Sprintf("%s/.config/copyboard", home))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("COPYBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// addLoggingFlags adds the standard logging flags to a command.
func addLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("no-background", false, "run interactively: tinter logs + debug level")
	cmd.Flags().String("log-format", "auto", "log format: auto|text|json")
	cmd.Flags().String("log-level", "", "log level: debug|info|warn|error (default: info for service, debug for interactive)")
}

// addConfigFlag adds the --config flag to a command.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to config file (overrides auto-discovery)")
}

// addBoardFlags adds the board file and capacity flags shared by every
// command that can open the board directly.
func addBoardFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("board-file", defaultBoardPath(), "board file path")
	f.Int("max-size", board.DefaultMaxSize, "maximum number of entries kept on the board")
}

// setupLogging reads logging flags from viper and configures slog.
func setupLogging(v *viper.Viper) {
	interactive := v.GetBool("no-background") || logging.IsTTY(os.Stderr)
	resolveLogging(interactive, v.GetString("log-format"), v.GetString("log-level"))
}

func defaultBoardPath() string {
	path, err := persist.DefaultPath()
	if err != nil {
		return ""
	}
	return path
}

// openStore loads the board file and wires the store to its write-back
// manager.
func openStore(v *viper.Viper) (*board.Store, *persist.Manager, error) {
	path := v.GetString("board-file")
	if path == "" {
		return nil, nil, fmt.Errorf("no board file path (set --board-file, $COPYBOARD_BOARD_FILE or $HOME)")
	}
	mgr, err := persist.NewManager(path, persist.Options{})
	if err != nil {
		return nil, nil, fmt.Errorf("open board file: %w", err)
	}
	store := board.New(v.GetInt("max-size"), mgr.Load(false), mgr)
	return store, mgr, nil
}
