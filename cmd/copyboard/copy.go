package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dennis-J-Carroll/copyboard-app/internal/msg"
)

func newCopyCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "copy <index>",
		Short: "Stage a board entry on the system clipboard",
		Long: `Puts the entry at the given index (0 = most recent, see "copyboard list")
back on the system clipboard. By default the paste keystroke is also sent
to the focused window; pass --paste=false to only stage.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, args []string) error { return runCopy(v, args[0]) },
	}

	cmd.Flags().Bool("paste", true, "send the paste keystroke after staging")
	addBoardFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runCopy(v *viper.Viper, arg string) error {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("index must be a number, got %q", arg)
	}

	// A one-element combination: the daemon stages the entry itself, which
	// keeps the staged content alive after this process exits.
	resp, err := request(v, &msg.Request{
		Action:  msg.ActionCombo,
		Indices: []int{index},
		Paste:   v.GetBool("paste"),
	})
	if err != nil {
		return err
	}
	if err := respErr(resp); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	return nil
}
