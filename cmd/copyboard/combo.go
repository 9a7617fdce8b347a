package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dennis-J-Carroll/copyboard-app/internal/msg"
)

func newComboCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "combo <index>...",
		Short: "Concatenate selected entries and stage the result",
		Long: `Concatenates the entries at the given indices, in the order given, with
no separator, and stages the result on the system clipboard. Indices may
repeat. Any invalid index fails the whole combination.

  copyboard combo 2 0 1`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, args []string) error { return runCombo(v, args) },
	}

	cmd.Flags().Bool("paste", false, "send the paste keystroke after staging")
	addBoardFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runCombo(v *viper.Viper, args []string) error {
	indices := make([]int, 0, len(args))
	for _, arg := range args {
		i, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("index must be a number, got %q", arg)
		}
		indices = append(indices, i)
	}

	resp, err := request(v, &msg.Request{
		Action:  msg.ActionCombo,
		Indices: indices,
		Paste:   v.GetBool("paste"),
	})
	if err != nil {
		return err
	}
	if err := respErr(resp); err != nil {
		return fmt.Errorf("combo: %w", err)
	}
	return nil
}
