package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dennis-J-Carroll/copyboard-app/internal/msg"
)

func newCopyAllCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "copyall",
		Short: "Join the whole board with newlines and stage it",
		Long: `Joins every board entry, most recent first, separated by newlines, and
stages the result on the system clipboard. Fails on an empty board.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runCopyAll(v) },
	}

	cmd.Flags().Bool("paste", false, "send the paste keystroke after staging")
	addBoardFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runCopyAll(v *viper.Viper) error {
	resp, err := request(v, &msg.Request{
		Action: msg.ActionPasteAll,
		Paste:  v.GetBool("paste"),
	})
	if err != nil {
		return err
	}
	if err := respErr(resp); err != nil {
		return fmt.Errorf("copyall: %w", err)
	}
	return nil
}
