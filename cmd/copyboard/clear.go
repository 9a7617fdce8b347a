package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dennis-J-Carroll/copyboard-app/internal/msg"
)

func newClearCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "clear",
		Short:   "Empty the board",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runClear(v) },
	}

	addBoardFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runClear(v *viper.Viper) error {
	resp, err := request(v, &msg.Request{Action: msg.ActionClear})
	if err != nil {
		return err
	}
	if err := respErr(resp); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}
