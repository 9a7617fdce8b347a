package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dennis-J-Carroll/copyboard-app/internal/msg"
)

func newRemoveCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "remove [index]",
		Short:   "Remove one entry (the oldest when no index is given)",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, args []string) error { return runRemove(v, args) },
	}

	addBoardFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runRemove(v *viper.Viper, args []string) error {
	req := &msg.Request{Action: msg.ActionRemove}
	if len(args) == 1 {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index must be a number, got %q", args[0])
		}
		req.Index = &index
	}

	resp, err := request(v, req)
	if err != nil {
		return err
	}
	if err := respErr(resp); err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}
