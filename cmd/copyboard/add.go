package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dennis-J-Carroll/copyboard-app/internal/msg"
)

func newAddCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add text to the board (reads stdin when no argument is given)",
		Long: `Places the text at the head of the board and stages it on the system
clipboard, exactly as copying it would. Adding the current head again is a
no-op.

  copyboard add "some text"
  git log --oneline -1 | copyboard add`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, args []string) error { return runAdd(v, args) },
	}

	addBoardFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runAdd(v *viper.Viper, args []string) error {
	var content string
	if len(args) == 1 {
		content = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		content = string(data)
	}

	resp, err := request(v, &msg.Request{Action: msg.ActionAdd, Content: content})
	if err != nil {
		return err
	}
	if err := respErr(resp); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	return nil
}
