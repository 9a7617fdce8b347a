package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dennis-J-Carroll/copyboard-app/internal/msg"
)

func newListCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the board, newest first",
		Long: `Prints a numbered preview of every board entry, most recent first.
Previews are truncated and have newlines flattened; use --json for the
full entries.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runList(v) },
	}

	f := cmd.Flags()
	f.Int("chars", 0, "preview width in characters (0 = default)")
	f.Bool("json", false, "output full entries as JSON")
	addBoardFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runList(v *viper.Viper) error {
	if v.GetBool("json") {
		resp, err := request(v, &msg.Request{Action: msg.ActionList})
		if err != nil {
			return err
		}
		if err := respErr(resp); err != nil {
			return fmt.Errorf("list: %w", err)
		}
		items := resp.Items
		if items == nil {
			items = []string{}
		}
		enc, _ := json.MarshalIndent(items, "", "  ")
		fmt.Println(string(enc))
		return nil
	}

	resp, err := request(v, &msg.Request{Action: msg.ActionPreview, MaxChars: v.GetInt("chars")})
	if err != nil {
		return err
	}
	if err := respErr(resp); err != nil {
		return fmt.Errorf("list: %w", err)
	}
	if len(resp.Preview) == 0 {
		fmt.Println("Board is empty.")
		return nil
	}
	// Preview lines carry their own index prefix; print them in board order.
	for i := 0; i < len(resp.Preview); i++ {
		if line, ok := resp.Preview[i]; ok {
			fmt.Println(line)
		}
	}
	return nil
}
