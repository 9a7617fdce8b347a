package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dennis-J-Carroll/copyboard-app/internal/ipc"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/msg"
)

func newStatusCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show board and daemon state",
		Long: `Displays the board size, capacity, backing file and persistence state.

When a monitor daemon is running, the request is answered by the daemon over
the local socket; otherwise the board file is inspected directly.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runStatus(v) },
	}

	cmd.Flags().Bool("json", false, "output raw JSON")
	addBoardFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runStatus(v *viper.Viper) error {
	req := &msg.Request{Action: msg.ActionStatus}

	var (
		resp      *msg.Response
		transport string
		err       error
	)
	if ipc.IsRunning() {
		resp, err = viaDaemon(req)
		if err == nil {
			transport = fmt.Sprintf("daemon (%s)", ipc.SocketPath())
		}
	}
	if resp == nil {
		resp, err = viaFile(v, req)
		if err != nil {
			return err
		}
		transport = "board file (no daemon)"
	}
	if err := respErr(resp); err != nil {
		return fmt.Errorf("status: %w", err)
	}

	if v.GetBool("json") {
		enc, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Println(string(enc))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 1, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Transport:\t%s\n", transport)
	fmt.Fprintf(w, "Entries:\t%d / %d\n", resp.Size, resp.MaxSize)
	if resp.Path != "" {
		fmt.Fprintf(w, "Board file:\t%s\n", resp.Path)
		state := "clean"
		if resp.Dirty {
			state = "dirty (unflushed changes)"
		}
		fmt.Fprintf(w, "Persistence:\t%s\n", state)
	}
	return w.Flush()
}
