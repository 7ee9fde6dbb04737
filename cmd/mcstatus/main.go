package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gstoney/mcwire/packet"
	"github.com/gstoney/mcwire/status"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		proto   int32
		timeout time.Duration
		raw     bool
	)

	cmd := &cobra.Command{
		Use:           "mcstatus [host:port]",
		Short:         "Query the status of a server",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := "localhost:25565"
			if len(args) == 1 {
				addr = args[0]
			}

			reg, err := packet.NewProtocolRegistry()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			res, err := status.Query(ctx, addr, proto, packet.NewDispatcher(reg, packet.DefaultLimits()))
			if err != nil {
				return fmt.Errorf("querying %s: %w", addr, err)
			}

			if raw {
				fmt.Fprintln(cmd.OutOrStdout(), res.Raw)
				return nil
			}
			printResult(cmd.OutOrStdout(), addr, res)
			return nil
		},
	}

	cmd.Flags().Int32Var(&proto, "proto", packet.ProtocolVersion, "protocol version to announce")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "give up after this long")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the status JSON as received")
	return cmd
}

func printResult(w io.Writer, addr string, res status.Result) {
	r := res.Response
	fmt.Fprintf(w, "%s\n", addr)
	fmt.Fprintf(w, "  motd:    %s\n", r.MOTD())
	fmt.Fprintf(w, "  version: %s (protocol %d)\n", r.Version.Name, r.Version.Protocol)
	fmt.Fprintf(w, "  players: %d/%d\n", r.Players.Online, r.Players.Max)
	for _, p := range r.Players.Sample {
		fmt.Fprintf(w, "    %s (%s)\n", p.Name, p.ID)
	}
	fmt.Fprintf(w, "  latency: %s\n", res.Latency.Round(time.Millisecond))
}
