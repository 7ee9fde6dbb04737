package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gstoney/mcwire/packet"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "mcserver",
		Short:         "Protocol exerciser speaking the Minecraft 1.21 wire format",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		packetsCmd(),
		versionCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var cfgPath, envPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Accept connections until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfgPath, envPath)
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "mcwire.toml", "TOML config file")
	cmd.Flags().StringVar(&envPath, "env", ".env", "optional file of MCWIRE_* variables")
	return cmd
}

// packetsCmd prints the packet table, which is handy when reading captures.
func packetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "packets",
		Short: "List every packet code by phase and direction",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := packet.NewProtocolRegistry()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, phase := range packet.Phases() {
				for _, dir := range []packet.Direction{packet.Serverbound, packet.Clientbound} {
					for _, e := range reg.Entries(dir, phase) {
						fmt.Fprintf(out, "%-13s %-11s 0x%02X %s\n", phase, dir, e.Code, packet.PacketName(e.New()))
					}
				}
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mcserver %s (protocol %d)\n", version, packet.ProtocolVersion)
		},
	}
}
