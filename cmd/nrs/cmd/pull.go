package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/aweris/nrs"
	"github.com/spf13/cobra"
)

var pullCmd = &cobra.Command{
	Use:   "pull <topname>",
	Short: "Pull a top name's history from the remote",
	Long:  "Download the version history of a top name from the configured OCI repository and advance the local head.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPull,
}

func init() {
	rootCmd.AddCommand(pullCmd)
}

func runPull(cmd *cobra.Command, args []string) error {
	topname := args[0]

	s, err := nrs.Open(topname, sessionOptions(topname)...)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Pulling %s...\n", topname)

	if err := s.Pull(context.Background()); err != nil {
		return fmt.Errorf("pull failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Done. Head: %s\n", s.Head())
	return nil
}
