package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/aweris/nrs"
	"github.com/spf13/cobra"
)

var pushCmd = &cobra.Command{
	Use:   "push <topname>",
	Short: "Push a top name's history to the remote",
	Long:  "Upload the committed version history of a top name to the configured OCI repository.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPush,
}

func init() {
	rootCmd.AddCommand(pushCmd)
}

func runPush(cmd *cobra.Command, args []string) error {
	topname := args[0]

	s, err := nrs.Open(topname, sessionOptions(topname)...)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Pushing %s...\n", topname)

	if err := s.Push(context.Background()); err != nil {
		return fmt.Errorf("push failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Done. Head: %s\n", s.Head())
	return nil
}
