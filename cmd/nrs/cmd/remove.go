package cmd

import (
	"context"
	"fmt"

	"github.com/aweris/nrs"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a subname",
	Long:  "Remove the entry registered under a public name and commit a new map version.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	topname, err := nrs.TopName(name)
	if err != nil {
		return err
	}
	subname, err := nrs.ParseSubnames(name)
	if err != nil {
		return err
	}

	s, err := nrs.Open(topname, sessionOptions(topname)...)
	if err != nil {
		return err
	}

	link, err := s.Remove(subname)
	if err != nil {
		return err
	}

	entry, err := s.Commit(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("removed %s (was %s)\n", name, link)
	fmt.Printf("version: %s\n", entry)
	return nil
}
