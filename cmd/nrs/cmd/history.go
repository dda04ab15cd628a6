package cmd

import (
	"context"
	"fmt"

	"github.com/aweris/nrs"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <topname>",
	Short: "Show a top name's version history",
	Long:  "List the register entry hashes of a top name's committed map versions, newest first.",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	topname := args[0]

	s, err := nrs.Open(topname, sessionOptions(topname)...)
	if err != nil {
		return err
	}

	hashes, err := s.History(context.Background())
	if err != nil {
		return err
	}

	for i, hash := range hashes {
		marker := " "
		if i == 0 {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, hash)
	}

	return nil
}
