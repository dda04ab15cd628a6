package cmd

import (
	"context"
	"fmt"

	"github.com/aweris/nrs"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <link>",
	Short: "Register a subname",
	Long:  "Register a link under a public name (e.g. \"blog.dave\") and commit a new map version.",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	name, link := args[0], args[1]

	topname, err := nrs.TopName(name)
	if err != nil {
		return err
	}

	s, err := nrs.Open(topname, sessionOptions(topname)...)
	if err != nil {
		return err
	}

	if _, err := s.Add(name, link); err != nil {
		return err
	}

	entry, err := s.Commit(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("%s -> %s\n", name, link)
	fmt.Printf("version: %s\n", entry)
	return nil
}
