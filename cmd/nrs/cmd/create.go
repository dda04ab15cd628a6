package cmd

import (
	"context"
	"fmt"

	"github.com/aweris/nrs"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create <topname> <link>",
	Short: "Register a new top name",
	Long:  "Register a top name with its default link and commit the first map version.",
	Args:  cobra.ExactArgs(2),
	RunE:  runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	topname, link := args[0], args[1]

	s, err := nrs.Open(topname, sessionOptions(topname)...)
	if err != nil {
		return err
	}

	if s.Head() != "" {
		return fmt.Errorf("top name %q already exists", topname)
	}

	if _, err := s.Add(topname, link); err != nil {
		return err
	}

	if _, err := s.Commit(context.Background()); err != nil {
		return err
	}

	loc, err := s.ContainerLocator()
	if err != nil {
		return err
	}

	fmt.Printf("%s -> %s\n", topname, link)
	fmt.Printf("container: %s\n", loc)
	return nil
}
