package cmd

import (
	"fmt"

	"github.com/aweris/nrs"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <topname>",
	Short: "List entries of a top name",
	Long:  "List every registered subname of a top name with its link.",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	topname := args[0]

	s, err := nrs.Open(topname, sessionOptions(topname)...)
	if err != nil {
		return err
	}

	count := 0
	for subname, link := range s.Map().Entries() {
		if subname == "" {
			subname = "(default)"
		}
		fmt.Printf("%s\t%s\n", subname, link)
		count++
	}

	if count == 0 {
		fmt.Println("(no entries)")
	}

	return nil
}
