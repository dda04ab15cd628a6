package cmd

import (
	"fmt"

	"github.com/aweris/nrs"
	"github.com/spf13/cobra"
)

var resolveVersion string

var resolveCmd = &cobra.Command{
	Use:   "resolve <name>",
	Short: "Resolve a public name to its link",
	Long:  "Resolve a public name such as \"blog.dave\" to the registered content locator.",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveVersion, "version", "v", "", "resolve against a pinned map version (register entry hash)")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	name := args[0]

	topname, err := nrs.TopName(name)
	if err != nil {
		return err
	}

	opts := sessionOptions(topname)
	if resolveVersion != "" {
		opts = append(opts, nrs.WithVersion(resolveVersion))
	}

	s, err := nrs.Open(topname, opts...)
	if err != nil {
		return err
	}

	link, err := s.Resolve(name)
	if err != nil {
		return err
	}

	fmt.Println(link)
	return nil
}
