package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available notations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			fmt.Fprintln(w, "NAME\tKEY\tINFINITE")
			for _, n := range Notations() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", n.Name(), key(n.Name()), n.Infinite())
			}

			return w.Flush()
		},
	}
}
