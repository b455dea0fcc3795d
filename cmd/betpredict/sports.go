package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Dxne-Dev/Bet-predict/internal/cli"
	"github.com/Dxne-Dev/Bet-predict/internal/sports"
)

func sportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sports",
		Short: "List the supported sports",
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Println(cli.TitleStyle.Render("Supported sports"))
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME")
			for _, s := range sports.All() {
				fmt.Fprintf(w, "%s\t%s %s\n", s.ID, s.Icon, s.Name)
			}
			return w.Flush()
		},
	}
}
