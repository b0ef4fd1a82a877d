package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/levy-tracker/backend/internal/domain/template"
)

func templateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Inspect the bundled category template",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List template categories and items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry := template.Default()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "version %s\n\n", registry.Version())
			fmt.Fprintln(w, "KEY\tTYPE\tNAME\tURDU")
			for _, c := range registry.ListCategories() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Key, c.Type, c.NameEn, c.NameUr)
				for _, it := range c.Items {
					fmt.Fprintf(w, "  %s\t\t%s\t\n", it.Key, it.Description)
				}
			}
			return w.Flush()
		},
	})
	return cmd
}
