package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func inputsCmd(g *globals) *cobra.Command {
	c := &cobra.Command{
		Use:   "inputs",
		Short: "Manage instruction inputs in a workspace",
	}

	c.AddCommand(inputsListCmd(g))
	return c
}

func inputsListCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inputs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(g)
			if err != nil {
				return err
			}

			refs, err := ws.catalog.ListInputs(ws.root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no inputs found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Fprintf(out, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}
	return cmd
}
