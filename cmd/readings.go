package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arcanaland/mysticguide/internal/locale"
	"github.com/arcanaland/mysticguide/internal/render"
	"github.com/arcanaland/mysticguide/internal/store"
)

// newReadingsCmd represents the readings command group
func newReadingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readings",
		Short: "Review and manage saved readings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "ls",
		Short: "List saved readings, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			readings := a.store.List()
			out := cmd.OutOrStdout()
			if len(readings) == 0 {
				fmt.Fprintln(out, a.bundle.T("saved.empty"))
				return nil
			}

			fmt.Fprintln(out, a.bundle.T("saved.title"))
			render.ReadingSummary(out, readings)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show [reading_id]",
		Short: "Show a saved reading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			r, ok := a.store.GetByID(args[0])
			if !ok {
				return fmt.Errorf("%s", a.bundle.T("saved.notFound", "id", args[0]))
			}
			render.Reading(cmd.OutOrStdout(), r, a.bundle, render.TerminalWidth())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "rm [reading_id]",
		Aliases: []string{"delete"},
		Short:   "Delete a saved reading",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			return removeReading(cmd.OutOrStdout(), a.store, a.bundle, args[0])
		},
	})

	return cmd
}

// removeReading deletes one saved reading and reports the outcome
func removeReading(out io.Writer, st *store.Store, bundle *locale.Bundle, id string) error {
	if _, ok := st.GetByID(id); !ok {
		fmt.Fprintln(out, bundle.T("saved.notFound", "id", id))
		return nil
	}
	if err := st.DeleteChecked(id); err != nil {
		fmt.Fprintln(out, bundle.T("errors.deleteFailed"))
		return fmt.Errorf("error deleting reading %s: %w", id, err)
	}
	fmt.Fprintln(out, bundle.T("saved.deleted"))
	return nil
}
