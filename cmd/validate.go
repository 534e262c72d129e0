package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/mysticguide/internal/card"
	"github.com/arcanaland/mysticguide/internal/validator"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the card catalog, spreads and saved readings",
		Long: `Validate checks that the built-in deck holds 78 unique cards, that every spread
has one position per card, and that the saved readings are well formed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			results := validator.NewValidator(card.All(), card.Spreads(), a.store.List()).Validate()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Validation Results:")
			fmt.Fprintln(out, "-------------------")

			if results.Valid() {
				fmt.Fprintln(out, "✅ Catalog, spreads and saved readings are valid.")
			} else {
				fmt.Fprintf(out, "❌ Found %d validation errors:\n", len(results.Errors))
				for i, e := range results.Errors {
					fmt.Fprintf(out, "%d. %s\n", i+1, e)
				}
			}

			if len(results.Warnings) > 0 {
				fmt.Fprintln(out, "\nWarnings:")
				for i, warn := range results.Warnings {
					fmt.Fprintf(out, "%d. %s\n", i+1, warn)
				}
			}

			if !results.Valid() {
				return fmt.Errorf("validation failed")
			}
			return nil
		},
	}
}
