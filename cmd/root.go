package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mysticguide",
		Short: "Draw tarot spreads and get AI-generated readings",
		Long: `Mystic Guide draws tarot cards into a spread of your choice and asks a
language model to interpret them. Readings can be saved locally and reviewed later.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("locale", "", "UI language (en, es, fr); defaults to the config value")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error); defaults to the config value")

	root.AddCommand(newReadCmd())
	root.AddCommand(newReadingsCmd())
	root.AddCommand(newSpreadsCmd())
	root.AddCommand(newCardsCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// Execute runs the command tree with ctx
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
