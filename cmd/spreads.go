package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/mysticguide/internal/card"
	"github.com/arcanaland/mysticguide/internal/render"
)

func newSpreadsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spreads",
		Short: "List the available spreads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			render.Spreads(out, card.Spreads(), a.bundle, render.TerminalWidth())
			for _, s := range card.Spreads() {
				fmt.Fprintf(out, "\n%s\n", s.Name)
				for i, p := range s.Positions {
					fmt.Fprintf(out, "  %d. %s: %s\n", i+1, p.Name, p.Description)
				}
			}
			return nil
		},
	}
}

func newCardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "List the cards in the deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			suit, _ := cmd.Flags().GetString("suit")
			major, _ := cmd.Flags().GetBool("major")

			out := cmd.OutOrStdout()
			for _, c := range card.All() {
				if major && c.IsMinor() {
					continue
				}
				if suit != "" && !strings.EqualFold(c.Suit, suit) {
					continue
				}
				fmt.Fprintf(out, "%-6s %s\n", c.ID, c.Name)
			}
			return nil
		},
	}

	cmd.Flags().String("suit", "", "Only list cards of this suit (wands, cups, swords, pentacles)")
	cmd.Flags().Bool("major", false, "Only list the major arcana")
	return cmd
}
