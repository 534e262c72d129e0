package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/mysticguide/internal/card"
	"github.com/arcanaland/mysticguide/internal/config"
	"github.com/arcanaland/mysticguide/internal/render"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [card_id]",
		Short: "Display information about a specific card",
		Long: `Show displays a tarot card's details. If an image directory is configured
(image_dir in config.toml, or --images), the card image is rendered as ANSI art.

Examples:
  mysticguide show MA0
  mysticguide show MIWC4 --images ~/tarot/images`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := card.ByID(args[0])
			if !ok {
				return fmt.Errorf("card not found: %s (see 'mysticguide cards')", args[0])
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			imageDir, _ := cmd.Flags().GetString("images")
			if imageDir == "" {
				imageDir = a.cfg.ImageDir
			}

			var art string
			if imageDir != "" {
				art, err = render.LoadArt(imageDir, config.GetCacheDir(), c)
				if err != nil {
					a.logger.Sugar().Warnw("no card art", "card", c.ID, "error", err)
				}
			}

			render.Card(cmd.OutOrStdout(), c, art, render.TerminalWidth())
			return nil
		},
	}

	cmd.Flags().StringP("images", "i", "", "Directory holding card images")
	return cmd
}
