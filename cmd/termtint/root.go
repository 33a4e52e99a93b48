package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/termtint/internal/config"
	"github.com/alexisbeaulieu97/termtint/internal/logger"
	"github.com/alexisbeaulieu97/termtint/pkg/palette"
)

type rootFlags struct {
	verbose     bool
	palettePath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "termtint",
		Short:         "termtint styles terminal text with chained utility classes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyPaletteOverlay(flags.palettePath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.palettePath, "palette", "", "Path to a palette overlay file")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newPaletteCmd())
	cmd.AddCommand(newPlaygroundCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// applyPaletteOverlay swaps the process palette for one extended with the
// overlay file, so every subcommand resolves shades against it.
func applyPaletteOverlay(path string) error {
	if path == "" {
		return nil
	}

	pal, err := config.Load(path, palette.Default())
	if err != nil {
		return err
	}

	palette.SetDefault(pal)
	return nil
}

func newCommandLogger(verbose bool) (*logger.Logger, error) {
	opts := logger.Options{}
	if verbose {
		opts.Level = "debug"
		opts.Pretty = true
	}

	return logger.New(opts)
}
