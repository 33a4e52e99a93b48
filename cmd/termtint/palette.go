package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/termtint/pkg/palette"
)

func newPaletteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette [family] [shade]",
		Short: "Inspect the color palette",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd, args)
		},
	}

	return cmd
}

func runPalette(cmd *cobra.Command, args []string) error {
	pal := palette.Default()
	out := cmd.OutOrStdout()
	renderer := lipgloss.NewRenderer(out)

	switch len(args) {
	case 0:
		for _, family := range pal.Families() {
			fmt.Fprintln(out, family)
		}
		return nil

	case 1:
		variants := pal.Variants(args[0])
		if len(variants) == 0 {
			return fmt.Errorf("unknown color family %q", args[0])
		}
		name := strings.ToLower(args[0])
		for _, v := range variants {
			fmt.Fprintf(out, "%s %s-%d %s\n", swatch(renderer, v.Value), name, v.Shade, v.Value)
		}
		return nil

	default:
		shade, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("shade must be a number, got %q", args[1])
		}
		value, err := pal.Resolve(args[0], shade)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", swatch(renderer, value), value)
		return nil
	}
}

func swatch(renderer *lipgloss.Renderer, value string) string {
	return renderer.NewStyle().Background(lipgloss.Color(value)).Render("   ")
}
