package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/termtint/internal/playground"
	"github.com/alexisbeaulieu97/termtint/pkg/render"
)

const playgroundSampleText = "The quick brown fox"

func newPlaygroundCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "playground [text]",
		Short: "Try utility classes interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("playground requires an interactive terminal")
			}

			text := playgroundSampleText
			if len(args) == 1 {
				text = args[0]
			}

			log, err := newCommandLogger(root.verbose)
			if err != nil {
				return err
			}

			program := tea.NewProgram(playground.NewModel(text, render.NewWriter(os.Stdout), log))
			_, err = program.Run()
			return err
		},
	}

	return cmd
}
