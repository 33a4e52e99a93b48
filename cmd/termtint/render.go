package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/termtint/pkg/classes"
	"github.com/alexisbeaulieu97/termtint/pkg/element"
	"github.com/alexisbeaulieu97/termtint/pkg/render"
)

type renderOptions struct {
	Classes string
	Out     string
	Verbose bool
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [text]...",
		Short: "Style text and write it to the terminal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose
			return runRender(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Classes, "classes", "c", "", "Utility classes to apply")
	cmd.Flags().StringVar(&opts.Out, "out", "ansi", "Output form: ansi or raw markup")

	return cmd
}

func runRender(cmd *cobra.Command, opts renderOptions, args []string) error {
	log, err := newCommandLogger(opts.Verbose)
	if err != nil {
		return err
	}

	var sink element.Sink
	switch opts.Out {
	case "ansi":
		sink = render.NewWriter(cmd.OutOrStdout())
	case "raw":
		sink = element.WriterSink{Writer: cmd.OutOrStdout()}
	default:
		return fmt.Errorf("unknown output form %q (want ansi or raw)", opts.Out)
	}

	e, err := classes.Apply(element.New(strings.Join(args, " "), sink), opts.Classes)
	if err != nil {
		return err
	}

	log.WithFields(map[string]any{"classes": opts.Classes, "out": opts.Out}).Debug("rendering element")

	e.Render()
	fmt.Fprintln(cmd.OutOrStdout())

	return nil
}
