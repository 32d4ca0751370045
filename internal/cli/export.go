package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstviz/export"
)

// exportOpts holds the options for the export command.
type exportOpts struct {
	graphOpts
	format string
	output string
}

// exportCommand creates the export command, which writes a trace as JSON or YAML.
func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export [graph-file]",
		Short: "Write a trace as JSON or YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd, args, opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: json or yaml (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func (c *CLI) runExport(cmd *cobra.Command, args []string, opts exportOpts) error {
	name := opts.format
	if name == "" {
		name = c.cfg.Format
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		return err
	}

	tr, err := c.buildTrace(cmd, args, opts.graphOpts)
	if err != nil {
		return err
	}

	w, closeFn, err := openOutput(cmd, opts.output)
	if err != nil {
		return err
	}
	if err := export.Encode(w, tr, format); err != nil {
		closeFn()
		return err
	}
	if err := closeFn(); err != nil {
		return err
	}

	if opts.output != "" && opts.output != "-" {
		printSuccess(cmd.ErrOrStderr(), "Exported %d steps", tr.Len())
		printFile(cmd.ErrOrStderr(), opts.output)
	}
	return nil
}
