package main

import (
	"fmt"
	"io"

	"dashbuilder/internal/persist"
	"dashbuilder/internal/widget"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExportCmd(rt *runtime) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the saved layout as JSON or YAML",
		Example: `  dashbuilder export > layout.json
  dashbuilder export --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("invalid format %q (want json or yaml)", format)
			}
			widgets, err := loadSaved(cmd.ErrOrStderr(), rt.adapter)
			if err != nil || widgets == nil {
				return err
			}
			return writeLayout(cmd.OutOrStdout(), widgets, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func writeLayout(w io.Writer, widgets []widget.Instance, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(widgets); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	data, err := persist.Encode(widgets)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
