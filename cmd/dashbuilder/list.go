package main

import (
	"fmt"
	"io"

	"dashbuilder/internal/app"
	"dashbuilder/internal/persist"
	"dashbuilder/internal/widget"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newListCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the saved layout",
		Example: `  dashbuilder list
  dashbuilder list --backend sqlite --data-dir ./state`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			widgets, err := loadSaved(cmd.OutOrStdout(), rt.adapter)
			if err != nil || widgets == nil {
				return err
			}
			renderTable(cmd.OutOrStdout(), widgets, widget.DefaultCatalog())
			return nil
		},
	}
}

// loadSaved loads the saved layout. A missing layout prints the notice and
// returns nil widgets with no error; any other failure is an error.
func loadSaved(w io.Writer, a *persist.Adapter) ([]widget.Instance, error) {
	res := a.Load()
	switch {
	case res.OK():
		if res.Widgets == nil {
			return []widget.Instance{}, nil
		}
		return res.Widgets, nil
	case res.Status == persist.StatusNotFound:
		_, _ = fmt.Fprintln(w, app.NoticeForLoad(res).Message)
		return nil, nil
	default:
		return nil, fmt.Errorf("%s: %w", app.NoticeForLoad(res).Message, res.Err)
	}
}

func renderTable(w io.Writer, widgets []widget.Instance, c *widget.Catalog) {
	if len(widgets) == 0 {
		_, _ = fmt.Fprintln(w, "(0 widgets)")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Title", "Type", "ID"})
	for i, wi := range widgets {
		t.AppendRow(table.Row{i + 1, wi.Title, c.DisplayName(wi.Type), wi.ID})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d widgets", len(widgets))})
	t.Render()
}
