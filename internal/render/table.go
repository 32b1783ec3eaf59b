package render

import (
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// renderTable prints the plan as a rounded-style table: position, service
// name, direct providers, stage number and labels.
func renderTable(w io.Writer, plan *Plan) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Service", "Depends On", "Stage", "Labels"})

	stages := plan.stageIndex()
	for i, name := range plan.Order {
		svc := plan.service(name)
		t.AppendRow(table.Row{
			i + 1,
			svc.Name,
			strings.Join(svc.DependsOn, ", "),
			stages[name],
			formatLabels(svc.Labels),
		})
	}

	t.Render()
	return nil
}

// formatLabels renders a label map as "k=v" pairs in key order.
func formatLabels(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+labels[k])
	}
	return strings.Join(pairs, ", ")
}
