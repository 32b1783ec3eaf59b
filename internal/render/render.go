// Package render turns a computed startup plan into its output
// representations: plain text, a table, a JSON document, a Graphviz
// digraph, or a sequential startup script.
package render

import (
	"fmt"
	"io"

	"bootplan/internal/config"
)

// Format selects an output renderer.
type Format string

const (
	FormatText   Format = "text"
	FormatTable  Format = "table"
	FormatJSON   Format = "json"
	FormatDOT    Format = "dot"
	FormatScript Format = "script"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatTable, FormatJSON, FormatDOT, FormatScript:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (expected text, table, json, dot or script)", s)
}

// Plan is a fully computed startup plan ready for rendering. Services
// holds the planned subset in declaration order; Order and Stages come
// from the resolver. StageView switches the text renderer to the
// wave-by-wave listing.
type Plan struct {
	Services  []*config.Service
	Order     []string
	Stages    [][]string
	StageView bool
}

// service returns the planned service with the given name. The resolver
// only emits declared names, so a miss is a programming error.
func (p *Plan) service(name string) *config.Service {
	for _, svc := range p.Services {
		if svc.Name == name {
			return svc
		}
	}
	panic(fmt.Sprintf("render: plan order references unknown service %q", name))
}

// stageIndex maps each service name to its stage number, 1-based.
func (p *Plan) stageIndex() map[string]int {
	idx := make(map[string]int, len(p.Order))
	for i, stage := range p.Stages {
		for _, name := range stage {
			idx[name] = i + 1
		}
	}
	return idx
}

// Render writes the plan to w in the requested format.
func Render(w io.Writer, format Format, plan *Plan) error {
	switch format {
	case FormatText:
		return renderText(w, plan)
	case FormatTable:
		return renderTable(w, plan)
	case FormatJSON:
		return renderJSON(w, plan)
	case FormatDOT:
		return renderDOT(w, plan)
	case FormatScript:
		return renderScript(w, plan)
	}
	return fmt.Errorf("unknown output format %q", format)
}
