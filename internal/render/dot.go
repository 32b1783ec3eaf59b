package render

import (
	"fmt"
	"io"
)

// renderDOT emits a Graphviz digraph of the dependency edges, provider
// pointing at dependant, so `dot -Tsvg` draws startup flow top to bottom.
func renderDOT(w io.Writer, plan *Plan) error {
	if _, err := fmt.Fprintln(w, "digraph bootplan {"); err != nil {
		return err
	}

	for _, svc := range plan.Services {
		if _, err := fmt.Fprintf(w, "  %q;\n", svc.Name); err != nil {
			return err
		}
	}
	for _, svc := range plan.Services {
		for _, dep := range svc.DependsOn {
			if _, err := fmt.Fprintf(w, "  %q -> %q;\n", dep, svc.Name); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
