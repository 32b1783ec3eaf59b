package render

import (
	"fmt"
	"io"
	"strings"
)

// renderText prints one service per line, numbered, or the stage-by-stage
// view when the plan asks for it.
func renderText(w io.Writer, plan *Plan) error {
	if plan.StageView {
		for i, stage := range plan.Stages {
			if _, err := fmt.Fprintf(w, "stage %d: %s\n", i+1, strings.Join(stage, ", ")); err != nil {
				return err
			}
		}
		return nil
	}

	width := len(fmt.Sprint(len(plan.Order)))
	for i, name := range plan.Order {
		if _, err := fmt.Fprintf(w, "%*d. %s\n", width, i+1, name); err != nil {
			return err
		}
	}
	return nil
}
