package render

import (
	"fmt"
	"io"
)

// renderScript emits a POSIX sh script that starts the services
// sequentially in plan order. A service without a declared command gets a
// placeholder comment so the operator can fill it in.
func renderScript(w io.Writer, plan *Plan) error {
	if _, err := fmt.Fprint(w, "#!/bin/sh\n# startup plan generated by bootplan\nset -e\n"); err != nil {
		return err
	}

	for i, name := range plan.Order {
		svc := plan.service(name)
		if _, err := fmt.Fprintf(w, "\n# %d. %s\n", i+1, name); err != nil {
			return err
		}
		if svc.Command == "" {
			if _, err := fmt.Fprintf(w, "# no command declared for %s\n", name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\n", svc.Command); err != nil {
			return err
		}
	}
	return nil
}
