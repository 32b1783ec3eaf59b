package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"bootplan/internal/config"
	"bootplan/internal/window"
)

// translateService binds one decoded service block into the model,
// evaluating the labels expression and parsing maintenance windows.
func (l *Loader) translateService(block *serviceBlock) (*config.Service, error) {
	svc := &config.Service{
		Name:        block.Name,
		Description: block.Description,
		Command:     block.Command,
		DependsOn:   block.DependsOn,
	}

	labels, err := decodeLabels(block.Labels)
	if err != nil {
		return nil, fmt.Errorf("service %q: %w", block.Name, err)
	}
	svc.Labels = labels

	for _, raw := range block.Maintenance {
		w, err := window.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("service %q: %w", block.Name, err)
		}
		svc.Maintenance = append(svc.Maintenance, w)
	}

	return svc, nil
}

// decodeLabels evaluates the labels expression and converts the result to
// a string map. Both `labels = { tier = "data" }` and `labels = {}` are
// accepted; anything not convertible to map(string) is an error.
func decodeLabels(expr hcl.Expression) (map[string]string, error) {
	if expr == nil {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("labels: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}

	converted, err := convert.Convert(val, cty.Map(cty.String))
	if err != nil {
		return nil, fmt.Errorf("labels must be a map of strings: %w", err)
	}
	if converted.IsNull() || converted.LengthInt() == 0 {
		return nil, nil
	}

	labels := make(map[string]string, converted.LengthInt())
	for key, v := range converted.AsValueMap() {
		labels[key] = v.AsString()
	}
	return labels, nil
}
