package app

import (
	"context"
	"fmt"
	"io"

	"bootplan/internal/config"
	"bootplan/internal/dag"
	"bootplan/internal/render"
)

// PlanOptions carries the per-invocation knobs of the plan command.
type PlanOptions struct {
	Paths     []string
	Format    string
	StageView bool
	Down      bool
	Targets   []string
}

// Plan loads and validates the manifests, resolves the startup order and
// stages, and renders the result to outW.
func (a *App) Plan(ctx context.Context, opts PlanOptions, outW io.Writer) error {
	format, err := render.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	manifest, err := a.loadManifest(ctx, opts.Paths)
	if err != nil {
		return err
	}
	if err := config.Validate(manifest); err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}

	nodes, edges := dependencyGraph(manifest)
	if len(opts.Targets) > 0 {
		nodes, edges, err = dag.Subgraph(nodes, edges, opts.Targets)
		if err != nil {
			return err
		}
	}

	order, err := dag.Resolve(nodes, edges)
	if err != nil {
		return err
	}
	stages, err := dag.Stages(nodes, edges)
	if err != nil {
		return err
	}

	if opts.Down {
		order = dag.Reverse(order)
		stages = reverseStages(stages)
	}

	planned := make([]*config.Service, 0, len(nodes))
	for _, name := range nodes {
		planned = append(planned, manifest.Service(name))
	}

	a.logger.Info("Plan computed.", "services", len(order), "stages", len(stages), "down", opts.Down)
	return render.Render(outW, format, &render.Plan{
		Services:  planned,
		Order:     order,
		Stages:    stages,
		StageView: opts.StageView,
	})
}

// dependencyGraph translates the manifest into resolver input: one node
// per service in declaration order, one edge per depends_on entry with
// the dependency as provider.
func dependencyGraph(m *config.Manifest) ([]string, []dag.Edge) {
	nodes := m.Names()
	var edges []dag.Edge
	for _, svc := range m.Services {
		for _, dep := range svc.DependsOn {
			edges = append(edges, dag.Edge{From: dep, To: svc.Name})
		}
	}
	return nodes, edges
}

// reverseStages flips the wave order for shutdown plans; the last wave
// up is the first wave down.
func reverseStages(stages [][]string) [][]string {
	out := make([][]string, len(stages))
	for i, stage := range stages {
		out[len(stages)-1-i] = stage
	}
	return out
}
