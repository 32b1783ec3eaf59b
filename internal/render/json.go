package render

import (
	"encoding/json"
	"io"

	"bootplan/internal/config"
)

type jsonService struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Command     string            `json:"command,omitempty"`
	DependsOn   []string          `json:"depends_on,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
	Maintenance []string          `json:"maintenance,omitempty"`
}

type jsonPlan struct {
	Services []jsonService `json:"services"`
	Order    []string      `json:"order"`
	Stages   [][]string    `json:"stages"`
}

// renderJSON emits the stable machine-readable plan document. Slices are
// never nil so empty plans still produce `[]` for downstream automation.
func renderJSON(w io.Writer, plan *Plan) error {
	doc := jsonPlan{
		Services: make([]jsonService, 0, len(plan.Services)),
		Order:    plan.Order,
		Stages:   plan.Stages,
	}
	if doc.Order == nil {
		doc.Order = []string{}
	}
	if doc.Stages == nil {
		doc.Stages = [][]string{}
	}
	for _, svc := range plan.Services {
		doc.Services = append(doc.Services, toJSONService(svc))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func toJSONService(svc *config.Service) jsonService {
	out := jsonService{
		Name:        svc.Name,
		Description: svc.Description,
		Command:     svc.Command,
		DependsOn:   svc.DependsOn,
		Labels:      svc.Labels,
	}
	for _, w := range svc.Maintenance {
		out.Maintenance = append(out.Maintenance, w.String())
	}
	return out
}
