// Package drift compares two manifests and reports per-service changes
// with dotted field paths, for the `diff` command.
package drift

import (
	"fmt"
	"sort"
	"strings"

	"bootplan/internal/config"
	"bootplan/internal/window"
)

// Op classifies a change.
type Op string

const (
	OpAdded   Op = "added"
	OpRemoved Op = "removed"
	OpChanged Op = "changed"
)

// Change is one detected difference. Path is dotted, rooted at the
// service name (`api`, `api.command`, `api.labels.tier`). Old and New
// hold the rendered values; either may be empty for added/removed.
type Change struct {
	Path string
	Op   Op
	Old  string
	New  string
}

// String renders the change in a diff-like one-line form.
func (c Change) String() string {
	switch c.Op {
	case OpAdded:
		if c.New != "" {
			return fmt.Sprintf("+ %s = %s", c.Path, c.New)
		}
		return fmt.Sprintf("+ %s", c.Path)
	case OpRemoved:
		if c.Old != "" {
			return fmt.Sprintf("- %s = %s", c.Path, c.Old)
		}
		return fmt.Sprintf("- %s", c.Path)
	default:
		return fmt.Sprintf("~ %s: %s -> %s", c.Path, c.Old, c.New)
	}
}

// Compare reports the changes that turn the old manifest into the new
// one. Services present in both are compared field by field; the result
// lists additions and changes in the new manifest's declaration order,
// then removals in the old manifest's order. A nil result means no drift.
func Compare(oldM, newM *config.Manifest) []Change {
	var changes []Change

	for _, svc := range newM.Services {
		prev := oldM.Service(svc.Name)
		if prev == nil {
			changes = append(changes, Change{Path: svc.Name, Op: OpAdded})
			continue
		}
		changes = append(changes, compareService(prev, svc)...)
	}

	for _, svc := range oldM.Services {
		if newM.Service(svc.Name) == nil {
			changes = append(changes, Change{Path: svc.Name, Op: OpRemoved})
		}
	}

	return changes
}

func compareService(oldSvc, newSvc *config.Service) []Change {
	var changes []Change
	name := newSvc.Name

	if oldSvc.Description != newSvc.Description {
		changes = append(changes, fieldChange(name+".description", oldSvc.Description, newSvc.Description))
	}
	if oldSvc.Command != newSvc.Command {
		changes = append(changes, fieldChange(name+".command", oldSvc.Command, newSvc.Command))
	}
	if oldDeps, newDeps := joinList(oldSvc.DependsOn), joinList(newSvc.DependsOn); oldDeps != newDeps {
		changes = append(changes, fieldChange(name+".depends_on", oldDeps, newDeps))
	}
	changes = append(changes, compareLabels(name, oldSvc.Labels, newSvc.Labels)...)
	if oldWin, newWin := joinWindows(oldSvc.Maintenance), joinWindows(newSvc.Maintenance); oldWin != newWin {
		changes = append(changes, fieldChange(name+".maintenance", oldWin, newWin))
	}

	return changes
}

func compareLabels(service string, oldLabels, newLabels map[string]string) []Change {
	keys := make(map[string]struct{}, len(oldLabels)+len(newLabels))
	for k := range oldLabels {
		keys[k] = struct{}{}
	}
	for k := range newLabels {
		keys[k] = struct{}{}
	}

	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	var changes []Change
	for _, k := range sorted {
		oldVal, inOld := oldLabels[k]
		newVal, inNew := newLabels[k]
		path := service + ".labels." + k
		switch {
		case !inOld:
			changes = append(changes, Change{Path: path, Op: OpAdded, New: newVal})
		case !inNew:
			changes = append(changes, Change{Path: path, Op: OpRemoved, Old: oldVal})
		case oldVal != newVal:
			changes = append(changes, Change{Path: path, Op: OpChanged, Old: oldVal, New: newVal})
		}
	}
	return changes
}

func fieldChange(path, oldVal, newVal string) Change {
	switch {
	case oldVal == "":
		return Change{Path: path, Op: OpAdded, New: newVal}
	case newVal == "":
		return Change{Path: path, Op: OpRemoved, Old: oldVal}
	default:
		return Change{Path: path, Op: OpChanged, Old: oldVal, New: newVal}
	}
}

func joinList(items []string) string {
	return strings.Join(items, ", ")
}

func joinWindows(windows []window.Window) string {
	parts := make([]string, 0, len(windows))
	for _, w := range windows {
		parts = append(parts, w.String())
	}
	return strings.Join(parts, ", ")
}
