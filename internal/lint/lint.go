// Package lint runs a fixed set of style and hygiene rules over a loaded
// manifest. Rules are advisory on top of config.Validate's structural
// checks; each finding names the rule, the service, and the detail.
package lint

import (
	"fmt"
	"regexp"
	"sort"

	"bootplan/internal/config"
)

// Severity ranks a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one finding from one rule.
type Issue struct {
	Rule     string
	Service  string
	Severity Severity
	Detail   string
}

// String renders the issue as a single report line.
func (i Issue) String() string {
	return fmt.Sprintf("%s %s: %s: %s", i.Severity, i.Service, i.Rule, i.Detail)
}

// Rule is a named check over a whole manifest.
type Rule struct {
	Name     string
	Severity Severity
	Check    func(*config.Manifest) []Issue
}

// labelKeyPattern accepts lowercase-kebab keys: "tier", "app-role".
var labelKeyPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// Rules returns the fixed rule set in reporting order.
func Rules() []Rule {
	return []Rule{
		{Name: "no-self-dependency", Severity: SeverityError, Check: checkSelfDependency},
		{Name: "no-duplicate-dependency", Severity: SeverityError, Check: checkDuplicateDependency},
		{Name: "command-required", Severity: SeverityWarning, Check: checkCommandRequired},
		{Name: "valid-window", Severity: SeverityError, Check: checkWindowOrder},
		{Name: "label-format", Severity: SeverityError, Check: checkLabelFormat},
	}
}

// Run applies every rule and concatenates the findings in rule order.
func Run(m *config.Manifest) []Issue {
	var issues []Issue
	for _, rule := range Rules() {
		for _, issue := range rule.Check(m) {
			issue.Rule = rule.Name
			issue.Severity = rule.Severity
			issues = append(issues, issue)
		}
	}
	return issues
}

// HasErrors reports whether any finding is error-severity.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

func checkSelfDependency(m *config.Manifest) []Issue {
	var issues []Issue
	for _, svc := range m.Services {
		for _, dep := range svc.DependsOn {
			if dep == svc.Name {
				issues = append(issues, Issue{Service: svc.Name, Detail: "service depends on itself"})
			}
		}
	}
	return issues
}

func checkDuplicateDependency(m *config.Manifest) []Issue {
	var issues []Issue
	for _, svc := range m.Services {
		seen := make(map[string]struct{}, len(svc.DependsOn))
		for _, dep := range svc.DependsOn {
			if _, ok := seen[dep]; ok {
				issues = append(issues, Issue{
					Service: svc.Name,
					Detail:  fmt.Sprintf("dependency %q listed more than once", dep),
				})
				continue
			}
			seen[dep] = struct{}{}
		}
	}
	return issues
}

func checkCommandRequired(m *config.Manifest) []Issue {
	var issues []Issue
	for _, svc := range m.Services {
		if svc.Command == "" {
			issues = append(issues, Issue{
				Service: svc.Name,
				Detail:  "no start command declared; script output will emit a placeholder",
			})
		}
	}
	return issues
}

func checkWindowOrder(m *config.Manifest) []Issue {
	var issues []Issue
	for _, svc := range m.Services {
		for i := 1; i < len(svc.Maintenance); i++ {
			prev, cur := svc.Maintenance[i-1], svc.Maintenance[i]
			if cur.Start < prev.Start {
				issues = append(issues, Issue{
					Service: svc.Name,
					Detail:  fmt.Sprintf("maintenance windows out of order: %s after %s", cur, prev),
				})
			} else if cur.Start <= prev.End {
				issues = append(issues, Issue{
					Service: svc.Name,
					Detail:  fmt.Sprintf("maintenance windows overlap: %s and %s", prev, cur),
				})
			}
		}
	}
	return issues
}

func checkLabelFormat(m *config.Manifest) []Issue {
	var issues []Issue
	for _, svc := range m.Services {
		for _, key := range sortedKeys(svc.Labels) {
			if !labelKeyPattern.MatchString(key) {
				issues = append(issues, Issue{
					Service: svc.Name,
					Detail:  fmt.Sprintf("label key %q is not lowercase-kebab", key),
				})
			}
		}
	}
	return issues
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
