package scaffold

import "github.com/youware-labs/ywscaffold/internal/rules"

// PlanEntry describes what Generate would write for one path.
type PlanEntry struct {
	Path string
	Rule string
	Kind rules.Kind
	Size int
}

// Plan renders every path without touching a filesystem.
func Plan(paths []string, table *rules.Table) ([]PlanEntry, error) {
	entries := make([]PlanEntry, 0, len(paths))
	for _, p := range paths {
		content, rule, err := table.Render(p)
		if err != nil {
			return entries, &PathError{Path: p, Step: StepRender, Err: err}
		}
		entries = append(entries, PlanEntry{
			Path: p,
			Rule: rule.Name,
			Kind: content.Kind,
			Size: len(content.Data),
		})
	}
	return entries, nil
}
