package syncer

import (
	"sort"
)

// Plan describes what a sync run will do. Update holds names present both
// locally and remotely; Preserve holds local-only names. Files that exist
// only remotely are never part of a plan.
type Plan struct {
	Update   []string
	Preserve []string
}

// BuildPlan computes the sync plan from the local and remote name sets.
// Both result slices are sorted for deterministic reporting.
func BuildPlan(local, remote []string) Plan {
	remoteSet := make(map[string]struct{}, len(remote))
	for _, name := range remote {
		remoteSet[name] = struct{}{}
	}

	seen := make(map[string]struct{}, len(local))
	var plan Plan
	for _, name := range local {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if _, ok := remoteSet[name]; ok {
			plan.Update = append(plan.Update, name)
		} else {
			plan.Preserve = append(plan.Preserve, name)
		}
	}

	sort.Strings(plan.Update)
	sort.Strings(plan.Preserve)
	return plan
}
