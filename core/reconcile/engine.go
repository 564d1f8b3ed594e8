package reconcile

import (
	"fmt"
	"math"
	"strconv"
)

// Compare diffs before against after. Values are compared after rounding
// to the nearest integer, which is the precision the game files store.
// Results follow after's entry order, then entries only before has.
func Compare(before, after Source) *Plan {
	plan := &Plan{Results: []Result{}}

	seen := make(map[string]struct{})
	var order []string
	for _, src := range []Source{after, before} {
		for _, name := range src.Names() {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			order = append(order, name)
		}
	}
	plan.Summary.TotalEntries = len(order)

	beforeSet := nameSet(before)
	afterSet := nameSet(after)

	for _, name := range order {
		_, inBefore := beforeSet[name]
		_, inAfter := afterSet[name]

		result := Result{
			Name:          name,
			BeforePresent: inBefore,
			AfterPresent:  inAfter,
			Changed:       []string{},
		}
		if inBefore && inAfter {
			compareEntry(&result, before, after)
		}

		if !inBefore {
			plan.Summary.MissingBefore++
		}
		if !inAfter {
			plan.Summary.MissingAfter++
		}
		if !result.HasChanges() {
			continue
		}

		plan.Summary.ChangedEntries++
		plan.Summary.ChangedCells += len(result.Changed)
		plan.Summary.AddedCells += result.Added
		plan.Summary.DroppedCells += result.Dropped
		plan.Results = append(plan.Results, result)
	}

	return plan
}

func compareEntry(result *Result, before, after Source) {
	name := result.Name
	for _, target := range after.Targets(name) {
		nv, _ := after.Lookup(name, target)
		ov, ok := before.Lookup(name, target)
		if !ok {
			result.Added++
			continue
		}
		if math.Round(ov) != math.Round(nv) {
			result.Changed = append(result.Changed,
				fmt.Sprintf("%s: before=%s after=%s", target, format(ov), format(nv)))
		}
	}
	for _, target := range before.Targets(name) {
		if _, ok := after.Lookup(name, target); !ok {
			result.Dropped++
		}
	}
}

func nameSet(src Source) map[string]struct{} {
	set := make(map[string]struct{}, len(src.Names()))
	for _, name := range src.Names() {
		set[name] = struct{}{}
	}
	return set
}

func format(v float64) string {
	return strconv.FormatFloat(math.Round(v), 'f', -1, 64)
}
