// Package reconcile compares two keyed tables of numeric cells and reports
// what changed between them.
//
// The balance tool uses it to show how the rebuilt table differs from the
// table the game shipped: entries that only exist on one side, cells whose
// rounded value moved, and cells that were filled in.
//
// # Usage
//
//	plan := reconcile.Compare(shipped, rebuilt)
//	fmt.Println(plan.Summary.ChangedCells)
package reconcile
