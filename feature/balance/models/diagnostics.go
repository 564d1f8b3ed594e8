package models

import "fmt"

// WarningKind classifies a non-fatal diagnostic.
type WarningKind string

const (
	// WarnUnknownCategory marks an OBJ_MASK character with no category.
	WarnUnknownCategory WarningKind = "unknown_category"
	// WarnConflictingDuplicate marks a unit defined twice with different masks.
	WarnConflictingDuplicate WarningKind = "conflicting_duplicate"
)

// Warning is one non-fatal condition met while reading the sources.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Unit    string      `json:"unit"`
	Message string      `json:"message"`
}

// Diagnostics collects warnings for a single run.
type Diagnostics struct {
	Warnings []Warning `json:"warnings"`
}

// Warnf records a warning. A nil collector discards it.
func (d *Diagnostics) Warnf(kind WarningKind, unit, format string, args ...any) {
	if d == nil {
		return
	}
	d.Warnings = append(d.Warnings, Warning{
		Kind:    kind,
		Unit:    unit,
		Message: fmt.Sprintf(format, args...),
	})
}

// Count returns the number of warnings of kind.
func (d *Diagnostics) Count(kind WarningKind) int {
	n := 0
	for _, w := range d.Warnings {
		if w.Kind == kind {
			n++
		}
	}
	return n
}
