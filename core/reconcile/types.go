package reconcile

// Source is a keyed table of named numeric cells, such as a shipped
// balance table or a rebuilt one.
type Source interface {
	// Names returns the entry names in a stable order.
	Names() []string
	// Targets returns the cell names defined for entry.
	Targets(entry string) []string
	// Lookup returns the value of entry -> target, if defined.
	Lookup(entry, target string) (float64, bool)
}

// Result describes how one entry differs between the two sources.
type Result struct {
	// Name is the entry name.
	Name string `json:"name"`

	// BeforePresent indicates whether the entry exists in the old source.
	BeforePresent bool `json:"before_present"`

	// AfterPresent indicates whether the entry exists in the new source.
	AfterPresent bool `json:"after_present"`

	// Changed lists cells present on both sides with different values,
	// e.g. "Galley: before=50 after=13".
	Changed []string `json:"changed"`

	// Added counts cells only the new source defines.
	Added int `json:"added"`

	// Dropped counts cells only the old source defines.
	Dropped int `json:"dropped"`
}

// HasChanges reports whether the entry differs at all.
func (r Result) HasChanges() bool {
	return !r.BeforePresent || !r.AfterPresent || len(r.Changed) > 0 || r.Added > 0 || r.Dropped > 0
}

// Summary provides aggregate counts for a comparison.
type Summary struct {
	// TotalEntries is the number of distinct entry names on either side.
	TotalEntries int `json:"total_entries"`

	// MissingBefore counts entries only the new source has.
	MissingBefore int `json:"missing_before"`

	// MissingAfter counts entries only the old source has.
	MissingAfter int `json:"missing_after"`

	// ChangedEntries counts entries with at least one difference.
	ChangedEntries int `json:"changed_entries"`

	// ChangedCells counts cells whose value differs.
	ChangedCells int `json:"changed_cells"`

	// AddedCells counts cells only the new source defines.
	AddedCells int `json:"added_cells"`

	// DroppedCells counts cells only the old source defines.
	DroppedCells int `json:"dropped_cells"`
}

// Plan holds the differing entries and the summary.
type Plan struct {
	// Results contains one element per entry that differs, in source order.
	Results []Result `json:"results"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}
