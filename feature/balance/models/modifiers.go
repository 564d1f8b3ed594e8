package models

// Entry is one ENTRY of the sparse balance table.
type Entry struct {
	Name    string
	targets []string
	values  map[string]float64
}

// NewEntry creates an empty entry.
func NewEntry(name string) *Entry {
	return &Entry{Name: name, values: make(map[string]float64)}
}

// Set stores a target modifier. Re-setting a target keeps its position.
func (e *Entry) Set(target string, value float64) {
	if _, ok := e.values[target]; !ok {
		e.targets = append(e.targets, target)
	}
	e.values[target] = value
}

// Lookup returns the modifier for target, if defined.
func (e *Entry) Lookup(target string) (float64, bool) {
	if e == nil {
		return 0, false
	}
	v, ok := e.values[target]
	return v, ok
}

// Targets returns the target names in source order.
func (e *Entry) Targets() []string {
	return e.targets
}

// ModifierTable is the sparse table read from balance.xml.
type ModifierTable struct {
	names   []string
	entries map[string]*Entry
}

// NewModifierTable creates an empty table.
func NewModifierTable() *ModifierTable {
	return &ModifierTable{entries: make(map[string]*Entry)}
}

// Put stores e, replacing any earlier entry with the same name. A replaced
// entry keeps its original position.
func (t *ModifierTable) Put(e *Entry) {
	if _, ok := t.entries[e.Name]; !ok {
		t.names = append(t.names, e.Name)
	}
	t.entries[e.Name] = e
}

// Get returns the entry for name or nil.
func (t *ModifierTable) Get(name string) *Entry {
	return t.entries[name]
}

// Names returns entry names in source order.
func (t *ModifierTable) Names() []string {
	return t.names
}

// Targets returns the targets defined for name.
func (t *ModifierTable) Targets(name string) []string {
	if e := t.entries[name]; e != nil {
		return e.Targets()
	}
	return nil
}

// Lookup returns the modifier entry -> target, if defined.
func (t *ModifierTable) Lookup(entry, target string) (float64, bool) {
	return t.entries[entry].Lookup(target)
}

// Len returns the number of entries.
func (t *ModifierTable) Len() int {
	return len(t.names)
}
