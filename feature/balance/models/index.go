package models

// UnitIndex maps unit names to their category membership, in first-seen order.
type UnitIndex struct {
	names   []string
	members map[string]Mask
}

// NewUnitIndex creates an empty index.
func NewUnitIndex() *UnitIndex {
	return &UnitIndex{members: make(map[string]Mask)}
}

// Insert adds a unit or merges its membership into an existing one.
// It returns the previous mask and whether the unit already existed.
func (x *UnitIndex) Insert(name string, mask Mask) (prev Mask, existed bool) {
	prev, existed = x.members[name]
	if !existed {
		x.names = append(x.names, name)
	}
	x.members[name] = prev | mask
	return prev, existed
}

// Has reports whether name is indexed.
func (x *UnitIndex) Has(name string) bool {
	_, ok := x.members[name]
	return ok
}

// Mask returns the categories of name.
func (x *UnitIndex) Mask(name string) Mask {
	return x.members[name]
}

// Names returns the indexed names in insertion order.
func (x *UnitIndex) Names() []string {
	return x.names
}

// Len returns the number of indexed names.
func (x *UnitIndex) Len() int {
	return len(x.names)
}
