package catalog

import "fmt"

// TableId identifies a table within one of two disjoint scopes: tables in
// the database's permanent root scope (InRoot) and tables local to an
// in-progress session. An id number is meaningful only together with its
// scope flag.
type TableId struct {
	InRoot bool
	ID     int64
}

func NewTableId(inRoot bool, id int64) TableId {
	return TableId{InRoot: inRoot, ID: id}
}

// InvalidTableId is the default identity used where no table is referenced
// (for example the src/dst slots of a node table).
func InvalidTableId() TableId {
	return TableId{InRoot: false, ID: -1}
}

func (t TableId) IsValid() bool { return t.ID >= 0 }

// Compare orders identities by (scope, id): every local-scope id sorts
// before every root-scope id, and numeric id breaks ties within a scope.
func (t TableId) Compare(o TableId) int {
	if t.InRoot != o.InRoot {
		if o.InRoot {
			return -1
		}
		return 1
	}
	switch {
	case t.ID < o.ID:
		return -1
	case t.ID > o.ID:
		return 1
	default:
		return 0
	}
}

func (t TableId) Less(o TableId) bool { return t.Compare(o) < 0 }

func (t TableId) String() string {
	scope := 'L'
	if t.InRoot {
		scope = 'G'
	}
	return fmt.Sprintf("#%c%d", scope, t.ID)
}

// ColId identifies a column within a table, split between the key portion
// (IsKey) and the value portion. Ordering follows the same (flag, id)
// convention as TableId.
type ColId struct {
	IsKey bool
	ID    int64
}

func NewColId(isKey bool, id int64) ColId {
	return ColId{IsKey: isKey, ID: id}
}

func (c ColId) IsValid() bool { return c.ID >= 0 }

func (c ColId) Compare(o ColId) int {
	if c.IsKey != o.IsKey {
		if o.IsKey {
			return -1
		}
		return 1
	}
	switch {
	case c.ID < o.ID:
		return -1
	case c.ID > o.ID:
		return 1
	default:
		return 0
	}
}

func (c ColId) Less(o ColId) bool { return c.Compare(o) < 0 }

func (c ColId) String() string {
	part := 'D'
	if c.IsKey {
		part = 'K'
	}
	return fmt.Sprintf(".%c%d", part, c.ID)
}
