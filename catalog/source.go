package catalog

import "graft/tuple"

// Related is one associate row attached to a main table, paired with the
// associate's own name.
type Related struct {
	Name string
	Row  *tuple.Row
}

// Source is the catalog-snapshot capability resolution reads through. All
// three lookups must observe one consistent view of the catalog for the
// duration of a resolution call; Snapshot satisfies that by construction.
//
// Row lookups return (nil, nil) when no entry exists, keeping absence
// distinguishable from a storage fault.
type Source interface {
	// Resolve looks up a table's catalog row by name.
	Resolve(name string) (*tuple.Row, error)

	// TableData looks up a catalog row by table identity.
	TableData(id int64, inRoot bool) (*tuple.Row, error)

	// RelatedTables enumerates the associate rows attached to a table, in
	// catalog order.
	RelatedTables(name string) ([]Related, error)
}
