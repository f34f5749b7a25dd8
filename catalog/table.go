package catalog

import (
	"fmt"

	"graft/tuple"
	"graft/typing"
)

// TableInfo is the fully resolved schema view of one table: its storage
// identity, its key/value column typing, the key typing inherited from the
// node tables an edge connects, and any associate tables attached to it.
// A TableInfo is immutable once assembled and owned solely by its caller.
type TableInfo struct {
	Kind       tuple.DataKind
	TableId    TableId
	SrcTableId TableId
	DstTableId TableId

	// KeyTyping holds this table's own key columns; for an edge these are
	// the edge-local discriminator columns beyond the inherited endpoint
	// keys. ValTyping holds the value columns, and DataKeys is always
	// exactly their name set.
	KeyTyping []typing.Column
	ValTyping []typing.Column
	DataKeys  map[string]struct{}

	// SrcKeyTyping and DstKeyTyping are the key typings of the referenced
	// endpoint node tables, copied verbatim; empty for non-edges.
	SrcKeyTyping []typing.Column
	DstKeyTyping []typing.Column

	// Associates lists the assoc tables attached to this table, in catalog
	// order. Associates never nest further.
	Associates []TableInfo
}

// ResolveTableInfo reconstructs the schema of the named table from raw
// catalog rows: it dispatches on the row's kind, transitively resolves an
// edge's endpoint key typing through a second catalog lookup, and merges in
// any attached associate tables. Every decode step fails fast; a corrupt
// entry aborts the whole call and no partial TableInfo is ever returned.
func ResolveTableInfo(cat Source, name string) (*TableInfo, error) {
	row, err := cat.Resolve(name)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, &UndefinedTableError{Name: name}
	}

	var info *TableInfo
	switch row.Kind() {
	case tuple.KindNode:
		info, err = decodeNode(row)
	case tuple.KindEdge:
		info, err = decodeEdge(cat, row)
	default:
		return nil, &UnsupportedKindError{Kind: row.Kind()}
	}
	if err != nil {
		return nil, err
	}

	related, err := cat.RelatedTables(name)
	if err != nil {
		return nil, err
	}
	for _, rel := range related {
		assoc, err := decodeAssoc(rel.Name, rel.Row)
		if err != nil {
			return nil, err
		}
		// Nothing legitimately writes associates onto an associate; treat
		// such an entry as corruption rather than resolving or dropping it.
		nested, err := cat.RelatedTables(rel.Name)
		if err != nil {
			return nil, err
		}
		if len(nested) > 0 {
			return nil, corruptf("associate %q has associates of its own", rel.Name)
		}
		info.Associates = append(info.Associates, *assoc)
	}
	return info, nil
}

// Node row layout: 0 in_root, 1 table id, 2 key typing, 3 value typing.
func decodeNode(row *tuple.Row) (*TableInfo, error) {
	keyCols, err := columnsAt(row, 2, "node key typing")
	if err != nil {
		return nil, err
	}
	valCols, err := columnsAt(row, 3, "node value typing")
	if err != nil {
		return nil, err
	}
	id, err := identityAt(row, 0, "node table")
	if err != nil {
		return nil, err
	}
	return &TableInfo{
		Kind:       tuple.KindNode,
		TableId:    id,
		SrcTableId: InvalidTableId(),
		DstTableId: InvalidTableId(),
		KeyTyping:  keyCols,
		ValTyping:  valCols,
		DataKeys:   dataKeysOf(valCols),
	}, nil
}

// Edge row layout: 0 in_root, 1 table id, 2/3 src identity, 4/5 dst
// identity, 6 edge-local key typing, 7 value typing. The endpoint key
// typings come from a second lookup of each referenced node row.
func decodeEdge(cat Source, row *tuple.Row) (*TableInfo, error) {
	keyCols, err := columnsAt(row, 6, "edge key typing")
	if err != nil {
		return nil, err
	}
	valCols, err := columnsAt(row, 7, "edge value typing")
	if err != nil {
		return nil, err
	}
	srcId, err := identityAt(row, 2, "edge src")
	if err != nil {
		return nil, err
	}
	dstId, err := identityAt(row, 4, "edge dst")
	if err != nil {
		return nil, err
	}
	srcKey, err := endpointKeyTyping(cat, srcId, "src")
	if err != nil {
		return nil, err
	}
	dstKey, err := endpointKeyTyping(cat, dstId, "dst")
	if err != nil {
		return nil, err
	}
	id, err := identityAt(row, 0, "edge table")
	if err != nil {
		return nil, err
	}
	return &TableInfo{
		Kind:         tuple.KindEdge,
		TableId:      id,
		SrcTableId:   srcId,
		DstTableId:   dstId,
		KeyTyping:    keyCols,
		ValTyping:    valCols,
		DataKeys:     dataKeysOf(valCols),
		SrcKeyTyping: srcKey,
		DstKeyTyping: dstKey,
	}, nil
}

// endpointKeyTyping fetches the node row an edge endpoint references and
// decodes its key typing. The edge row itself was already located, so a
// missing endpoint here is a dangling reference, not a missing table.
func endpointKeyTyping(cat Source, id TableId, which string) ([]typing.Column, error) {
	ref, err := cat.TableData(id.ID, id.InRoot)
	if err != nil {
		return nil, err
	}
	if ref == nil {
		return nil, corruptf("dangling %s reference %s", which, id)
	}
	if ref.Kind() != tuple.KindNode {
		return nil, corruptf("%s reference %s is a %s row, not a node", which, id, ref.Kind())
	}
	return columnsAt(ref, 2, which+" key typing")
}

// Assoc row layout: 0 in_root, 1 table id, 4 value typing. Associates carry
// no key structure of their own.
func decodeAssoc(name string, row *tuple.Row) (*TableInfo, error) {
	if row == nil {
		return nil, corruptf("related table %q has no row data", name)
	}
	if row.Kind() != tuple.KindAssoc {
		return nil, corruptf("related table %q is a %s row, not an assoc", name, row.Kind())
	}
	valCols, err := columnsAt(row, 4, "assoc value typing")
	if err != nil {
		return nil, err
	}
	id, err := identityAt(row, 0, "assoc table")
	if err != nil {
		return nil, err
	}
	return &TableInfo{
		Kind:       tuple.KindAssoc,
		TableId:    id,
		SrcTableId: InvalidTableId(),
		DstTableId: InvalidTableId(),
		ValTyping:  valCols,
		DataKeys:   dataKeysOf(valCols),
	}, nil
}

// identityAt reads the (in_root, id) pair stored at pos and pos+1.
func identityAt(row *tuple.Row, pos int, what string) (TableId, error) {
	inRoot, ok := row.GetBool(pos)
	if !ok {
		return TableId{}, corruptf("cannot extract %s scope flag (field %d)", what, pos)
	}
	id, ok := row.GetInt(pos + 1)
	if !ok {
		return TableId{}, corruptf("cannot extract %s id (field %d)", what, pos+1)
	}
	return NewTableId(inRoot, id), nil
}

// columnsAt reads the type-expression text stored at pos and decomposes it
// into named columns. An absent text field carries the row bytes out for
// diagnostics; a typing that is not a named tuple is corruption.
func columnsAt(row *tuple.Row, pos int, what string) ([]typing.Column, error) {
	text, ok := row.GetText(pos)
	if !ok {
		return nil, &BadDataFormatError{Data: row.Data()}
	}
	t, err := typing.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", what, err)
	}
	cols, ok := t.ExtractNamedTuple()
	if !ok {
		return nil, corruptf("%s %q is not a named tuple", what, text)
	}
	return cols, nil
}

func dataKeysOf(cols []typing.Column) map[string]struct{} {
	keys := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		keys[c.Name] = struct{}{}
	}
	return keys
}
