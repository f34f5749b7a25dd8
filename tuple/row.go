// Package tuple implements the kind-tagged positional rows the catalog
// persists in the underlying key-value store.
package tuple

import "fmt"

// DataKind discriminates what a catalog row describes. It is stored in the
// row header so the kind is recoverable without decoding the fields.
type DataKind byte

const (
	KindInvalid DataKind = iota
	KindNode
	KindEdge
	KindAssoc
	KindIndex
	KindSequence
)

func (k DataKind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindEdge:
		return "edge"
	case KindAssoc:
		return "assoc"
	case KindIndex:
		return "index"
	case KindSequence:
		return "sequence"
	default:
		return fmt.Sprintf("invalid(%d)", byte(k))
	}
}

// IsTable reports whether rows of this kind can be resolved as a top-level
// table. Assoc rows are tables too, but only reachable through their main
// table, never independently.
func (k DataKind) IsTable() bool {
	return k == KindNode || k == KindEdge
}

type ValueKind byte

const (
	ValNull ValueKind = iota
	ValBool
	ValInt
	ValFloat
	ValText
	ValBytes
)

// Value is one positional field of a catalog row.
type Value struct {
	Kind  ValueKind
	Bool  bool
	Int   int64
	Float float64
	Text  string
	Bytes []byte
}

func Null() Value { return Value{Kind: ValNull} }

func Bool(b bool) Value { return Value{Kind: ValBool, Bool: b} }

func Int(i int64) Value { return Value{Kind: ValInt, Int: i} }

func Float(f float64) Value { return Value{Kind: ValFloat, Float: f} }

func Text(s string) Value { return Value{Kind: ValText, Text: s} }

func Bytes(b []byte) Value { return Value{Kind: ValBytes, Bytes: b} }

// Row is a kind-tagged, fixed-arity tuple of typed fields as persisted in
// the catalog. Rows are immutable once constructed; accessors are optional
// (position out of range or a differently typed field yields ok=false).
type Row struct {
	kind   DataKind
	fields []Value
	raw    []byte
}

// NewRow builds a row from in-memory values. The raw form is materialized
// eagerly so Data is always available for diagnostics.
func NewRow(kind DataKind, fields ...Value) *Row {
	r := &Row{kind: kind, fields: fields}
	r.raw = r.encode()
	return r
}

func (r *Row) Kind() DataKind { return r.kind }

func (r *Row) NumFields() int { return len(r.fields) }

// Data returns the encoded bytes of the row, used as the payload of
// bad-data diagnostics. Callers must not modify the returned slice.
func (r *Row) Data() []byte { return r.raw }

func (r *Row) GetBool(pos int) (bool, bool) {
	if pos < 0 || pos >= len(r.fields) || r.fields[pos].Kind != ValBool {
		return false, false
	}
	return r.fields[pos].Bool, true
}

func (r *Row) GetInt(pos int) (int64, bool) {
	if pos < 0 || pos >= len(r.fields) || r.fields[pos].Kind != ValInt {
		return 0, false
	}
	return r.fields[pos].Int, true
}

func (r *Row) GetFloat(pos int) (float64, bool) {
	if pos < 0 || pos >= len(r.fields) || r.fields[pos].Kind != ValFloat {
		return 0, false
	}
	return r.fields[pos].Float, true
}

func (r *Row) GetText(pos int) (string, bool) {
	if pos < 0 || pos >= len(r.fields) || r.fields[pos].Kind != ValText {
		return "", false
	}
	return r.fields[pos].Text, true
}

func (r *Row) GetBytes(pos int) ([]byte, bool) {
	if pos < 0 || pos >= len(r.fields) || r.fields[pos].Kind != ValBytes {
		return nil, false
	}
	return r.fields[pos].Bytes, true
}
