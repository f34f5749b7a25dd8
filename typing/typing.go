// Package typing implements the type-expression language persisted inside
// catalog rows: primitive names, ?T for nullable, [T] for homogeneous
// lists, and {name: T, ...} for named tuples. Named tuples are what give a
// table its column structure; field order is physical column order.
package typing

import (
	"sort"
	"strings"
)

type Kind int

const (
	KindAny Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindUuid
	KindBytes
	KindNullable   // Elem set
	KindList       // Elem set
	KindNamedTuple // Cols set
)

var primitives = map[string]Kind{
	"Any":   KindAny,
	"Bool":  KindBool,
	"Int":   KindInt,
	"Float": KindFloat,
	"Text":  KindText,
	"Uuid":  KindUuid,
	"Bytes": KindBytes,
}

var primitiveNames = map[Kind]string{
	KindAny:   "Any",
	KindBool:  "Bool",
	KindInt:   "Int",
	KindFloat: "Float",
	KindText:  "Text",
	KindUuid:  "Uuid",
	KindBytes: "Bytes",
}

// Typing is one value of the type-expression language. The zero value is
// Any.
type Typing struct {
	Kind Kind
	Elem *Typing  // for KindNullable and KindList
	Cols []Column // for KindNamedTuple
}

// Column is one named, typed column of a named tuple.
type Column struct {
	Name string
	Type Typing
}

func Primitive(k Kind) Typing { return Typing{Kind: k} }

func Nullable(t Typing) Typing { return Typing{Kind: KindNullable, Elem: &t} }

func List(t Typing) Typing { return Typing{Kind: KindList, Elem: &t} }

func NamedTuple(cols ...Column) Typing {
	return Typing{Kind: KindNamedTuple, Cols: cols}
}

// ExtractNamedTuple views the typing as an ordered named-column list.
// ok is false when the value is not structurally a named tuple.
func (t Typing) ExtractNamedTuple() ([]Column, bool) {
	if t.Kind != KindNamedTuple {
		return nil, false
	}
	return t.Cols, true
}

// ColumnNames returns the name set of a named tuple's columns, sorted.
func ColumnNames(cols []Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	sort.Strings(names)
	return names
}

// String renders the typing in the same syntax Parse accepts.
func (t Typing) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t Typing) write(b *strings.Builder) {
	switch t.Kind {
	case KindNullable:
		b.WriteByte('?')
		t.Elem.write(b)
	case KindList:
		b.WriteByte('[')
		t.Elem.write(b)
		b.WriteByte(']')
	case KindNamedTuple:
		b.WriteByte('{')
		for i, c := range t.Cols {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(c.Name)
			b.WriteString(": ")
			c.Type.write(b)
		}
		b.WriteByte('}')
	default:
		b.WriteString(primitiveNames[t.Kind])
	}
}
