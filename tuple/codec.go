package tuple

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Wire layout: one kind byte, a uvarint field count, then each field as a
// tag byte followed by its payload. Bools are a single byte, ints are
// signed varints, floats are fixed 8 bytes big-endian, text and bytes are
// uvarint-length-prefixed.

func (r *Row) encode() []byte {
	buf := make([]byte, 1, 16+8*len(r.fields))
	buf[0] = byte(r.kind)
	buf = binary.AppendUvarint(buf, uint64(len(r.fields)))
	for _, f := range r.fields {
		buf = append(buf, byte(f.Kind))
		switch f.Kind {
		case ValNull:
		case ValBool:
			if f.Bool {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
		case ValInt:
			buf = binary.AppendVarint(buf, f.Int)
		case ValFloat:
			buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(f.Float))
		case ValText:
			buf = binary.AppendUvarint(buf, uint64(len(f.Text)))
			buf = append(buf, f.Text...)
		case ValBytes:
			buf = binary.AppendUvarint(buf, uint64(len(f.Bytes)))
			buf = append(buf, f.Bytes...)
		}
	}
	return buf
}

// Encode returns the wire form of the row.
func (r *Row) Encode() []byte { return r.raw }

// KindOf peeks at the kind byte without decoding the fields.
func KindOf(data []byte) (DataKind, error) {
	if len(data) == 0 {
		return KindInvalid, fmt.Errorf("tuple: empty row data")
	}
	k := DataKind(data[0])
	if k == KindInvalid || k > KindSequence {
		return KindInvalid, fmt.Errorf("tuple: unknown row kind %d", data[0])
	}
	return k, nil
}

// Decode parses an encoded row. The input slice is retained as the row's
// raw form, so callers must not modify it afterwards.
func Decode(data []byte) (*Row, error) {
	kind, err := KindOf(data)
	if err != nil {
		return nil, err
	}
	rest := data[1:]
	n, sz := binary.Uvarint(rest)
	if sz <= 0 {
		return nil, fmt.Errorf("tuple: bad field count")
	}
	rest = rest[sz:]
	if n > uint64(len(rest)) {
		// Every field takes at least a tag byte.
		return nil, fmt.Errorf("tuple: field count %d exceeds remaining %d bytes", n, len(rest))
	}
	fields := make([]Value, 0, n)
	for i := uint64(0); i < n; i++ {
		if len(rest) == 0 {
			return nil, fmt.Errorf("tuple: field %d: truncated", i)
		}
		tag := ValueKind(rest[0])
		rest = rest[1:]
		var v Value
		switch tag {
		case ValNull:
			v = Null()
		case ValBool:
			if len(rest) < 1 {
				return nil, fmt.Errorf("tuple: field %d: truncated bool", i)
			}
			v = Bool(rest[0] != 0)
			rest = rest[1:]
		case ValInt:
			iv, sz := binary.Varint(rest)
			if sz <= 0 {
				return nil, fmt.Errorf("tuple: field %d: bad int", i)
			}
			v = Int(iv)
			rest = rest[sz:]
		case ValFloat:
			if len(rest) < 8 {
				return nil, fmt.Errorf("tuple: field %d: truncated float", i)
			}
			v = Float(math.Float64frombits(binary.BigEndian.Uint64(rest)))
			rest = rest[8:]
		case ValText, ValBytes:
			ln, sz := binary.Uvarint(rest)
			if sz <= 0 {
				return nil, fmt.Errorf("tuple: field %d: bad length", i)
			}
			rest = rest[sz:]
			if uint64(len(rest)) < ln {
				return nil, fmt.Errorf("tuple: field %d: truncated payload", i)
			}
			if tag == ValText {
				v = Text(string(rest[:ln]))
			} else {
				v = Bytes(rest[:ln:ln])
			}
			rest = rest[ln:]
		default:
			return nil, fmt.Errorf("tuple: field %d: unknown value tag %d", i, tag)
		}
		fields = append(fields, v)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("tuple: %d trailing bytes after %d fields", len(rest), n)
	}
	return &Row{kind: kind, fields: fields, raw: data}, nil
}
