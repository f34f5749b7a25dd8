package tuple

import (
	"reflect"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		kind   DataKind
		fields []Value
	}{
		{
			name: "node row",
			kind: KindNode,
			fields: []Value{
				Bool(true), Int(7), Text("{id: Int}"), Text("{name: Text}"),
			},
		},
		{
			name: "edge row",
			kind: KindEdge,
			fields: []Value{
				Bool(false), Int(3), Bool(true), Int(1), Bool(true), Int(2),
				Text("{}"), Text("{weight: Float}"),
			},
		},
		{
			name:   "empty fields",
			kind:   KindIndex,
			fields: nil,
		},
		{
			name: "all value kinds",
			kind: KindAssoc,
			fields: []Value{
				Null(), Bool(true), Int(-42), Float(3.5), Text("hi"), Bytes([]byte{0, 1, 2}),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := NewRow(tt.kind, tt.fields...)
			got, err := Decode(orig.Encode())
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if got.Kind() != tt.kind {
				t.Errorf("kind = %v, want %v", got.Kind(), tt.kind)
			}
			if !reflect.DeepEqual(got.fields, orig.fields) && !(len(got.fields) == 0 && len(orig.fields) == 0) {
				t.Errorf("fields = %+v, want %+v", got.fields, orig.fields)
			}
			if !reflect.DeepEqual(got.Data(), orig.Data()) {
				t.Errorf("raw bytes differ after round trip")
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	row := NewRow(KindEdge, Bool(true), Int(1))
	k, err := KindOf(row.Encode())
	if err != nil {
		t.Fatalf("KindOf failed: %v", err)
	}
	if k != KindEdge {
		t.Errorf("kind = %v, want %v", k, KindEdge)
	}

	if _, err := KindOf(nil); err == nil {
		t.Error("expected error for empty data")
	}
	if _, err := KindOf([]byte{200}); err == nil {
		t.Error("expected error for unknown kind byte")
	}
}

func TestAccessors(t *testing.T) {
	row := NewRow(KindNode, Bool(true), Int(5), Text("abc"))

	if v, ok := row.GetBool(0); !ok || v != true {
		t.Errorf("GetBool(0) = %v, %v", v, ok)
	}
	if v, ok := row.GetInt(1); !ok || v != 5 {
		t.Errorf("GetInt(1) = %v, %v", v, ok)
	}
	if v, ok := row.GetText(2); !ok || v != "abc" {
		t.Errorf("GetText(2) = %v, %v", v, ok)
	}

	// Wrong type at position
	if _, ok := row.GetInt(0); ok {
		t.Error("GetInt on bool field should fail")
	}
	if _, ok := row.GetText(1); ok {
		t.Error("GetText on int field should fail")
	}

	// Out of range
	if _, ok := row.GetBool(3); ok {
		t.Error("GetBool beyond arity should fail")
	}
	if _, ok := row.GetText(-1); ok {
		t.Error("negative position should fail")
	}
}

func TestDecodeErrors(t *testing.T) {
	good := NewRow(KindNode, Int(1), Text("x")).Encode()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"bad kind", []byte{99, 1}},
		{"truncated field", good[:len(good)-1]},
		{"trailing bytes", append(append([]byte{}, good...), 0xFF)},
		{"unknown tag", []byte{byte(KindNode), 1, 42}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.data); err == nil {
				t.Errorf("Decode(%v) succeeded, want error", tt.data)
			}
		})
	}
}
