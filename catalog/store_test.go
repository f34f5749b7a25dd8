package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"graft/tuple"
)

func tempStore(t *testing.T) (Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.jsonl")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	return store, path
}

func TestFileStoreEmptyPath(t *testing.T) {
	if _, err := NewFileStore(""); err == nil {
		t.Fatal("empty path accepted")
	}
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	store, _ := tempStore(t)
	recs, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("recs = %+v, want empty", recs)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, _ := tempStore(t)

	written := []Record{
		{Name: "person", Row: nodeRow(true, 1, "{id: Int}", "{name: Text}")},
		{Name: "person_ext", AttachedTo: "person", Row: assocRow(true, 2, "{bio: Text}")},
		{Name: "likes", Row: edgeRow(false, 3, NewTableId(true, 1), NewTableId(true, 1), "{}", "{w: Float}")},
	}
	for _, rec := range written {
		if err := store.Append(rec); err != nil {
			t.Fatalf("Append(%q) failed: %v", rec.Name, err)
		}
	}

	recs, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(recs) != len(written) {
		t.Fatalf("loaded %d records, want %d", len(recs), len(written))
	}
	for i, rec := range recs {
		if rec.Name != written[i].Name || rec.AttachedTo != written[i].AttachedTo {
			t.Errorf("record %d = %q/%q, want %q/%q",
				i, rec.Name, rec.AttachedTo, written[i].Name, written[i].AttachedTo)
		}
		if !reflect.DeepEqual(rec.Row.Data(), written[i].Row.Data()) {
			t.Errorf("record %d row bytes differ", i)
		}
		if rec.Row.Kind() != written[i].Row.Kind() {
			t.Errorf("record %d kind = %v, want %v", i, rec.Row.Kind(), written[i].Row.Kind())
		}
	}
}

func TestFileStoreLoadIntoRegistry(t *testing.T) {
	store, _ := tempStore(t)
	recs := []Record{
		{Name: "a", Row: nodeRow(true, 1, "{a: Int}", "{x: Text}")},
		{Name: "e", Row: edgeRow(true, 2, NewTableId(true, 1), NewTableId(true, 1), "{}", "{}")},
	}
	for _, rec := range recs {
		if err := store.Append(rec); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	r, err := Open(store)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	info, err := r.ResolveTableInfo("e")
	if err != nil {
		t.Fatalf("ResolveTableInfo failed: %v", err)
	}
	if info.Kind != tuple.KindEdge || len(info.SrcKeyTyping) != 1 {
		t.Errorf("info = %+v", info)
	}
}

func TestFileStoreCorruptLine(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"not json", "this is not json"},
		{"bad base64", `{"name":"t","row":"!!!"}`},
		{"bad row bytes", `{"name":"t","row":"AAAA"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, path := tempStore(t)
			if err := store.Append(Record{Name: "good", Row: nodeRow(true, 1, "{a: Int}", "{}")}); err != nil {
				t.Fatalf("Append failed: %v", err)
			}
			f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			if _, err := f.WriteString(tt.line + "\n"); err != nil {
				t.Fatalf("write: %v", err)
			}
			f.Close()

			_, err = store.Load()
			if err == nil {
				t.Fatal("Load accepted corrupt line")
			}
			if !strings.Contains(err.Error(), "line 2") {
				t.Errorf("error %q does not name the corrupt line", err)
			}
		})
	}
}

func TestFileStoreAppendNilRow(t *testing.T) {
	store, _ := tempStore(t)
	if err := store.Append(Record{Name: "t"}); err == nil {
		t.Fatal("nil row accepted")
	}
}
