package catalog

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"graft/tuple"
)

// Record is one persisted catalog entry: a named row, optionally attached
// to a main table when the row describes an associate.
type Record struct {
	Name       string
	AttachedTo string // main table name, assoc rows only
	Row        *tuple.Row
}

// Snapshot is an immutable index over one consistent set of catalog rows.
// It implements Source; because nothing mutates a snapshot after
// construction, every lookup a resolution call makes against it observes
// the same catalog state.
type Snapshot struct {
	byName  map[string]*tuple.Row
	byID    map[TableId]*tuple.Row
	related map[string][]Related
}

// BuildSnapshot indexes records by name and by identity. Associate rows
// keep the order they arrive in. Rows whose identity fields cannot be read
// are still indexed by name; resolution reports them precisely when it
// decodes them.
func BuildSnapshot(recs []Record) (*Snapshot, error) {
	s := &Snapshot{
		byName:  make(map[string]*tuple.Row, len(recs)),
		byID:    make(map[TableId]*tuple.Row, len(recs)),
		related: make(map[string][]Related),
	}
	for _, rec := range recs {
		if rec.Row == nil {
			return nil, fmt.Errorf("catalog: record %q has no row", rec.Name)
		}
		if _, dup := s.byName[rec.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate table name %q", rec.Name)
		}
		s.byName[rec.Name] = rec.Row
		if inRoot, ok := rec.Row.GetBool(0); ok {
			if id, ok := rec.Row.GetInt(1); ok {
				s.byID[NewTableId(inRoot, id)] = rec.Row
			}
		}
		if rec.AttachedTo != "" {
			s.related[rec.AttachedTo] = append(s.related[rec.AttachedTo],
				Related{Name: rec.Name, Row: rec.Row})
		}
	}
	return s, nil
}

func (s *Snapshot) Resolve(name string) (*tuple.Row, error) {
	return s.byName[name], nil
}

func (s *Snapshot) TableData(id int64, inRoot bool) (*tuple.Row, error) {
	return s.byID[NewTableId(inRoot, id)], nil
}

func (s *Snapshot) RelatedTables(name string) ([]Related, error) {
	return append([]Related(nil), s.related[name]...), nil
}

// Names returns every table name in the snapshot, sorted.
func (s *Snapshot) Names() []string {
	names := make([]string, 0, len(s.byName))
	for n := range s.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Registry publishes the current catalog snapshot to readers. Readers take
// the snapshot through an atomic pointer and never block; installs swap
// whole snapshots under a writer mutex.
type Registry struct {
	store Store

	cur atomic.Pointer[Snapshot]

	muW sync.Mutex // serialize installs
}

// Open loads the store's records and publishes the initial snapshot.
func Open(store Store) (*Registry, error) {
	recs, err := store.Load()
	if err != nil {
		return nil, err
	}
	snap, err := BuildSnapshot(recs)
	if err != nil {
		return nil, err
	}
	r := &Registry{store: store}
	r.cur.Store(snap)
	return r, nil
}

// Current returns the snapshot all lookups of one resolution call should
// run against.
func (r *Registry) Current() *Snapshot {
	return r.cur.Load()
}

// Install replaces the published snapshot wholesale. The catalog write path
// proper lives outside this layer; this exists for bootstrap and tests.
func (r *Registry) Install(snap *Snapshot) {
	r.muW.Lock()
	defer r.muW.Unlock()
	r.cur.Store(snap)
}

// ResolveTableInfo resolves against the currently published snapshot.
func (r *Registry) ResolveTableInfo(name string) (*TableInfo, error) {
	return ResolveTableInfo(r.Current(), name)
}
