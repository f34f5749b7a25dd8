package catalog

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"graft/tuple"
)

// Store abstracts catalog-row persistence. Load is the read path resolution
// depends on; Append exists so fixtures and bootstrap tooling can produce a
// loadable catalog.
type Store interface {
	Load() ([]Record, error)
	Append(rec Record) error // SYNC
}

// fileStore persists records as JSON lines, one per row, with the encoded
// row bytes in base64.
type fileStore struct {
	path string
	mu   sync.Mutex
}

type storeRecord struct {
	Name       string `json:"name"`
	AttachedTo string `json:"attached_to,omitempty"`
	Row        string `json:"row"`
}

func NewFileStore(path string) (Store, error) {
	if path == "" {
		return nil, errors.New("catalog: empty store path")
	}
	return &fileStore{path: path}, nil
}

func (fs *fileStore) Load() ([]Record, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	f, err := os.OpenFile(fs.path, os.O_CREATE|os.O_RDONLY, 0o644)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var recs []Record
	br := bufio.NewReader(f)
	line := 0
	for {
		data, err := br.ReadBytes('\n')
		if len(data) > 0 {
			line++
			var sr storeRecord
			if err := json.Unmarshal(data, &sr); err != nil {
				return nil, fmt.Errorf("catalog: %s line %d: %w", fs.path, line, err)
			}
			raw, err := base64.StdEncoding.DecodeString(sr.Row)
			if err != nil {
				return nil, fmt.Errorf("catalog: %s line %d: bad row encoding: %w", fs.path, line, err)
			}
			row, err := tuple.Decode(raw)
			if err != nil {
				return nil, fmt.Errorf("catalog: %s line %d: %w", fs.path, line, err)
			}
			recs = append(recs, Record{Name: sr.Name, AttachedTo: sr.AttachedTo, Row: row})
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return recs, nil
}

func (fs *fileStore) Append(rec Record) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if rec.Row == nil {
		return fmt.Errorf("catalog: record %q has no row", rec.Name)
	}
	f, err := os.OpenFile(fs.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	b, err := json.Marshal(storeRecord{
		Name:       rec.Name,
		AttachedTo: rec.AttachedTo,
		Row:        base64.StdEncoding.EncodeToString(rec.Row.Encode()),
	})
	if err != nil {
		return err
	}
	if _, err := f.Write(append(b, '\n')); err != nil {
		return err
	}
	return f.Sync()
}
