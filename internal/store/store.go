package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"resto_admin_backend/pkg/utils"
)

// Collection names persisted by the store. Each maps to one JSON document
// under the data directory.
const (
	CollectionStaff     = "staff"
	CollectionTables    = "tables"
	CollectionInventory = "inventory"
	CollectionRegister  = "register_session"
)

var (
	// ErrPersistence is returned when a collection cannot be written.
	// Reads never return it: absent or malformed data falls back to an
	// empty collection.
	ErrPersistence = errors.New("persistence error")
)

// FileStore is the local entity store: one JSON document per named
// collection under a data directory. Writes are write-through and
// last-write-wins; a second process pointed at the same directory may
// silently overwrite this one's data. That limitation is inherited from
// the system this replaces and is deliberately not papered over with
// locking or versioned writes.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a store
// rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory %s: %v", ErrPersistence, dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Load reads the named collection into v. A missing file, an unreadable
// file, or malformed JSON all leave v untouched and log a warning: the
// caller must be able to treat any of those as "empty collection" and
// carry on.
func (s *FileStore) Load(collection string, v interface{}) {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			utils.LogWarn("Failed to read collection, treating as empty", map[string]interface{}{
				"collection": collection, "error": err.Error(),
			})
		}
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		utils.LogWarn("Malformed collection data, treating as empty", map[string]interface{}{
			"collection": collection, "error": err.Error(),
		})
	}
}

// Save serializes v and replaces the named collection atomically
// (temp file plus rename, so a crash mid-write cannot corrupt the
// previous document).
func (s *FileStore) Save(collection string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: serializing collection %s: %v", ErrPersistence, collection, err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file for collection %s: %v", ErrPersistence, collection, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing collection %s: %v", ErrPersistence, collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file for collection %s: %v", ErrPersistence, collection, err)
	}
	if err := os.Rename(tmpName, s.path(collection)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replacing collection %s: %v", ErrPersistence, collection, err)
	}
	return nil
}
