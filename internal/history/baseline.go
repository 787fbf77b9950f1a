package history

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"smdoctor/internal/debugger"
)

// Current schema version - increment when Baseline format changes
const baselineSchemaVersion uint16 = 1

// Digest is a sha256 key derived from the facts file content, so a baseline
// tracks one concrete bundle rather than one file path.
type Digest [sha256.Size]byte

// DigestOf hashes raw facts file content into a store key.
func DigestOf(data []byte) Digest {
	return sha256.Sum256(data)
}

// Baseline is the persisted progress snapshot of one diagnosed bundle.
type Baseline struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	SavedAtUnix int64

	Default          string
	DebugIDSatisfied uint8
	DebugIDTotal     uint8
	ReleaseSatisfied uint8
	ReleaseTotal     uint8
	ScrapingSatisfied uint8
	ScrapingTotal    uint8

	Alerts int
}

// Store хранит baseline-снапшоты по Digest на диске.
// Thread-safe for concurrent access.
type Store struct {
	mu  sync.RWMutex
	dir string
}

// Open initializes and returns a baseline store at the standard location.
func Open(app string) (*Store, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// OpenAt returns a store rooted at an explicit directory. Used by tests and
// the --baseline-dir flag.
func OpenAt(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(s.dir, "baselines", hexKey+".mp")
}

// Snapshot condenses a report into a persistable baseline.
func Snapshot(rep *debugger.Report) *Baseline {
	alerts := 0
	for _, pw := range rep.Pathways() {
		alerts += pw.Alerts()
	}
	return &Baseline{
		Schema:            baselineSchemaVersion,
		SavedAtUnix:       time.Now().Unix(),
		Default:           rep.Default.String(),
		DebugIDSatisfied:  rep.DebugIDs.Progress.Satisfied,
		DebugIDTotal:      rep.DebugIDs.Progress.Total,
		ReleaseSatisfied:  rep.Release.Progress.Satisfied,
		ReleaseTotal:      rep.Release.Progress.Total,
		ScrapingSatisfied: rep.Scraping.Progress.Satisfied,
		ScrapingTotal:     rep.Scraping.Progress.Total,
		Alerts:            alerts,
	}
}

// Put serializes and writes a baseline to the store.
func (s *Store) Put(key Digest, baseline *Baseline) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(baseline); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads a baseline from the store. Missing entries and entries written
// by a different schema version report "not found".
func (s *Store) Get(key Digest) (*Baseline, bool, error) {
	if s == nil {
		return nil, false, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := os.Open(s.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() {
		_ = f.Close()
	}()

	var baseline Baseline
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&baseline); err != nil {
		return nil, false, fmt.Errorf("failed to decode baseline: %w", err)
	}
	if baseline.Schema != baselineSchemaVersion {
		return nil, false, nil
	}
	return &baseline, true, nil
}

// Compare describes how the current report moved relative to a baseline.
type Compare struct {
	DebugIDDelta  int
	ReleaseDelta  int
	ScrapingDelta int
	AlertsDelta   int
}

// Improved reports whether any pathway gained progress without another one
// losing it.
func (c Compare) Improved() bool {
	gained := c.DebugIDDelta > 0 || c.ReleaseDelta > 0 || c.ScrapingDelta > 0
	lost := c.DebugIDDelta < 0 || c.ReleaseDelta < 0 || c.ScrapingDelta < 0
	return gained && !lost
}

// Diff computes progress deltas of the current report against a baseline.
func Diff(baseline *Baseline, rep *debugger.Report) Compare {
	alerts := 0
	for _, pw := range rep.Pathways() {
		alerts += pw.Alerts()
	}
	return Compare{
		DebugIDDelta:  int(rep.DebugIDs.Progress.Satisfied) - int(baseline.DebugIDSatisfied),
		ReleaseDelta:  int(rep.Release.Progress.Satisfied) - int(baseline.ReleaseSatisfied),
		ScrapingDelta: int(rep.Scraping.Progress.Satisfied) - int(baseline.ScrapingSatisfied),
		AlertsDelta:   alerts - baseline.Alerts,
	}
}
