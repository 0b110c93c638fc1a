package investrak

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// One durable collection per entity type.
const (
	portfoliosFilename = "portfolios.jsonl"
	holdingsFilename   = "holdings.jsonl"
	goalsFilename      = "goals.jsonl"
	snapshotsFilename  = "snapshots.jsonl"
)

// FileStore is the sole owner of the on-disk entity collections. Every
// operation loads a collection wholesale and every mutation rewrites it
// atomically: the new content is fully written to a side file then renamed
// into place, so readers always see either the pre-write or post-write state.
//
// The store assumes a single active process; concurrent external mutation of
// the backing files is undefined behavior.
type FileStore struct {
	dir string
}

// Open prepares a file store rooted at dir, creating the directory if needed.
func Open(dir string) (*FileStore, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		log.Printf("create-storage-dir name=%q", dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &StorageError{Op: "write", Path: dir, Err: err}
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the storage root.
func (s *FileStore) Dir() string { return s.dir }

// readAll loads a whole collection. A missing file is an empty collection.
func readAll[T any](s *FileStore, name string) ([]T, error) {
	path := filepath.Join(s.dir, name)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "read", Path: path, Err: err}
	}
	defer f.Close()

	items, err := decodeCollection[T](path, f)
	if err != nil {
		return nil, &StorageError{Op: "decode", Path: path, Err: err}
	}
	return items, nil
}

// writeAll atomically replaces a whole collection.
func writeAll[T any](s *FileStore, name string, items []T) error {
	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := encodeCollection(tmp, items); err != nil {
		tmp.Close()
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// --- portfolios ---

// SavePortfolio appends a portfolio to the collection, assigning an identity
// when absent, and returns the stored record.
func (s *FileStore) SavePortfolio(p Portfolio) (Portfolio, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	all, err := readAll[Portfolio](s, portfoliosFilename)
	if err != nil {
		return Portfolio{}, err
	}
	all = append(all, p)
	if err := writeAll(s, portfoliosFilename, all); err != nil {
		return Portfolio{}, err
	}
	return p, nil
}

// GetPortfolio scans the collection for the given identity. Absence is
// reported through the boolean, not as an error.
func (s *FileStore) GetPortfolio(id string) (Portfolio, bool, error) {
	all, err := readAll[Portfolio](s, portfoliosFilename)
	if err != nil {
		return Portfolio{}, false, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, true, nil
		}
	}
	return Portfolio{}, false, nil
}

// Portfolios returns all portfolios in storage (insertion) order.
func (s *FileStore) Portfolios() ([]Portfolio, error) {
	return readAll[Portfolio](s, portfoliosFilename)
}

// UpdatePortfolio replaces the stored record matching p.ID.
func (s *FileStore) UpdatePortfolio(p Portfolio) error {
	all, err := readAll[Portfolio](s, portfoliosFilename)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == p.ID {
			all[i] = p
			return writeAll(s, portfoliosFilename, all)
		}
	}
	return fmt.Errorf("portfolio %s: %w", p.ID, ErrNotFound)
}

// DeletePortfolio removes the matching portfolio and reports whether a
// removal occurred. Holdings and goals referencing it are left untouched:
// lifecycles are independent, there is no cascade.
func (s *FileStore) DeletePortfolio(id string) (bool, error) {
	all, err := readAll[Portfolio](s, portfoliosFilename)
	if err != nil {
		return false, err
	}
	kept := all[:0]
	for _, p := range all {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(all) {
		return false, nil
	}
	return true, writeAll(s, portfoliosFilename, kept)
}

// --- holdings ---

// SaveHolding appends a holding, assigning an identity when absent. The
// owning portfolio must exist: a dangling reference fails with
// ErrPortfolioNotFound before anything is written.
func (s *FileStore) SaveHolding(h Holding) (Holding, error) {
	if _, ok, err := s.GetPortfolio(h.PortfolioID); err != nil {
		return Holding{}, err
	} else if !ok {
		return Holding{}, fmt.Errorf("holding %s references portfolio %s: %w", h.Symbol, h.PortfolioID, ErrPortfolioNotFound)
	}
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	all, err := readAll[Holding](s, holdingsFilename)
	if err != nil {
		return Holding{}, err
	}
	all = append(all, h)
	if err := writeAll(s, holdingsFilename, all); err != nil {
		return Holding{}, err
	}
	return h, nil
}

// GetHolding scans the collection for the given identity.
func (s *FileStore) GetHolding(id string) (Holding, bool, error) {
	all, err := readAll[Holding](s, holdingsFilename)
	if err != nil {
		return Holding{}, false, err
	}
	for _, h := range all {
		if h.ID == id {
			return h, true, nil
		}
	}
	return Holding{}, false, nil
}

// Holdings returns holdings in storage order, limited to one portfolio when
// portfolioID is non-empty.
func (s *FileStore) Holdings(portfolioID string) ([]Holding, error) {
	all, err := readAll[Holding](s, holdingsFilename)
	if err != nil {
		return nil, err
	}
	if portfolioID == "" {
		return all, nil
	}
	matched := make([]Holding, 0, len(all))
	for _, h := range all {
		if h.PortfolioID == portfolioID {
			matched = append(matched, h)
		}
	}
	return matched, nil
}

// UpdateHolding replaces the stored record matching h.ID.
func (s *FileStore) UpdateHolding(h Holding) error {
	all, err := readAll[Holding](s, holdingsFilename)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == h.ID {
			all[i] = h
			return writeAll(s, holdingsFilename, all)
		}
	}
	return fmt.Errorf("holding %s: %w", h.ID, ErrNotFound)
}

// DeleteHolding removes the matching holding and reports whether a removal
// occurred.
func (s *FileStore) DeleteHolding(id string) (bool, error) {
	all, err := readAll[Holding](s, holdingsFilename)
	if err != nil {
		return false, err
	}
	kept := all[:0]
	for _, h := range all {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(all) {
		return false, nil
	}
	return true, writeAll(s, holdingsFilename, kept)
}

// --- goals ---

// SaveGoal appends a goal, assigning an identity when absent. A non-empty
// portfolio reference is checked here, at creation time only; the reference
// is weak and is not revisited on later portfolio deletions.
func (s *FileStore) SaveGoal(g Goal) (Goal, error) {
	if g.PortfolioID != "" {
		if _, ok, err := s.GetPortfolio(g.PortfolioID); err != nil {
			return Goal{}, err
		} else if !ok {
			return Goal{}, fmt.Errorf("goal %q references portfolio %s: %w", g.Name, g.PortfolioID, ErrPortfolioNotFound)
		}
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	all, err := readAll[Goal](s, goalsFilename)
	if err != nil {
		return Goal{}, err
	}
	all = append(all, g)
	if err := writeAll(s, goalsFilename, all); err != nil {
		return Goal{}, err
	}
	return g, nil
}

// GetGoal scans the collection for the given identity.
func (s *FileStore) GetGoal(id string) (Goal, bool, error) {
	all, err := readAll[Goal](s, goalsFilename)
	if err != nil {
		return Goal{}, false, err
	}
	for _, g := range all {
		if g.ID == id {
			return g, true, nil
		}
	}
	return Goal{}, false, nil
}

// Goals returns all goals in storage order.
func (s *FileStore) Goals() ([]Goal, error) {
	return readAll[Goal](s, goalsFilename)
}

// UpdateGoal replaces the stored record matching g.ID.
func (s *FileStore) UpdateGoal(g Goal) error {
	all, err := readAll[Goal](s, goalsFilename)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == g.ID {
			all[i] = g
			return writeAll(s, goalsFilename, all)
		}
	}
	return fmt.Errorf("goal %s: %w", g.ID, ErrNotFound)
}

// DeleteGoal removes the matching goal and reports whether a removal
// occurred.
func (s *FileStore) DeleteGoal(id string) (bool, error) {
	all, err := readAll[Goal](s, goalsFilename)
	if err != nil {
		return false, err
	}
	kept := all[:0]
	for _, g := range all {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(all) {
		return false, nil
	}
	return true, writeAll(s, goalsFilename, kept)
}

// --- snapshots ---

// SaveSnapshot appends a snapshot. Snapshots are point-in-time facts: they
// are never updated or deleted, and are kept even if their portfolio is
// later removed.
func (s *FileStore) SaveSnapshot(snap Snapshot) (Snapshot, error) {
	all, err := readAll[Snapshot](s, snapshotsFilename)
	if err != nil {
		return Snapshot{}, err
	}
	all = append(all, snap)
	if err := writeAll(s, snapshotsFilename, all); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Snapshots returns the snapshots of a portfolio in storage order, filtered
// by the optional inclusive time bounds. Storage order is not guaranteed to
// be chronological; callers needing that must sort.
func (s *FileStore) Snapshots(portfolioID string, from, to *time.Time) ([]Snapshot, error) {
	all, err := readAll[Snapshot](s, snapshotsFilename)
	if err != nil {
		return nil, err
	}
	matched := make([]Snapshot, 0, len(all))
	for _, snap := range all {
		if snap.PortfolioID != portfolioID {
			continue
		}
		if from != nil && snap.TakenAt.Before(*from) {
			continue
		}
		if to != nil && snap.TakenAt.After(*to) {
			continue
		}
		matched = append(matched, snap)
	}
	return matched, nil
}
