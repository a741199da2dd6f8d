package memfs

import (
	"context"
	"sort"
	"time"
)

// FileMeta is the metadata recorded for one path in a [Snapshot].
type FileMeta struct {
	Size       int64
	IsDir      bool
	CreatedAt  time.Time
	ModifiedAt time.Time
}

func (m FileMeta) equal(o FileMeta) bool {
	return m.Size == o.Size && m.IsDir == o.IsDir &&
		m.CreatedAt.Equal(o.CreatedAt) && m.ModifiedAt.Equal(o.ModifiedAt)
}

// Snapshot is a point-in-time copy of every path's metadata, keyed by
// resolved virtual path.
type Snapshot map[string]FileMeta

// GetMetadataSnapshot returns a shallow copy of the filesystem's metadata,
// suitable for comparing against a later snapshot with [Diff] to detect
// what changed between two points in time.
func (f *FS) GetMetadataSnapshot(ctx context.Context) (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	meta, err := f.loadMeta()
	if err != nil {
		return nil, err
	}
	snap := make(Snapshot, len(meta))
	for p, m := range meta {
		snap[p] = FileMeta{
			Size: m.Size, IsDir: m.IsDir,
			CreatedAt: m.CreatedAt, ModifiedAt: m.ModifiedAt,
		}
	}
	return snap, nil
}

// A ChangeKind reports how a path differs between two snapshots.
type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
	Modified
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	default:
		return "unknown"
	}
}

// A Change describes one path that differs between two snapshots.
type Change struct {
	Path string
	Kind ChangeKind
}

// Diff compares two snapshots and reports every path that was added,
// removed, or had its metadata modified, in path order.
func Diff(before, after Snapshot) []Change {
	var changes []Change
	for p, a := range after {
		if b, ok := before[p]; !ok {
			changes = append(changes, Change{Path: p, Kind: Added})
		} else if !b.equal(a) {
			changes = append(changes, Change{Path: p, Kind: Modified})
		}
	}
	for p := range before {
		if _, ok := after[p]; !ok {
			changes = append(changes, Change{Path: p, Kind: Removed})
		}
	}
	sort.Slice(changes, func(i, j int) bool {
		return changes[i].Path < changes[j].Path
	})
	return changes
}
