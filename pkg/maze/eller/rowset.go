package eller

import "github.com/asciimaze/mazectl/pkg/maze"

// RowSet maintains the disjoint-set partition for the row currently being
// carved. Labels are plain integers: two columns carry the same label iff
// they are reachable from each other through passages carved so far.
//
// The partition is represented flat (one label per column) rather than as a
// linked union-find forest. Union rewrites labels in O(width), which keeps
// SameSet an O(1) comparison and is cheap enough since each row is touched
// once.
type RowSet struct {
	labels []int
}

// NewRowSet creates a partition for width columns. Initial labels start
// above width so the first row's fresh labels (allocated from 1 upward)
// never collide with them.
func NewRowSet(width int) *RowSet {
	s := &RowSet{labels: make([]int, width)}
	for i := range s.labels {
		s.labels[i] = i + width + 1
	}
	return s
}

// Reset prepares the partition and the row for carving the next row.
//
// A column whose cell carried Down keeps its label and becomes an Up-only
// cell: it is the same connected region, shifted down one row. Every other
// column gets a fresh label and an empty cell.
//
// Fresh labels come from a lowest-available allocator that scans forward
// from the last value it handed out instead of restarting from 1 for every
// column. The cursor does restart at 1 for each row.
func (s *RowSet) Reset(row []maze.Cell) {
	cursor := 1
	for r := range row {
		if row[r].Has(maze.Down) {
			row[r] = maze.Up
			continue
		}
		s.labels[r] = s.nextFree(&cursor)
		row[r] = maze.Empty
	}
}

// nextFree advances cursor past every label currently live in the row and
// returns the first unused value. Terminates because at most width labels
// are live.
func (s *RowSet) nextFree(cursor *int) int {
	for {
		inUse := false
		for _, l := range s.labels {
			if l == *cursor {
				*cursor++
				inUse = true
				break
			}
		}
		if !inUse {
			return *cursor
		}
	}
}

// Union merges the set labeled b into the set labeled a.
func (s *RowSet) Union(a, b int) {
	for i, l := range s.labels {
		if l == b {
			s.labels[i] = a
		}
	}
}

// SameSet reports whether columns a and b are in the same set.
func (s *RowSet) SameSet(a, b int) bool { return s.labels[a] == s.labels[b] }

// Label returns the set label of column i.
func (s *RowSet) Label(i int) int { return s.labels[i] }

// Labels exposes the underlying label slice. Callers must not modify it;
// the debug renderer reads it to print set numbers.
func (s *RowSet) Labels() []int { return s.labels }
