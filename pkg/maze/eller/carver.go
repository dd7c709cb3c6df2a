package eller

import (
	"math/rand/v2"

	"github.com/asciimaze/mazectl/pkg/maze"
)

// Carver applies Eller's carving rules to one row at a time. It mutates the
// row cells and the RowSet in lockstep so the partition always matches the
// connectivity induced by the passages carved so far.
type Carver struct {
	set *RowSet
	rng *rand.Rand
}

// NewCarver creates a carver over the given partition and random source.
func NewCarver(set *RowSet, rng *rand.Rand) *Carver {
	return &Carver{set: set, rng: rng}
}

// Carve runs the per-row phases in order: random horizontal passages,
// random vertical passages, forced downward connectivity, and (on the last
// row only) the closing horizontal merge.
func (c *Carver) Carve(row []maze.Cell, last bool) {
	c.carveRandom(row, last)
	if !last {
		c.forceDown(row)
	} else {
		c.closeRow(row)
	}
}

// carveRandom flips a coin per adjacent pair for a horizontal passage and,
// on non-final rows, a coin per column for a vertical one. A horizontal
// carve within an existing set would close a loop, so the coin is ignored
// when the pair is already connected.
func (c *Carver) carveRandom(row []maze.Cell, last bool) {
	for i := range row {
		if c.coin() && i > 0 && !c.set.SameSet(i, i-1) {
			row[i] |= maze.Left
			row[i-1] |= maze.Right
			c.set.Union(c.set.Label(i), c.set.Label(i-1))
		}
		if c.coin() && !last {
			row[i] |= maze.Down
		}
	}
}

// forceDown marks one column per set that would otherwise not continue
// downward. A set with no Down passage could never reach the rows below and
// would end up isolated.
func (c *Carver) forceDown(row []maze.Cell) {
	for r := range row {
		if row[r].Has(maze.Down) {
			continue
		}
		goesDown := false
		for i := range row {
			if c.set.SameSet(i, r) && row[i].Has(maze.Down) {
				goesDown = true
				break
			}
		}
		if !goesDown {
			row[r] |= maze.Down
		}
	}
}

// closeRow connects every adjacent pair still in different sets, leaving
// the final row a single component so all remaining sets merge before
// generation ends. Pairs already connected through earlier rows are merged
// too, which can braid the maze; that matches the original behavior and the
// solver tolerates it.
func (c *Carver) closeRow(row []maze.Cell) {
	for r := 0; r+1 < len(row); r++ {
		if c.set.SameSet(r, r+1) {
			continue
		}
		row[r] |= maze.Right
		row[r+1] |= maze.Left
		c.set.Union(c.set.Label(r+1), c.set.Label(r))
	}
}

// coin flips a fair coin.
func (c *Carver) coin() bool { return c.rng.IntN(2) == 1 }
