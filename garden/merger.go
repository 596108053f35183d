package garden

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/plotfence/chunk"
	"github.com/katalvlaran/plotfence/region"
)

// tagged is a run of the previous row together with the region it belongs to.
type tagged struct {
	chunk.Run
	id region.ID
}

// Merger folds the rows of one garden, top to bottom, into a region.Registry.
//
// Between rows it keeps only the previous row's runs, each tagged with the
// live ID of its region. A Merger is single-use and not safe for concurrent use.
type Merger struct {
	reg     *region.Registry
	prev    []tagged
	row     int
	width   int
	merges  int
	log     *slog.Logger
	onRow   func(row, runs int)
	onMerge func(survivor, absorbed region.ID)
}

// NewMerger returns a Merger ready for the first row.
// Only the logger and hook options apply; the rest are ignored.
func NewMerger(opts ...Option) (*Merger, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Merger{
		reg:     region.NewRegistry(),
		log:     o.Logger,
		onRow:   o.OnRow,
		onMerge: o.OnMerge,
	}, nil
}

// Feed chunks row and merges it.
func (m *Merger) Feed(row []rune) error {
	return m.Step(chunk.Split(row))
}

// cursor tracks which region, if any, the current run has joined.
type cursor struct {
	run     chunk.Run
	id      region.ID
	adopted bool
}

// Step merges the runs of the next row against the previous row.
//
// Both rows are sorted and internally disjoint, so a single pointer into the
// previous row is enough: for each current run it consumes every previous run
// ending at or before the current run's end, then peeks at the next one in
// case it starts before that end and so overlaps too.
//
// runs must tile [0, width) left to right, with width equal to the previous
// row's; otherwise ErrRowShape is returned and the Merger is left unchanged.
func (m *Merger) Step(runs []chunk.Run) error {
	width, err := m.checkShape(runs)
	if err != nil {
		return err
	}

	cur := make([]tagged, len(runs))
	p := 0
	for i, run := range runs {
		c := cursor{run: run}
		for p < len(m.prev) && m.prev[p].End <= run.End {
			if err := m.touch(&c, m.prev[p]); err != nil {
				return err
			}
			p++
		}
		if p < len(m.prev) && m.prev[p].Start < run.End {
			if err := m.touch(&c, m.prev[p]); err != nil {
				return err
			}
		}
		if !c.adopted {
			if err := m.open(&c); err != nil {
				return err
			}
		}
		cur[i] = tagged{Run: run, id: c.id}
	}

	// Runs earlier in this row may point at regions merged away later in it.
	for i := range cur {
		live, err := m.reg.Resolve(cur[i].id)
		if err != nil {
			return fmt.Errorf("%w: row %d: %v", ErrInvariant, m.row, err)
		}
		cur[i].id = live
	}

	m.onRow(m.row, len(runs))
	m.prev = cur
	m.width = width
	m.row++

	return nil
}

// touch applies one previous-row run to the current run c.
func (m *Merger) touch(c *cursor, above tagged) error {
	overlap := c.run.Overlap(above.Run)
	if overlap <= 0 {
		return fmt.Errorf("%w: row %d run [%d,%d) swept disjoint run [%d,%d) above",
			ErrInvariant, m.row, c.run.Start, c.run.End, above.Start, above.End)
	}
	if above.Symbol != c.run.Symbol {
		return nil
	}
	id, err := m.reg.Resolve(above.id)
	if err != nil {
		return fmt.Errorf("%w: row %d: %v", ErrInvariant, m.row, err)
	}

	switch {
	case !c.adopted:
		// first touch: the run joins the region above, minus the shared top edge
		r, err := m.reg.Get(id)
		if err != nil {
			return fmt.Errorf("%w: row %d: %v", ErrInvariant, m.row, err)
		}
		if r.Symbol != c.run.Symbol {
			return fmt.Errorf("%w: region %s holds %q, run holds %q", ErrInvariant, id, r.Symbol, c.run.Symbol)
		}
		n := c.run.Len()
		r.Area += n
		r.Perimeter += 2*n + 2 - 2*overlap
		c.id, c.adopted = id, true

	default:
		own, err := m.reg.Resolve(c.id)
		if err != nil {
			return fmt.Errorf("%w: row %d: %v", ErrInvariant, m.row, err)
		}
		c.id = own
		if own == id {
			// same region touched again: the overlap is internal
			r, _ := m.reg.Get(own)
			r.Perimeter -= 2 * overlap
			return nil
		}
		if _, err := m.reg.Merge(own, id, overlap); err != nil {
			return fmt.Errorf("%w: row %d: %v", ErrInvariant, m.row, err)
		}
		m.merges++
		m.log.Debug("regions merged", "row", m.row, "survivor", own.String(), "absorbed", id.String(), "overlap", overlap)
		m.onMerge(own, id)
	}

	return nil
}

// open starts a new region for a run that touches nothing above it.
// The top edge is counted now; a later row touching it from below takes it back.
func (m *Merger) open(c *cursor) error {
	id := region.ID{Row: m.row, Col: c.run.Start}
	n := c.run.Len()
	if err := m.reg.Create(id, c.run.Symbol, n, 2*n+2); err != nil {
		return fmt.Errorf("%w: %v", ErrInvariant, err)
	}
	c.id, c.adopted = id, true
	m.log.Debug("region opened", "id", id.String(), "symbol", string(c.run.Symbol), "len", n)

	return nil
}

// checkShape verifies runs are maximal and tile a row of the expected width.
func (m *Merger) checkShape(runs []chunk.Run) (int, error) {
	if len(runs) == 0 {
		return 0, fmt.Errorf("%w: row %d is empty", ErrRowShape, m.row)
	}
	next := 0
	for i, r := range runs {
		if r.Start != next || r.End <= r.Start {
			return 0, fmt.Errorf("%w: row %d run [%d,%d) expected to start at %d", ErrRowShape, m.row, r.Start, r.End, next)
		}
		if i > 0 && runs[i-1].Symbol == r.Symbol {
			return 0, fmt.Errorf("%w: row %d runs at %d and %d are not maximal", ErrRowShape, m.row, runs[i-1].Start, r.Start)
		}
		next = r.End
	}
	if m.row > 0 && next != m.width {
		return 0, fmt.Errorf("%w: row %d is %d wide, previous row %d", ErrRowShape, m.row, next, m.width)
	}

	return next, nil
}

// Regions returns the current regions, ordered by region ID.
// Once the last row has been merged these are final.
func (m *Merger) Regions() []region.Region {
	return m.reg.Finalize()
}

// Total returns the current sum of area × perimeter.
func (m *Merger) Total() int {
	return Cost(m.Regions())
}

// Rows returns how many rows have been merged.
func (m *Merger) Rows() int { return m.row }

// Merges returns how many region merges have happened.
func (m *Merger) Merges() int { return m.merges }
