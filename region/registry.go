package region

import (
	"fmt"
	"sort"
)

// Registry owns every live Region and the redirects of retired IDs.
// It is not safe for concurrent use; the row merger is its sole owner.
type Registry struct {
	live     map[ID]*Region
	redirect map[ID]ID
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		live:     make(map[ID]*Region),
		redirect: make(map[ID]ID),
	}
}

// Create inserts a new live region under id.
// Returns ErrDuplicateID if id is live or retired, ErrBadRegion for
// impossible totals.
func (r *Registry) Create(id ID, symbol rune, area, perimeter int) error {
	if _, ok := r.live[id]; ok {
		return fmt.Errorf("%w: %s is live", ErrDuplicateID, id)
	}
	if _, ok := r.redirect[id]; ok {
		return fmt.Errorf("%w: %s was retired", ErrDuplicateID, id)
	}
	if area <= 0 || perimeter < 0 {
		return fmt.Errorf("%w: area=%d perimeter=%d", ErrBadRegion, area, perimeter)
	}
	r.live[id] = &Region{Symbol: symbol, Area: area, Perimeter: perimeter}

	return nil
}

// Resolve follows redirects from id to the live ID that absorbed it.
// A live id is returned unchanged. Every hop walked is pointed straight at
// the result, so repeated lookups stay single-hop.
// Returns ErrUnknownID if id was never created.
func (r *Registry) Resolve(id ID) (ID, error) {
	root := id
	for {
		if _, ok := r.live[root]; ok {
			break
		}
		next, ok := r.redirect[root]
		if !ok {
			return ID{}, fmt.Errorf("%w: %s", ErrUnknownID, root)
		}
		root = next
	}
	// path compression
	for id != root {
		next := r.redirect[id]
		r.redirect[id] = root
		id = next
	}

	return root, nil
}

// Get returns a mutable handle to the live region reached from id.
func (r *Registry) Get(id ID) (*Region, error) {
	live, err := r.Resolve(id)
	if err != nil {
		return nil, err
	}

	return r.live[live], nil
}

// Merge folds the region reached from absorbed into the one reached from
// survivor. overlap is the number of columns along which the two touch the
// bridging run; those edges become internal to the merged region.
//
// If both IDs already resolve to the same region, nothing changes and Merge
// reports false: that is a same-region touch, not a merge.
func (r *Registry) Merge(survivor, absorbed ID, overlap int) (bool, error) {
	s, err := r.Resolve(survivor)
	if err != nil {
		return false, err
	}
	a, err := r.Resolve(absorbed)
	if err != nil {
		return false, err
	}
	if s == a {
		return false, nil
	}
	sr, ar := r.live[s], r.live[a]
	if sr.Symbol != ar.Symbol {
		return false, fmt.Errorf("%w: %s(%q) and %s(%q)", ErrSymbolMismatch, s, sr.Symbol, a, ar.Symbol)
	}
	sr.Area += ar.Area
	sr.Perimeter += ar.Perimeter - 2*overlap
	delete(r.live, a)
	r.redirect[a] = s

	return true, nil
}

// Finalize returns a copy of every live region, ordered by ID
// (top to bottom, then left to right).
func (r *Registry) Finalize() []Region {
	ids := make([]ID, 0, len(r.live))
	for id := range r.live {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].less(ids[j]) })

	out := make([]Region, len(ids))
	for i, id := range ids {
		out[i] = *r.live[id]
	}

	return out
}

// Len returns the number of live regions.
func (r *Registry) Len() int { return len(r.live) }

// Retired returns the number of IDs that were merged away.
func (r *Registry) Retired() int { return len(r.redirect) }
