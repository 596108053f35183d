package garden

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/plotfence/region"
)

// Sentinel errors for garden operations.
var (
	// ErrEmptyInput indicates the input has no rows or no columns.
	ErrEmptyInput = errors.New("garden: input must have at least one row and one column")
	// ErrRaggedRows indicates rows of differing lengths.
	ErrRaggedRows = errors.New("garden: all rows must have the same length")
	// ErrRowShape indicates runs that do not tile a row of the expected width.
	ErrRowShape = errors.New("garden: runs do not tile the row")
	// ErrInvariant indicates an internal accounting fault.
	ErrInvariant = errors.New("garden: invariant violated")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("garden: invalid option supplied")
)

// Option configures pricing via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// by the call it was passed to.
type Option func(*Options)

// Options holds the knobs and hooks of a pricing run.
type Options struct {
	// Ctx cancels the parallel chunk stage. The merge itself is not interruptible.
	Ctx context.Context

	// Logger receives debug events per region and an info summary per run.
	Logger *slog.Logger

	// Workers, if > 0, chunks all rows with that many goroutines before merging.
	// 0 chunks each row inline as it is merged.
	Workers int

	// CacheSize, if > 0, memoises chunking of up to that many distinct rows.
	CacheSize int

	// OnRow is called after each row is merged with its index and run count.
	OnRow func(row, runs int)

	// OnMerge is called whenever two live regions turn out to be one.
	OnMerge func(survivor, absorbed region.ID)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a logger that discards everything
//   - inline chunking, no cache
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Workers:   0,
		CacheSize: 0,
		OnRow:     func(int, int) {},
		OnMerge:   func(region.ID, region.ID) {},
	}
}

// WithContext sets a custom context for the parallel chunk stage.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes log events to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers chunks rows concurrently before merging.
//
//	n > 0: use n goroutines
//	n == 0: chunk inline (default)
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithChunkCache memoises chunking of up to size distinct rows.
//
//	size > 0: enable the cache
//	size == 0: no cache (default)
//	size < 0: invalid option → ErrOptionViolation
func WithChunkCache(size int) Option {
	return func(o *Options) {
		if size < 0 {
			o.err = fmt.Errorf("%w: CacheSize cannot be negative (%d)", ErrOptionViolation, size)
			return
		}
		o.CacheSize = size
	}
}

// WithOnRow registers a callback run after each merged row.
func WithOnRow(fn func(row, runs int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRow = fn
		}
	}
}

// WithOnMerge registers a callback run on every region merge.
func WithOnMerge(fn func(survivor, absorbed region.ID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMerge = fn
		}
	}
}

// buildOptions applies opts over the defaults and surfaces the first violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// Report is the full outcome of pricing one garden.
type Report struct {
	Width, Height int
	// Regions holds every final region, ordered by the position of the run whose ID it kept.
	Regions []region.Region
	// Total is the sum of area × perimeter over Regions.
	Total int
}
