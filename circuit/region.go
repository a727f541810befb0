package circuit

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/zkevmgo/plonkish/field"
)

// Assigner is the underlying trace grid assignment primitive, supplied by
// the proving backend. The value producer is deferred so backends can
// re-evaluate it once phase-gated inputs become available.
type Assigner[E field.Element[E]] interface {
	AssignAdvice(name string, col Column, row int, produce func() E) error
}

// CachedRegion caches advice assignments over a rectangular window of the
// trace grid, supporting row-relative read-back and bulk padding
// replication. A region is exclusively owned by the goroutine synthesizing
// it; witness assignment within one window must proceed in increasing row
// order, since later rows may read earlier cached rows via rotation.
type CachedRegion[E field.Element[E]] struct {
	region Assigner[E]
	binder *Binder[E]

	columns  []Column
	advice   [][]E
	assigned *bitset.BitSet

	colStart int
	rowStart int
	height   int
}

// NewCachedRegion opens a window of the given advice columns over height
// rows starting at rowStart. The columns must be contiguous advice columns;
// anything else is a configuration defect and panics.
func NewCachedRegion[E field.Element[E]](region Assigner[E], columns []Column, rowStart, height int, binder *Binder[E]) *CachedRegion[E] {
	if len(columns) == 0 || height <= 0 {
		panic("circuit: empty region window")
	}
	for i, col := range columns {
		if col.Role != Advice {
			panic(fmt.Sprintf("circuit: region window over %v column %d", col.Role, col.Index))
		}
		if col.Index != columns[0].Index+i {
			panic("circuit: region window columns must be contiguous")
		}
	}

	advice := make([][]E, len(columns))
	for i := range advice {
		advice[i] = make([]E, height)
	}

	return &CachedRegion[E]{
		region:   region,
		binder:   binder,
		columns:  columns,
		advice:   advice,
		assigned: bitset.New(uint(len(columns) * height)),
		colStart: columns[0].Index,
		rowStart: rowStart,
		height:   height,
	}
}

func (r *CachedRegion[E]) offset(col Column, row int) (ci, ri int) {
	ci = col.Index - r.colStart
	ri = row - r.rowStart
	if ci < 0 || ci >= len(r.columns) || ri < 0 || ri >= r.height {
		panic(fmt.Sprintf("circuit: cell (%d, %d) outside region window", col.Index, row))
	}
	return ci, ri
}

// AssignAdvice assigns produce() into the underlying grid and, on success,
// captures the realized value into the local cache.
//
// Note that produce is invoked twice: the value realized by the grid might
// not be observable from the first invocation when the column has a
// different phase than the current one, so it is called again to populate
// the cache. produce must therefore be a pure function of its closed-over
// state.
func (r *CachedRegion[E]) AssignAdvice(name string, col Column, row int, produce func() E) error {
	ci, ri := r.offset(col, row)

	if err := r.region.AssignAdvice(name, col, row, produce); err != nil {
		return err
	}

	r.advice[ci][ri] = produce()
	r.assigned.Set(uint(ci*r.height + ri))
	return nil
}

// GetAdvice returns the cached value of the given column at row+rot. Reading
// a cell never assigned within this window is out of contract and panics.
func (r *CachedRegion[E]) GetAdvice(row, colIndex int, rot Rotation) E {
	ci, ri := r.offset(Column{Index: colIndex, Role: Advice}, row+int(rot))
	if !r.assigned.Test(uint(ci*r.height + ri)) {
		panic(fmt.Sprintf("circuit: read of unassigned cell (%d, %d)", colIndex, row+int(rot)))
	}
	return r.advice[ci][ri]
}

// ReplicateAssignmentForRange copies the cached values of templateRow into
// every row of [begin, end), per column, skipping columns whose template
// value is zero: the grid's zero default already satisfies those. Rows are
// window-relative. Intended for padding rows that are exact copies of the
// template row.
func (r *CachedRegion[E]) ReplicateAssignmentForRange(name string, templateRow, begin, end int) error {
	if begin < 0 || end > r.height || begin > end {
		panic(fmt.Sprintf("circuit: replication range [%d, %d) outside region window", begin, end))
	}
	for ci, col := range r.columns {
		v := r.advice[ci][templateRow]
		if v.IsZero() {
			// The grid's zero default already matches; the cells still
			// count as assigned for read-back.
			for row := begin; row < end; row++ {
				r.assigned.Set(uint(ci*r.height + row))
			}
			continue
		}
		for row := begin; row < end; row++ {
			if err := r.AssignAdvice(name, col, r.rowStart+row, func() E { return v }); err != nil {
				return err
			}
		}
	}
	return nil
}

// Challenges returns the bound concrete challenge values for witness
// computation inside this window, blocking until binding completes.
func (r *CachedRegion[E]) Challenges() Challenges[E] {
	return r.binder.Values()
}
