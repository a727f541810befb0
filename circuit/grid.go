package circuit

import (
	"errors"
	"fmt"

	"github.com/zkevmgo/plonkish/field"
	"github.com/zkevmgo/plonkish/logger"
)

// Assignment failures are structural, not transient: the caller must abort
// the affected synthesis pass rather than retry.
var (
	ErrRoleMismatch  = errors.New("column role mismatch")
	ErrOutOfRange    = errors.New("cell out of range")
	ErrPhaseMismatch = errors.New("column phase not yet open")
)

// TraceGrid is an in-memory trace grid with role, phase and bounds checking.
// It implements [Assigner] and stands in for the proving backend's grid
// during tests and witness debugging.
type TraceGrid[E field.Element[E]] struct {
	schema *Schema
	rows   int
	phase  Phase

	values [][]E
}

// NewTraceGrid allocates a grid for every column of the schema, all cells
// initialized to zero, synthesis starting in the first phase.
func NewTraceGrid[E field.Element[E]](s *Schema, rows int) *TraceGrid[E] {
	values := make([][]E, len(s.Columns()))
	for i := range values {
		values[i] = make([]E, rows)
	}

	log := logger.Logger()
	log.Debug().
		Int("nbColumns", len(values)).
		Int("nbRows", rows).
		Msg("trace grid allocated")

	return &TraceGrid[E]{
		schema: s,
		rows:   rows,
		values: values,
	}
}

// Rows returns the grid height.
func (g *TraceGrid[E]) Rows() int {
	return g.rows
}

// Phase returns the current synthesis phase.
func (g *TraceGrid[E]) Phase() Phase {
	return g.phase
}

// AdvancePhase closes the current phase; columns of the next phase become
// assignable.
func (g *TraceGrid[E]) AdvancePhase() {
	g.phase++
}

func (g *TraceGrid[E]) check(name string, col Column, row int, role Role) error {
	if col.Index < 0 || col.Index >= len(g.values) || row < 0 || row >= g.rows {
		return fmt.Errorf("assign %q: cell (%d, %d): %w", name, col.Index, row, ErrOutOfRange)
	}
	if col.Role != role {
		return fmt.Errorf("assign %q: column %d is %v, not %v: %w", name, col.Index, col.Role, role, ErrRoleMismatch)
	}
	return nil
}

// AssignAdvice realizes produce() into an advice cell. Assigning into a
// column of a phase that is not yet open fails.
func (g *TraceGrid[E]) AssignAdvice(name string, col Column, row int, produce func() E) error {
	if err := g.check(name, col, row, Advice); err != nil {
		return err
	}
	if col.Phase > g.phase {
		return fmt.Errorf("assign %q: column %d phase %d, current %d: %w", name, col.Index, col.Phase, g.phase, ErrPhaseMismatch)
	}
	g.values[col.Index][row] = produce()
	return nil
}

// AssignFixed sets a fixed cell at configuration time.
func (g *TraceGrid[E]) AssignFixed(name string, col Column, row int, v E) error {
	if err := g.check(name, col, row, Fixed); err != nil {
		return err
	}
	g.values[col.Index][row] = v
	return nil
}

// AssignInstance sets a public input cell.
func (g *TraceGrid[E]) AssignInstance(name string, col Column, row int, v E) error {
	if err := g.check(name, col, row, Instance); err != nil {
		return err
	}
	g.values[col.Index][row] = v
	return nil
}

// Value returns the current value of a cell.
func (g *TraceGrid[E]) Value(colIndex, row int) E {
	return g.values[colIndex][row]
}

// CheckGate checks that every constraint of the gate evaluates to zero at
// every row of the grid, with rotations wrapping around the row boundary.
// The returned error identifies the first violated constraint.
func (g *TraceGrid[E]) CheckGate(gate []Constraint[E], challenges Challenges[E]) error {
	for row := 0; row < g.rows; row++ {
		env := g.rowEnv(row, challenges)
		for _, c := range gate {
			if v := c.Expr.Eval(env); !v.IsZero() {
				return fmt.Errorf("circuit: constraint %q not satisfied at row %d", c.Name, row)
			}
		}
	}
	return nil
}

func (g *TraceGrid[E]) rowEnv(row int, challenges Challenges[E]) Env[E] {
	at := func(col Column, rot Rotation) E {
		r := (row + int(rot)) % g.rows
		if r < 0 {
			r += g.rows
		}
		return g.values[col.Index][r]
	}
	return Env[E]{
		Advice:   at,
		Fixed:    at,
		Instance: at,
		Challenge: func(id ChallengeID) E {
			vals := challenges.Indexed()
			if id.Index < 0 || id.Index >= len(vals) {
				panic(fmt.Sprintf("circuit: challenge %d has no bound value", id.Index))
			}
			return vals[id.Index]
		},
	}
}
