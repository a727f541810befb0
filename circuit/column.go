// Package circuit implements the constraint and witness substrate of the
// zkEVM arithmetization: symbolic expressions over a rectangular trace grid,
// named degree-bounded constraint accumulation, phase-gated challenges, and
// windowed witness caching.
package circuit

import "fmt"

// Role distinguishes the kinds of trace columns.
type Role uint8

const (
	// Advice columns hold witness values assigned during synthesis.
	Advice Role = iota
	// Fixed columns hold constants baked in at configuration time.
	Fixed
	// Instance columns hold public inputs.
	Instance
)

func (r Role) String() string {
	switch r {
	case Advice:
		return "advice"
	case Fixed:
		return "fixed"
	case Instance:
		return "instance"
	}
	return fmt.Sprintf("role(%d)", uint8(r))
}

// Phase is a synthesis phase. Columns of a later phase may depend on
// challenges revealed after all columns of earlier phases are committed.
type Phase uint8

const (
	FirstPhase Phase = iota
	SecondPhase
	ThirdPhase
)

// Column addresses one column of the trace grid.
type Column struct {
	Index int
	Role  Role
	Phase Phase
}

// Rotation is a signed row offset, referencing a neighboring row's cell
// from the current row.
type Rotation int

const (
	RotPrev Rotation = -1
	RotCur  Rotation = 0
	RotNext Rotation = 1
)

// Cell is an addressable location in the trace grid.
type Cell struct {
	Column Column
	Row    int
}

// Schema tracks the columns and challenges a circuit configuration has
// allocated. It is the configuration-time counterpart of the trace grid.
type Schema struct {
	columns    []Column
	challenges []Phase
}

// NewSchema creates an empty Schema.
func NewSchema() *Schema {
	return &Schema{}
}

// AdviceColumn allocates an advice column assigned during the given phase.
func (s *Schema) AdviceColumn(phase Phase) Column {
	col := Column{Index: len(s.columns), Role: Advice, Phase: phase}
	s.columns = append(s.columns, col)
	return col
}

// FixedColumn allocates a fixed column.
func (s *Schema) FixedColumn() Column {
	col := Column{Index: len(s.columns), Role: Fixed, Phase: FirstPhase}
	s.columns = append(s.columns, col)
	return col
}

// InstanceColumn allocates a public instance column.
func (s *Schema) InstanceColumn() Column {
	col := Column{Index: len(s.columns), Role: Instance, Phase: FirstPhase}
	s.columns = append(s.columns, col)
	return col
}

// Challenge allocates a challenge usable only after the given phase is
// committed.
func (s *Schema) Challenge(afterPhase Phase) ChallengeID {
	id := ChallengeID{Index: len(s.challenges), AfterPhase: afterPhase}
	s.challenges = append(s.challenges, afterPhase)
	return id
}

// Columns returns the allocated columns in allocation order.
func (s *Schema) Columns() []Column {
	return s.columns
}

// NumChallenges returns the number of allocated challenges.
func (s *Schema) NumChallenges() int {
	return len(s.challenges)
}
