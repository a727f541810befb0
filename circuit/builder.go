package circuit

import (
	"fmt"

	"github.com/zkevmgo/plonkish/field"
	"github.com/zkevmgo/plonkish/logger"
)

// Constraint is a named expression required to evaluate to zero wherever its
// gate is active.
type Constraint[E field.Element[E]] struct {
	Name string
	Expr Expression[E]
}

// Builder accumulates named, degree-bounded zero constraints during circuit
// configuration, with optional conditional scoping.
//
// Degree violations, nested conditions and oversized byte decompositions are
// circuit-design defects: they panic at configuration time and never surface
// as proving-time errors.
type Builder[E field.Element[E]] struct {
	constraints []Constraint[E]
	maxDegree   int
	condition   Expression[E]
}

// NewBuilder creates an empty Builder. A maxDegree of 0 disables degree
// checking.
func NewBuilder[E field.Element[E]](maxDegree int) *Builder[E] {
	return &Builder[E]{maxDegree: maxDegree}
}

// RequireZero constrains e to equal zero. An active condition scales the
// constraint so it only binds where the condition is nonzero.
func (b *Builder[E]) RequireZero(name string, e Expression[E]) {
	if b.condition != nil {
		e = Mul(b.condition, e)
	}
	b.ValidateDegree(e.Degree(), name)
	b.constraints = append(b.constraints, Constraint[E]{Name: name, Expr: e})
}

// RequireEqual constrains lhs to equal rhs.
func (b *Builder[E]) RequireEqual(name string, lhs, rhs Expression[E]) {
	b.RequireZero(name, Sub(lhs, rhs))
}

// RequireBoolean constrains v to be 0 or 1.
func (b *Builder[E]) RequireBoolean(name string, v Expression[E]) {
	b.RequireZero(name, Mul(v, Sub(Num[E](1), v)))
}

// RequireTrue constrains v to equal 1.
func (b *Builder[E]) RequireTrue(name string, v Expression[E]) {
	b.RequireEqual(name, v, Num[E](1))
}

// RequireInSet constrains v to be a member of set, via the product of
// differences. The empty set yields the empty product 1, an unconditionally
// unsatisfiable constraint.
func (b *Builder[E]) RequireInSet(name string, v Expression[E], set []Expression[E]) {
	acc := Num[E](1)
	for _, s := range set {
		acc = Mul(acc, Sub(v, s))
	}
	b.RequireZero(name, acc)
}

// RequireZeroWord constrains both limbs of w to equal zero.
func (b *Builder[E]) RequireZeroWord(name string, w Word[E]) {
	b.RequireEqualWord(name, w, ZeroWord[E]())
}

// RequireEqualWord constrains lhs to equal rhs limb by limb. The limbs are
// never folded into one field-sized comparison: the modulus is smaller than
// 2^256, so a combined check would admit colliding forgeries.
func (b *Builder[E]) RequireEqualWord(name string, lhs, rhs Word[E]) {
	lhsLo, lhsHi := lhs.LoHi()
	rhsLo, rhsHi := rhs.LoHi()
	b.RequireZero(name, Sub(lhsLo, rhsLo))
	b.RequireZero(name, Sub(lhsHi, rhsHi))
}

// AddConstraints pushes pre-built constraints through the usual condition
// scaling and degree validation.
func (b *Builder[E]) AddConstraints(constraints []Constraint[E]) {
	for _, c := range constraints {
		b.RequireZero(c.Name, c.Expr)
	}
}

// Condition runs body with cond as the active scaling condition. Conditions
// do not nest; a nested call is a construction fault and panics.
func (b *Builder[E]) Condition(cond Expression[E], body func(*Builder[E])) {
	if b.condition != nil {
		panic("circuit: nested condition is not supported")
	}
	b.condition = cond
	body(b)
	b.condition = nil
}

// ValidateDegree panics when degree exceeds the configured maximum.
func (b *Builder[E]) ValidateDegree(degree int, name string) {
	if b.maxDegree > 0 && degree > b.maxDegree {
		panic(fmt.Sprintf("circuit: constraint %q degree too high: %d > %d", name, degree, b.maxDegree))
	}
}

// Constraints returns the accumulated constraints in push order.
func (b *Builder[E]) Constraints() []Constraint[E] {
	return b.constraints
}

// Gate returns every accumulated constraint multiplied by selector,
// re-validating degrees since the multiplication can raise them.
func (b *Builder[E]) Gate(selector Expression[E]) []Constraint[E] {
	gated := make([]Constraint[E], len(b.constraints))
	for i, c := range b.constraints {
		expr := Mul(selector, c.Expr)
		b.ValidateDegree(expr.Degree(), c.Name)
		gated[i] = Constraint[E]{Name: c.Name, Expr: expr}
	}

	log := logger.Logger()
	log.Debug().
		Int("nbConstraints", len(gated)).
		Int("maxDegree", b.maxDegree).
		Msg("gate sealed")

	return gated
}
