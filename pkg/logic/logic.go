package logic

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/btree"

	"github.com/leftmike/smt/pkg/env"
)

// Theory describes the theories a formula uses or a logic supports. Linear is false when
// non-linear arithmetic is used or supported.
type Theory struct {
	Bool   bool
	Int    bool
	Real   bool
	BV     bool
	UF     bool
	Linear bool
}

// Covers is true if every theory used by t2 is supported by t.
func (t Theory) Covers(t2 Theory) bool {
	return (t.Bool || !t2.Bool) && (t.Int || !t2.Int) && (t.Real || !t2.Real) &&
		(t.BV || !t2.BV) && (t.UF || !t2.UF) && (!t.Linear || t2.Linear)
}

func (t Theory) size() int {
	sz := 0
	for _, b := range []bool{t.Int, t.Real, t.BV, t.UF, !t.Linear} {
		if b {
			sz += 1
		}
	}
	return sz
}

func (t Theory) String() string {
	var names []string
	if t.Bool {
		names = append(names, "Bool")
	}
	if t.Int {
		names = append(names, "Int")
	}
	if t.Real {
		names = append(names, "Real")
	}
	if t.BV {
		names = append(names, "BV")
	}
	if t.UF {
		names = append(names, "UF")
	}
	if !t.Linear {
		names = append(names, "NonLinear")
	}
	return "{" + strings.Join(names, ", ") + "}"
}

type Logic struct {
	Name           string
	Description    string
	QuantifierFree bool
	Theory         Theory
}

// Covers is true if every formula in l2 is also in l.
func (l Logic) Covers(l2 Logic) bool {
	return (!l.QuantifierFree || l2.QuantifierFree) && l.Theory.Covers(l2.Theory)
}

func (l Logic) String() string {
	return l.Name
}

func (l Logic) size() int {
	if l.QuantifierFree {
		return l.Theory.size()
	}
	return l.Theory.size() + 1
}

func lessLogics(l1, l2 Logic) bool {
	return l1.Name < l2.Name
}

// Registry holds the known logics ordered by name.
type Registry struct {
	mutex  sync.RWMutex
	logics *btree.BTreeG[Logic]
}

func NewEmptyRegistry() *Registry {
	return &Registry{
		logics: btree.NewG[Logic](env.DefaultBTreeDegree, lessLogics),
	}
}

// NewRegistry returns a registry containing the standard logics.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for _, l := range standardLogics() {
		r.logics.ReplaceOrInsert(l)
	}
	return r
}

func (r *Registry) Register(l Logic) error {
	if l.Name == "" {
		return fmt.Errorf("logic: register: empty name")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.logics.Has(l) {
		return fmt.Errorf("logic: register: %s already registered", l.Name)
	}
	r.logics.ReplaceOrInsert(l)
	return nil
}

func (r *Registry) Lookup(name string) (Logic, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.logics.Get(Logic{Name: name})
}

func (r *Registry) All() []Logic {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	logics := make([]Logic, 0, r.logics.Len())
	r.logics.Ascend(
		func(l Logic) bool {
			logics = append(logics, l)
			return true
		})
	return logics
}

// Smallest returns the smallest registered logic which covers target; ties are broken by
// name.
func (r *Registry) Smallest(target Logic) (Logic, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var best Logic
	var found bool
	r.logics.Ascend(
		func(l Logic) bool {
			if l.Covers(target) && (!found || l.size() < best.size()) {
				best = l
				found = true
			}
			return true
		})
	return best, found
}

func standardLogics() []Logic {
	linear := func(qf bool, name, desc string, t Theory) Logic {
		t.Bool = true
		t.Linear = true
		return Logic{Name: name, Description: desc, QuantifierFree: qf, Theory: t}
	}
	nonLinear := func(qf bool, name, desc string, t Theory) Logic {
		t.Bool = true
		return Logic{Name: name, Description: desc, QuantifierFree: qf, Theory: t}
	}

	return []Logic{
		linear(true, "QF_BOOL", "propositional logic", Theory{}),
		linear(false, "BOOL", "quantified propositional logic", Theory{}),
		linear(true, "QF_UF", "uninterpreted functions", Theory{UF: true}),
		linear(false, "UF", "quantified uninterpreted functions", Theory{UF: true}),
		linear(true, "QF_LIA", "linear integer arithmetic", Theory{Int: true}),
		linear(false, "LIA", "quantified linear integer arithmetic", Theory{Int: true}),
		linear(true, "QF_LRA", "linear real arithmetic", Theory{Real: true}),
		linear(false, "LRA", "quantified linear real arithmetic", Theory{Real: true}),
		nonLinear(true, "QF_NIA", "non-linear integer arithmetic", Theory{Int: true}),
		nonLinear(false, "NIA", "quantified non-linear integer arithmetic", Theory{Int: true}),
		nonLinear(true, "QF_NRA", "non-linear real arithmetic", Theory{Real: true}),
		nonLinear(false, "NRA", "quantified non-linear real arithmetic", Theory{Real: true}),
		linear(true, "QF_BV", "bit-vectors", Theory{BV: true}),
		linear(false, "BV", "quantified bit-vectors", Theory{BV: true}),
		linear(true, "QF_UFLIA", "uninterpreted functions and linear integer arithmetic",
			Theory{Int: true, UF: true}),
		linear(false, "UFLIA",
			"quantified uninterpreted functions and linear integer arithmetic",
			Theory{Int: true, UF: true}),
		linear(true, "QF_UFLRA", "uninterpreted functions and linear real arithmetic",
			Theory{Real: true, UF: true}),
		linear(false, "UFLRA", "quantified uninterpreted functions and linear real arithmetic",
			Theory{Real: true, UF: true}),
		linear(true, "QF_UFBV", "uninterpreted functions and bit-vectors",
			Theory{BV: true, UF: true}),
		linear(false, "UFBV", "quantified uninterpreted functions and bit-vectors",
			Theory{BV: true, UF: true}),
		linear(true, "QF_LIRA", "linear mixed integer and real arithmetic",
			Theory{Int: true, Real: true}),
		linear(false, "LIRA", "quantified linear mixed integer and real arithmetic",
			Theory{Int: true, Real: true}),
		linear(true, "QF_UFLIRA", "uninterpreted functions and linear mixed arithmetic",
			Theory{Int: true, Real: true, UF: true}),
		linear(false, "UFLIRA",
			"quantified uninterpreted functions and linear mixed arithmetic",
			Theory{Int: true, Real: true, UF: true}),
		nonLinear(true, "QF_UFNIRA", "uninterpreted functions and non-linear mixed arithmetic",
			Theory{Int: true, Real: true, UF: true}),
		nonLinear(false, "ALL", "every supported theory, with quantifiers",
			Theory{Int: true, Real: true, BV: true, UF: true}),
	}
}
