package env

import (
	"fmt"
	"sync"

	"github.com/google/btree"
	"github.com/rs/zerolog"

	"github.com/leftmike/smt/pkg/formula"
	"github.com/leftmike/smt/pkg/types"
)

const (
	DefaultFreshPrefix = "FV"
	DefaultBTreeDegree = 8
)

type Options struct {
	// Fresh symbols are named FreshPrefix followed by a counter.
	FreshPrefix string

	BTreeDegree int

	// Nil means do not log.
	Logger *zerolog.Logger
}

type item struct {
	name string
	sym  *formula.Symbol
}

func lessItems(it1, it2 item) bool {
	return it1.name < it2.name
}

// Env is a type environment: the declared type of every symbol used by one checking
// session. Independent sessions use independent environments.
type Env struct {
	mutex   sync.RWMutex
	symbols *btree.BTreeG[item]
	fresh   uint64
	prefix  string
	logger  zerolog.Logger
}

func New(opts Options) *Env {
	if opts.FreshPrefix == "" {
		opts.FreshPrefix = DefaultFreshPrefix
	}
	if opts.BTreeDegree < 2 {
		opts.BTreeDegree = DefaultBTreeDegree
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = opts.Logger.With().Str("component", "env").Logger()
	}

	return &Env{
		symbols: btree.NewG[item](opts.BTreeDegree, lessItems),
		prefix:  opts.FreshPrefix,
		logger:  logger,
	}
}

// DeclareSymbol returns the symbol named name with type typ, declaring it if necessary.
// Declaring a name a second time with the same type returns the existing symbol; with a
// different type it fails with a *formula.SymbolConflictError.
func (e *Env) DeclareSymbol(name string, typ types.Type) (*formula.Symbol, error) {
	if name == "" {
		return nil, fmt.Errorf("env: declare symbol: empty name")
	} else if !typ.Valid() {
		return nil, fmt.Errorf("env: declare symbol: %s: invalid type", name)
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()

	return e.declare(name, typ)
}

func (e *Env) declare(name string, typ types.Type) (*formula.Symbol, error) {
	if it, ok := e.symbols.Get(item{name: name}); ok {
		if !it.sym.Type().Equal(typ) {
			e.logger.Debug().Str("symbol", name).Stringer("declared", it.sym.Type()).
				Stringer("requested", typ).Msg("symbol conflict")
			return nil, &formula.SymbolConflictError{
				Name:      it.sym.Name(),
				Declared:  it.sym.Type(),
				Requested: typ,
			}
		}
		return it.sym, nil
	}

	sym := formula.NewSymbol(types.ID(name), typ)
	e.symbols.ReplaceOrInsert(item{name: name, sym: sym})
	e.logger.Debug().Str("symbol", name).Stringer("type", typ).Msg("declared symbol")
	return sym, nil
}

func (e *Env) MustDeclare(name string, typ types.Type) *formula.Symbol {
	sym, err := e.DeclareSymbol(name, typ)
	if err != nil {
		panic(err.Error())
	}
	return sym
}

// FreshSymbol declares a new symbol of type typ with a name that is not yet used.
func (e *Env) FreshSymbol(typ types.Type) (*formula.Symbol, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("env: fresh symbol: invalid type")
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()

	for {
		e.fresh += 1
		name := fmt.Sprintf("%s%d", e.prefix, e.fresh)
		if e.symbols.Has(item{name: name}) {
			continue
		}
		return e.declare(name, typ)
	}
}

func (e *Env) Lookup(name string) (*formula.Symbol, bool) {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	it, ok := e.symbols.Get(item{name: name})
	if !ok {
		return nil, false
	}
	return it.sym, true
}

func (e *Env) LookupName(name types.Name) (*formula.Symbol, bool) {
	return e.Lookup(name.String())
}

// Symbols returns the declared symbols ordered by name.
func (e *Env) Symbols() []*formula.Symbol {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	syms := make([]*formula.Symbol, 0, e.symbols.Len())
	e.symbols.Ascend(
		func(it item) bool {
			syms = append(syms, it.sym)
			return true
		})
	return syms
}

func (e *Env) Len() int {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	return e.symbols.Len()
}
