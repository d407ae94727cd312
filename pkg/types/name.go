package types

import (
	"sync"
)

// Name is an interned symbol name. The zero Name is the empty name. Names are never
// shortened: two distinct strings always intern to distinct Names.
type Name int

type nameTable struct {
	mutex sync.RWMutex
	ids   map[string]Name
	strs  []string
}

var table = nameTable{
	ids:  map[string]Name{"": 0},
	strs: []string{""},
}

func (nt *nameTable) find(s string) (Name, bool) {
	nt.mutex.RLock()
	defer nt.mutex.RUnlock()

	n, ok := nt.ids[s]
	return n, ok
}

func (nt *nameTable) intern(s string) Name {
	if n, ok := nt.find(s); ok {
		return n
	}

	nt.mutex.Lock()
	defer nt.mutex.Unlock()

	// Lost a race with another intern of s.
	if n, ok := nt.ids[s]; ok {
		return n
	}
	n := Name(len(nt.strs))
	nt.ids[s] = n
	nt.strs = append(nt.strs, s)
	return n
}

func ID(s string) Name {
	return table.intern(s)
}

func (n Name) String() string {
	table.mutex.RLock()
	defer table.mutex.RUnlock()

	if n < 0 || int(n) >= len(table.strs) {
		return ""
	}
	return table.strs[n]
}
