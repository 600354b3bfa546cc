package xtype

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
)

// ErrNilPointer is returned when a nil pointer is upcast to its element type
var ErrNilPointer = errors.New("nil pointer dereference")

// Upcast converts a value into the view of one of its ancestors, nil means identity
type Upcast func(value interface{}) (interface{}, error)

// Ancestor represents a generalization of a type together with the way to reach it
type Ancestor struct {
	ID     ID
	Upcast Upcast
}

// Cast applies upcast to supplied value
func (a *Ancestor) Cast(value interface{}) (interface{}, error) {
	if a.Upcast == nil {
		return value, nil
	}
	return a.Upcast(value)
}

type chainEntry struct {
	generation uint64
	ancestors  []Ancestor
}

// Hierarchy maintains type ancestry used by conversion resolution.
//
// The ancestry of a type is its class chain (declared parents, otherwise
// embedded struct, pointer element or underlying predeclared type, innermost first),
// followed by known interfaces implemented along the chain, followed by Any.
type Hierarchy struct {
	declared   sync.Map // ID -> Ancestor
	chains     sync.Map // ID -> *chainEntry
	generation atomic.Uint64
	mux        sync.RWMutex
	interfaces []ID
	known      mapset.Set[ID]
}

// Extend declares parent as the direct supertype of child
func (h *Hierarchy) Extend(child, parent ID, upcast Upcast) error {
	if child.IsNil() || parent.IsNil() {
		return fmt.Errorf("invalid hierarchy declaration: %v -> %v", child, parent)
	}
	if child.IsInterface() || parent.IsInterface() {
		return fmt.Errorf("interfaces can not be declared as class ancestors: %v -> %v", child, parent)
	}
	if child == parent {
		return fmt.Errorf("type %v can not extend itself", child)
	}
	for _, ancestor := range h.Chain(parent) {
		if ancestor.ID == child {
			return fmt.Errorf("cyclic hierarchy declaration: %v -> %v", child, parent)
		}
	}
	h.declared.Store(child, Ancestor{ID: parent, Upcast: upcast})
	h.generation.Add(1)
	return nil
}

// AddInterface registers interface type as a resolution candidate, it returns false if already known
func (h *Hierarchy) AddInterface(iface ID) bool {
	if !iface.IsInterface() || iface == Any {
		return false
	}
	h.mux.Lock()
	defer h.mux.Unlock()
	if h.known.Contains(iface) {
		return false
	}
	h.known.Add(iface)
	interfaces := make([]ID, len(h.interfaces), len(h.interfaces)+1)
	copy(interfaces, h.interfaces)
	h.interfaces = append(interfaces, iface)
	return true
}

// Interfaces returns known interfaces in registration order
func (h *Hierarchy) Interfaces() []ID {
	h.mux.RLock()
	defer h.mux.RUnlock()
	return h.interfaces
}

// Chain returns class ancestors of supplied type, innermost first, excluding the type itself
func (h *Hierarchy) Chain(id ID) []Ancestor {
	if id.IsNil() {
		return nil
	}
	generation := h.generation.Load()
	if v, ok := h.chains.Load(id); ok {
		if entry := v.(*chainEntry); entry.generation == generation {
			return entry.ancestors
		}
	}
	var chain []Ancestor
	visited := mapset.NewThreadUnsafeSet[ID](id)
	current := Ancestor{ID: id}
	for {
		parent, ok := h.parent(current.ID)
		if !ok || visited.Contains(parent.ID) {
			break
		}
		visited.Add(parent.ID)
		current = Ancestor{ID: parent.ID, Upcast: compose(current.Upcast, parent.Upcast)}
		chain = append(chain, current)
	}
	// a chain computed before a concurrent Extend carries the old generation and is recomputed on next use
	h.chains.Store(id, &chainEntry{generation: generation, ancestors: chain})
	return chain
}

// Ancestors returns the full resolution order of supplied type, excluding the type itself
func (h *Hierarchy) Ancestors(id ID) []Ancestor {
	if id.IsNil() {
		return nil
	}
	chain := h.Chain(id)
	result := make([]Ancestor, 0, len(chain)+2)
	result = append(result, chain...)
	if interfaces := h.Interfaces(); len(interfaces) > 0 {
		seen := mapset.NewThreadUnsafeSet[ID]()
		levels := append([]Ancestor{{ID: id}}, chain...)
		for _, level := range levels {
			for _, iface := range interfaces {
				if seen.Contains(iface) || iface == id || !level.ID.Implements(iface) {
					continue
				}
				seen.Add(iface)
				result = append(result, Ancestor{ID: iface, Upcast: level.Upcast})
			}
		}
	}
	if id != Any {
		result = append(result, Ancestor{ID: Any})
	}
	return result
}

func (h *Hierarchy) parent(id ID) (Ancestor, bool) {
	if v, ok := h.declared.Load(id); ok {
		return v.(Ancestor), true
	}
	return derivedParent(id)
}

// NewHierarchy creates a hierarchy
func NewHierarchy() *Hierarchy {
	return &Hierarchy{known: mapset.NewThreadUnsafeSet[ID]()}
}

func compose(first, second Upcast) Upcast {
	switch {
	case first == nil:
		return second
	case second == nil:
		return first
	}
	return func(value interface{}) (interface{}, error) {
		intermediate, err := first(value)
		if err != nil {
			return nil, err
		}
		return second(intermediate)
	}
}
