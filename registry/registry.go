package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/containerd/errdefs"
	"github.com/sirupsen/logrus"
	"github.com/viant/convx/option"
	"github.com/viant/convx/xtype"
	"golang.org/x/sync/singleflight"
)

var (
	//ErrUnresolved is returned when no registered or derivable function exists
	ErrUnresolved = fmt.Errorf("conversion not resolved: %w", errdefs.ErrNotFound)
	//ErrInvalidTarget is returned for a meaningless target type
	ErrInvalidTarget = fmt.Errorf("invalid conversion target: %w", errdefs.ErrInvalidArgument)
)

// Registry represents conversion registry with resolution cache
type Registry struct {
	table     sync.Map // Key -> *Resolution
	cache     sync.Map // Key -> *Resolution
	hierarchy *xtype.Hierarchy
	group     singleflight.Group
	logger    logrus.FieldLogger
}

// Hierarchy returns type hierarchy used by resolution
func (r *Registry) Hierarchy() *xtype.Hierarchy {
	return r.hierarchy
}

// Register inserts or replaces conversion function, it returns true when an existing entry was replaced
func (r *Registry) Register(source, target xtype.ID, fn Func) bool {
	key := Key{Source: source, Target: target}
	if source.IsInterface() {
		r.hierarchy.AddInterface(source)
	}
	_, replaced := r.table.Swap(key, &Resolution{Key: key, Via: key, Func: fn})
	if replaced {
		r.logger.WithFields(logrus.Fields{"source": source.String(), "target": target.String()}).Debug("replaced conversion")
	}
	return replaced
}

// Add inserts conversion function only if the exact key is not registered yet, it returns false otherwise
func (r *Registry) Add(source, target xtype.ID, fn Func) bool {
	key := Key{Source: source, Target: target}
	if _, loaded := r.table.LoadOrStore(key, &Resolution{Key: key, Via: key, Func: fn}); loaded {
		return false
	}
	if source.IsInterface() {
		r.hierarchy.AddInterface(source)
	}
	return true
}

// Guard sets source filter of an exact entry, it returns false if the entry does not exist.
// A guarded entry is skipped by the hierarchy walk for sources it does not accept.
func (r *Registry) Guard(source, target xtype.ID, accepts Accepts) bool {
	key := Key{Source: source, Target: target}
	v, ok := r.table.Load(key)
	if !ok {
		return false
	}
	guarded := *v.(*Resolution)
	guarded.Accepts = accepts
	return r.table.CompareAndSwap(key, v, &guarded)
}

// LookupExact returns function registered for the exact key
func (r *Registry) LookupExact(key Key) (Func, bool) {
	if v, ok := r.table.Load(key); ok {
		return v.(*Resolution).Func, true
	}
	return nil, false
}

// Registered returns true if key has an exact entry
func (r *Registry) Registered(key Key) bool {
	_, ok := r.table.Load(key)
	return ok
}

// Cached returns cached resolution
func (r *Registry) Cached(key Key) (*Resolution, bool) {
	if v, ok := r.cache.Load(key); ok {
		return v.(*Resolution), true
	}
	return nil, false
}

// Lookup returns exact, cached or resolved function for supplied key
func (r *Registry) Lookup(key Key) (*Resolution, error) {
	if v, ok := r.table.Load(key); ok {
		return v.(*Resolution), nil
	}
	if resolution, ok := r.Cached(key); ok {
		return resolution, nil
	}
	v, err, _ := r.group.Do(xtype.PairKey(key.Source, key.Target), func() (interface{}, error) {
		if resolution, ok := r.Cached(key); ok {
			return resolution, nil
		}
		resolution, err := r.resolve(key)
		if err != nil {
			return nil, err
		}
		actual, loaded := r.cache.LoadOrStore(key, resolution)
		if !loaded {
			r.logger.WithFields(logrus.Fields{
				"source": key.Source.String(),
				"target": key.Target.String(),
				"via":    resolution.Via.Source.String(),
			}).Debug("cached resolved conversion")
		}
		return actual, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Resolution), nil
}

// Supported returns true if key can be looked up, successful resolution is cached
func (r *Registry) Supported(key Key) bool {
	_, err := r.Lookup(key)
	return err == nil
}

// Pairs returns registered exact keys
func (r *Registry) Pairs() []Key {
	var result []Key
	r.table.Range(func(key, _ interface{}) bool {
		result = append(result, key.(Key))
		return true
	})
	sort.Slice(result, func(i, j int) bool {
		return result[i].String() < result[j].String()
	})
	return result
}

func (r *Registry) resolve(key Key) (*Resolution, error) {
	if key.Target.IsNil() {
		return nil, ErrInvalidTarget
	}
	if key.Source.IsNil() {
		return r.resolveNil(key)
	}
	for _, ancestor := range r.hierarchy.Ancestors(key.Source) {
		via := Key{Source: ancestor.ID, Target: key.Target}
		v, ok := r.table.Load(via)
		if !ok {
			continue
		}
		entry := v.(*Resolution)
		if entry.Accepts != nil && !entry.Accepts(key.Source) {
			continue
		}
		return &Resolution{Key: key, Via: via, Func: upcastFunc(ancestor, entry.Func)}, nil
	}
	if key.Target.IsInterface() && key.Source.Implements(key.Target) {
		return &Resolution{Key: key, Via: key, Func: identity}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnresolved, key)
}

// resolveNil resolves nil source: nil has no ancestry, only nilable targets get typed nil
func (r *Registry) resolveNil(key Key) (*Resolution, error) {
	if !key.Target.IsNilable() {
		return nil, fmt.Errorf("%w: %v", ErrUnresolved, key)
	}
	zero := reflect.Zero(key.Target.Type()).Interface()
	return &Resolution{Key: key, Via: key, Func: func(interface{}, Converter, *option.Options) (interface{}, error) {
		return zero, nil
	}}, nil
}

// IsUnresolved returns true if err reports a missing conversion path
func IsUnresolved(err error) bool {
	return errors.Is(err, ErrUnresolved)
}

// New creates a registry
func New(hierarchy *xtype.Hierarchy, logger logrus.FieldLogger) *Registry {
	if hierarchy == nil {
		hierarchy = xtype.NewHierarchy()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Registry{hierarchy: hierarchy, logger: logger}
}
