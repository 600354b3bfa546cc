package registry

import (
	"github.com/viant/convx/option"
	"github.com/viant/convx/xtype"
)

// Converter represents recursive conversion entry point passed to conversion functions
type Converter interface {
	Convert(value interface{}, target xtype.ID) (interface{}, error)
}

// Func converts supplied value into the target type of its registration key
type Func func(value interface{}, c Converter, opts *option.Options) (interface{}, error)

// Accepts reports whether a function registered for an ancestor applies to the concrete source type
type Accepts func(source xtype.ID) bool

// Registrar registers conversion functions
type Registrar interface {
	Register(source, target xtype.ID, fn Func) bool
}

// Guarder restricts the concrete sources an ancestor registration is resolved for
type Guarder interface {
	Guard(source, target xtype.ID, accepts Accepts) bool
}

// Resolution represents a function usable for the requested key
type Resolution struct {
	//Key requested key
	Key Key
	//Via registered key the function was found under
	Via Key
	Func Func
	//Accepts optional source filter applied when the entry is reached through the hierarchy
	Accepts Accepts
}

// Direct returns true if resolution did not use the hierarchy
func (r *Resolution) Direct() bool {
	return r.Key == r.Via
}

func identity(value interface{}, _ Converter, _ *option.Options) (interface{}, error) {
	return value, nil
}

func upcastFunc(ancestor xtype.Ancestor, fn Func) Func {
	if ancestor.Upcast == nil {
		return fn
	}
	return func(value interface{}, c Converter, opts *option.Options) (interface{}, error) {
		cast, err := ancestor.Cast(value)
		if err != nil {
			return nil, err
		}
		return fn(cast, c, opts)
	}
}
