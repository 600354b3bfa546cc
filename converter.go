package convx

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
	"github.com/viant/convx/conversion"
	"github.com/viant/convx/option"
	"github.com/viant/convx/registry"
	"github.com/viant/convx/xtype"
)

// Converter represents conversion facade
type Converter struct {
	registry *registry.Registry
	options  *option.Options
	logger   logrus.FieldLogger
}

// session binds converter with per call options, it is passed to conversion functions for nested conversions
type session struct {
	converter *Converter
	options   *option.Options
}

func (s *session) Convert(value interface{}, target xtype.ID) (interface{}, error) {
	return s.converter.convert(value, target, s)
}

// Options returns converter options context
func (c *Converter) Options() *option.Options {
	return c.options
}

// Convert converts value into target type
func (c *Converter) Convert(value interface{}, target xtype.ID) (interface{}, error) {
	return c.convert(value, target, &session{converter: c, options: c.options})
}

// ConvertWith converts value into target type with supplied options
func (c *Converter) ConvertWith(value interface{}, target xtype.ID, opts *option.Options) (interface{}, error) {
	if opts == nil {
		opts = c.options
	}
	return c.convert(value, target, &session{converter: c, options: opts})
}

func (c *Converter) convert(value interface{}, target xtype.ID, s *session) (result interface{}, err error) {
	source := sourceOf(value)
	if target.IsNil() {
		return nil, newError(KindInvalidInput, value, source, target, registry.ErrInvalidTarget)
	}
	if !source.IsNil() && source == target {
		return value, nil
	}
	if source.IsNil() {
		value = nil
	}
	resolution, err := c.registry.Lookup(registry.NewKey(source, target))
	if err != nil {
		kind := KindUnsupported
		if target.IsInterface() {
			kind = KindInvalidInput
		}
		return nil, newError(kind, value, source, target, err)
	}
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = newError(KindFailure, value, source, target, fmt.Errorf("panic: %v", r))
		}
	}()
	if result, err = resolution.Func(value, s, s.options); err != nil {
		c.logger.WithFields(logrus.Fields{
			"source": source.String(),
			"target": target.String(),
			"via":    resolution.Via.Source.String(),
		}).WithError(err).Debug("conversion failed")
		return nil, newError(KindFailure, value, source, target, err)
	}
	return result, nil
}

// IsConversionSupported returns true if a value of source type can be converted into target type,
// successful resolution is cached
func (c *Converter) IsConversionSupported(source, target xtype.ID) bool {
	if target.IsNil() {
		return false
	}
	if !source.IsNil() && source == target {
		return true
	}
	return c.registry.Supported(registry.NewKey(source, target))
}

// Register registers conversion function, it fails if the exact pair has been already registered
func (c *Converter) Register(source, target xtype.ID, fn registry.Func) error {
	if target.IsNil() || fn == nil {
		return fmt.Errorf("invalid registration %v -> %v: %w", source, target, registry.ErrInvalidTarget)
	}
	if !c.registry.Add(source, target, fn) {
		return fmt.Errorf("%v -> %v: %w", source, target, ErrAlreadyRegistered)
	}
	return nil
}

// Replace registers or replaces conversion function
func (c *Converter) Replace(source, target xtype.ID, fn registry.Func) error {
	if target.IsNil() || fn == nil {
		return fmt.Errorf("invalid registration %v -> %v: %w", source, target, registry.ErrInvalidTarget)
	}
	c.registry.Register(source, target, fn)
	return nil
}

// Extend declares parent of child type, upcast converts child value into parent view
func (c *Converter) Extend(child, parent xtype.ID, upcast xtype.Upcast) error {
	return c.registry.Hierarchy().Extend(child, parent, upcast)
}

// Supported returns exactly registered pairs
func (c *Converter) Supported() []registry.Key {
	return c.registry.Pairs()
}

// ConvertTo converts value into T
func ConvertTo[T any](c *Converter, value interface{}) (T, error) {
	var zero T
	target := xtype.For[T]()
	result, err := c.Convert(value, target)
	if err != nil || result == nil {
		return zero, err
	}
	actual, ok := result.(T)
	if !ok {
		return zero, newError(KindFailure, value, sourceOf(value), target, fmt.Errorf("unexpected result type %T", result))
	}
	return actual, nil
}

// sourceOf returns Nil for nil and nil pointer values
func sourceOf(value interface{}) xtype.ID {
	if value == nil {
		return xtype.Nil
	}
	if rValue := reflect.ValueOf(value); rValue.Kind() == reflect.Ptr && rValue.IsNil() {
		return xtype.Nil
	}
	return xtype.Of(value)
}

// New creates a converter
func New(opts ...Option) *Converter {
	cfg := newConfig(opts)
	ret := &Converter{
		registry: registry.New(cfg.hierarchy, cfg.logger),
		options:  option.New(cfg.options...),
		logger:   cfg.logger,
	}
	if !cfg.noCatalog {
		conversion.Register(ret.registry)
	}
	return ret
}
