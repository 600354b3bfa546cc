package convx

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/viant/convx/option"
	"github.com/viant/convx/xtype"
)

type (
	// Option represents converter option
	Option func(c *config)

	config struct {
		logger    logrus.FieldLogger
		options   []option.Option
		hierarchy *xtype.Hierarchy
		noCatalog bool
	}
)

// WithLogger sets logger used for resolution diagnostics
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithOptions sets conversion options context modifiers
func WithOptions(opts ...option.Option) Option {
	return func(c *config) {
		c.options = append(c.options, opts...)
	}
}

// WithHierarchy sets shared type hierarchy
func WithHierarchy(hierarchy *xtype.Hierarchy) Option {
	return func(c *config) {
		c.hierarchy = hierarchy
	}
}

// WithoutCatalog skips built-in conversions registration
func WithoutCatalog() Option {
	return func(c *config) {
		c.noCatalog = true
	}
}

func newConfig(opts []Option) *config {
	ret := &config{}
	for _, opt := range opts {
		if opt != nil {
			opt(ret)
		}
	}
	if ret.logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		ret.logger = logger
	}
	if ret.hierarchy == nil {
		ret.hierarchy = xtype.NewHierarchy()
	}
	return ret
}
