package option

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/viant/convx/value"
	"github.com/viant/tagly/format/text"
	ftime "github.com/viant/tagly/format/time"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/language"
)

const (
	//DefaultCharset default text charset
	DefaultCharset = "utf-8"
	//DefaultTrueChar default character for true
	DefaultTrueChar = value.Char('1')
	//DefaultFalseChar default character for false
	DefaultFalseChar = value.Char('0')
)

// TypeLoader resolves a type by its name, it is used by string to type conversions
type TypeLoader func(name string) (reflect.Type, bool)

// Options represents immutable conversion options shared by all conversion functions.
// Use With to derive a modified copy.
type Options struct {
	zone       *time.Location
	locale     language.Tag
	charset    string
	typeLoader TypeLoader
	trueChar   value.Char
	falseChar  value.Char
	dateFormat string
	timeLayout string
	caseFormat text.CaseFormat
	custom     map[string]interface{}
}

// Option represents options modifier
type Option func(o *Options)

// Zone returns default time zone used by temporal conversions
func (o *Options) Zone() *time.Location {
	if o.zone == nil {
		return time.UTC
	}
	return o.zone
}

// Locale returns locale
func (o *Options) Locale() language.Tag {
	return o.locale
}

// Charset returns charset name used by text/bytes conversions
func (o *Options) Charset() string {
	if o.charset == "" {
		return DefaultCharset
	}
	return o.charset
}

// Encoding returns charset encoding
func (o *Options) Encoding() (encoding.Encoding, error) {
	charset := o.Charset()
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", charset, err)
	}
	return enc, nil
}

// LoadType resolves type by name with the configured loader
func (o *Options) LoadType(name string) (reflect.Type, bool) {
	if o.typeLoader == nil {
		return nil, false
	}
	return o.typeLoader(name)
}

// TrueChar returns character representing true
func (o *Options) TrueChar() value.Char {
	if o.trueChar == 0 {
		return DefaultTrueChar
	}
	return o.trueChar
}

// FalseChar returns character representing false
func (o *Options) FalseChar() value.Char {
	if o.falseChar == 0 {
		return DefaultFalseChar
	}
	return o.falseChar
}

// DateFormat returns ISO style date format, i.e. YYYY-MM-DD
func (o *Options) DateFormat() string {
	return o.dateFormat
}

// TimeLayout returns go time layout derived from date format
func (o *Options) TimeLayout() string {
	return o.timeLayout
}

// CaseFormat returns key case format used by struct to map conversion
func (o *Options) CaseFormat() text.CaseFormat {
	return o.caseFormat
}

// Custom returns named custom option
func (o *Options) Custom(name string) (interface{}, bool) {
	v, ok := o.custom[name]
	return v, ok
}

// CustomBool returns named custom option as bool, false if missing
func (o *Options) CustomBool(name string) bool {
	v, ok := o.custom[name]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// With returns a copy of options with supplied modifiers applied
func (o *Options) With(opts ...Option) *Options {
	clone := *o
	clone.custom = make(map[string]interface{}, len(o.custom))
	for k, v := range o.custom {
		clone.custom[k] = v
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&clone)
	}
	return &clone
}

// WithZone sets default time zone
func WithZone(zone *time.Location) Option {
	return func(o *Options) {
		if zone != nil {
			o.zone = zone
		}
	}
}

// WithLocale sets locale
func WithLocale(locale language.Tag) Option {
	return func(o *Options) {
		o.locale = locale
	}
}

// WithCharset sets charset name, i.e. utf-8, iso-8859-1, windows-1252
func WithCharset(charset string) Option {
	return func(o *Options) {
		o.charset = strings.ToLower(strings.TrimSpace(charset))
	}
}

// WithTypeLoader sets type loader
func WithTypeLoader(loader TypeLoader) Option {
	return func(o *Options) {
		o.typeLoader = loader
	}
}

// WithTypes sets a type loader backed by the supplied named types
func WithTypes(types map[string]reflect.Type) Option {
	index := make(map[string]reflect.Type, len(types))
	for k, v := range types {
		index[k] = v
	}
	return WithTypeLoader(func(name string) (reflect.Type, bool) {
		t, ok := index[name]
		return t, ok
	})
}

// WithTrueChar sets character representing true
func WithTrueChar(c value.Char) Option {
	return func(o *Options) {
		o.trueChar = c
	}
}

// WithFalseChar sets character representing false
func WithFalseChar(c value.Char) Option {
	return func(o *Options) {
		o.falseChar = c
	}
}

// WithDateFormat sets ISO style date format (YYYY-MM-DD hh:mm:ss)
func WithDateFormat(dateFormat string) Option {
	return func(o *Options) {
		o.dateFormat = dateFormat
		o.timeLayout = ""
		if dateFormat != "" {
			o.timeLayout = ftime.DateFormatToTimeLayout(dateFormat)
		}
	}
}

// WithTimeLayout sets go time layout directly
func WithTimeLayout(layout string) Option {
	return func(o *Options) {
		o.timeLayout = layout
	}
}

// WithCaseFormat sets struct to map key case format
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *Options) {
		o.caseFormat = caseFormat
	}
}

// WithCustom sets named custom option
func WithCustom(name string, value interface{}) Option {
	return func(o *Options) {
		o.custom[name] = value
	}
}

// New creates options
func New(opts ...Option) *Options {
	ret := &Options{
		zone:      time.UTC,
		locale:    language.AmericanEnglish,
		charset:   DefaultCharset,
		trueChar:  DefaultTrueChar,
		falseChar: DefaultFalseChar,
		custom:    map[string]interface{}{},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(ret)
	}
	return ret
}
