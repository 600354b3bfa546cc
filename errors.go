package convx

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/containerd/errdefs"
	"github.com/davecgh/go-spew/spew"
	"github.com/viant/convx/xtype"
)

// Kind represents conversion error kind
type Kind int

const (
	//KindUnsupported no registered or derivable conversion exists
	KindUnsupported Kind = iota + 1
	//KindFailure conversion function failed
	KindFailure
	//KindInvalidInput requested target is meaningless
	KindInvalidInput
)

const maxValueRendering = 64

var (
	//ErrUnsupportedConversion reports unsupported conversion or invalid input
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	//ErrConversionFailed reports conversion function failure
	ErrConversionFailed = errors.New("conversion failed")
	//ErrAlreadyRegistered reports registration of an existing pair
	ErrAlreadyRegistered = fmt.Errorf("conversion already registered: %w", errdefs.ErrAlreadyExists)

	renderer = spew.ConfigState{
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		DisableMethods:          true,
		SortKeys:                true,
		MaxDepth:                2,
	}
)

func (k Kind) String() string {
	switch k {
	case KindUnsupported:
		return "unsupported conversion"
	case KindFailure:
		return "conversion failed"
	case KindInvalidInput:
		return "invalid input"
	}
	return "unknown"
}

// Error represents conversion error
type Error struct {
	Kind   Kind
	Value  interface{}
	Source xtype.ID
	Target xtype.ID
	Err    error
}

func (e *Error) Error() string {
	sb := strings.Builder{}
	sb.WriteString("convx: ")
	sb.WriteString(e.Kind.String())
	sb.WriteString(": ")
	sb.WriteString(e.Source.String())
	sb.WriteString(" -> ")
	sb.WriteString(e.Target.String())
	sb.WriteString(", value: ")
	sb.WriteString(render(e.Value))
	if e.Kind == KindFailure && e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap returns kind sentinels and the cause
func (e *Error) Unwrap() []error {
	var result []error
	switch e.Kind {
	case KindUnsupported:
		result = append(result, ErrUnsupportedConversion, errdefs.ErrNotImplemented)
	case KindInvalidInput:
		result = append(result, ErrUnsupportedConversion, errdefs.ErrNotImplemented, errdefs.ErrInvalidArgument)
	case KindFailure:
		result = append(result, ErrConversionFailed, errdefs.ErrInvalidArgument)
	}
	if e.Err != nil {
		result = append(result, e.Err)
	}
	return result
}

// IsUnsupported returns true if err reports unsupported conversion
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedConversion)
}

// IsFailure returns true if err reports conversion function failure
func IsFailure(err error) bool {
	return errors.Is(err, ErrConversionFailed)
}

func newError(kind Kind, value interface{}, source, target xtype.ID, err error) *Error {
	return &Error{Kind: kind, Value: value, Source: source, Target: target, Err: err}
}

func render(value interface{}) string {
	if value == nil {
		return "<nil>"
	}
	text := renderer.Sprintf("%#v", value)
	if len(text) > maxValueRendering {
		end := maxValueRendering
		for end > 0 && !utf8.RuneStart(text[end]) {
			end--
		}
		text = text[:end] + "..."
	}
	return text
}
