package conversion

import (
	"github.com/viant/convx/option"
	"github.com/viant/convx/registry"
	"github.com/viant/convx/value"
)

func registerChars(r registry.Registrar) {
	r.Register(charType, stringType, charToString)
	r.Register(charType, boolType, charToBool)
	r.Register(charType, runesType, charToRunes)
}

func charToString(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	return string(rune(v.(value.Char))), nil
}

// charToBool returns true for options true character and 1, t, T, y, Y
func charToBool(v interface{}, _ registry.Converter, opts *option.Options) (interface{}, error) {
	c := v.(value.Char)
	if c == opts.TrueChar() {
		return true, nil
	}
	switch c {
	case 1, '1', 't', 'T', 'y', 'Y':
		return true, nil
	}
	return false, nil
}

func charToRunes(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	return []rune{rune(v.(value.Char))}, nil
}
