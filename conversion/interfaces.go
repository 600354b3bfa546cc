package conversion

import (
	"fmt"

	"github.com/viant/convx/option"
	"github.com/viant/convx/registry"
)

func registerInterfaces(r registry.Registrar) {
	r.Register(stringerType, stringType, stringerToString)
	r.Register(errorType, stringType, errorToString)
	//named basic types resolve through their underlying type before interfaces
	r.Register(yearType, stringType, stringerToString)
}

func stringerToString(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	return v.(fmt.Stringer).String(), nil
}

func errorToString(v interface{}, _ registry.Converter, _ *option.Options) (interface{}, error) {
	return v.(error).Error(), nil
}
