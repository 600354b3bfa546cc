package registry

import "github.com/viant/convx/xtype"

// Key represents a conversion registry key
type Key struct {
	Source xtype.ID
	Target xtype.ID
}

// NewKey creates a key
func NewKey(source, target xtype.ID) Key {
	return Key{Source: source, Target: target}
}

func (k Key) String() string {
	return k.Source.String() + " -> " + k.Target.String()
}
