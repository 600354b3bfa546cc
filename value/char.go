package value

// Char represents a single character, distinct from int32 numerics
type Char rune

func (c Char) String() string {
	return string(rune(c))
}
