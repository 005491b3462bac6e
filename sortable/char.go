package sortable

// Char is a sortable byte, the element type of a CharArray.
type Char byte

var _ Sortable[Char] = Char(0)

func (c Char) Equals(other Char) bool {
	return c == other
}

func (c Char) LessThan(other Char) bool {
	return c < other
}
