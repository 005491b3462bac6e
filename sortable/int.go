package sortable

// Int is a sortable int.
type Int int

var _ Sortable[Int] = Int(0)

func (i Int) Equals(other Int) bool {
	return i == other
}

func (i Int) LessThan(other Int) bool {
	return i < other
}
