// Package sortable provides the Sortable interface and wrappers that give
// the primitive element types (int, float, char, string) an explicit
// ordering. sorting.FromSortable turns any Sortable into a comparator, so
// types with a custom order plug into the reference sort algorithms the
// same way built-in types do.
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) Equals(o Task) bool   { return t == o }
//	func (t Task) LessThan(o Task) bool { return t.Priority < o.Priority }
//
//	sorted, err := sorting.Sort(tasks, sorting.Insertion(sorting.FromSortable[Task]()))
package sortable
