package fake

import "fmt"

// checkChildren validates a new child list for a parent. Every child must have
// been created on that parent, and every child currently listed must still be
// listed: a child's parent is fixed at construction, so it can neither move
// in nor disappear.
func checkChildren[T interface {
	comparable
	ID() string
}](resource string, current, next []T, owned func(T) bool) error {
	listed := make(map[T]struct{}, len(next))
	for _, c := range next {
		if !owned(c) {
			return childError(ErrForeignChild, resource, c)
		}
		listed[c] = struct{}{}
	}
	for _, c := range current {
		if _, ok := listed[c]; !ok {
			return childError(ErrOrphanedChild, resource, c)
		}
	}
	return nil
}

func childError[T interface {
	comparable
	ID() string
}](kind error, resource string, c T) error {
	var zero T
	if c == zero {
		return fmt.Errorf("%w: nil %s", kind, resource)
	}
	return fmt.Errorf("%w: %s %q", kind, resource, c.ID())
}
