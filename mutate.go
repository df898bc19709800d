package duallist

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/denismitr/duallist/utils"
)

type LessPairFn[K1, K2 comparable] func(a, b Pair[K1, K2]) (less bool)

// Add appends (x, y) unless that exact pair is already present
func (l *List[K1, K2]) Add(x K1, y K2) error {
	if l.Contains(x, y) {
		return errors.Wrapf(ErrDuplicatePair, "(%v, %v)", x, y)
	}

	l.xs = append(l.xs, x)
	l.ys = append(l.ys, y)
	return nil
}

func (l *List[K1, K2]) AddPair(p Pair[K1, K2]) error {
	return l.Add(p.X, p.Y)
}

// Insert puts (x, y) at position at, shifting later pairs right.
// at == Len() appends.
func (l *List[K1, K2]) Insert(x K1, y K2, at int) error {
	if l.Contains(x, y) {
		return errors.Wrapf(ErrDuplicatePair, "(%v, %v)", x, y)
	}

	if !utils.InRange(at, len(l.xs)+1) {
		return errors.Wrapf(ErrIndexOutOfRange, "insert at %d, length %d", at, len(l.xs))
	}

	l.xs = slices.Insert(l.xs, at, x)
	l.ys = slices.Insert(l.ys, at, y)
	return nil
}

func (l *List[K1, K2]) InsertPair(p Pair[K1, K2], at int) error {
	return l.Insert(p.X, p.Y, at)
}

// Remove deletes the first position holding exactly (x, y)
func (l *List[K1, K2]) Remove(x K1, y K2) error {
	i := l.IndexOf(x, y)
	if i < 0 {
		return errors.Wrapf(ErrPairNotFound, "(%v, %v)", x, y)
	}
	return l.RemoveAt(i)
}

func (l *List[K1, K2]) RemovePair(p Pair[K1, K2]) error {
	return l.Remove(p.X, p.Y)
}

func (l *List[K1, K2]) RemoveAt(i int) error {
	if !utils.InRange(i, len(l.xs)) {
		return errors.Wrapf(ErrIndexOutOfRange, "remove at %d, length %d", i, len(l.xs))
	}

	l.xs = slices.Delete(l.xs, i, i+1)
	l.ys = slices.Delete(l.ys, i, i+1)
	return nil
}

// RemoveRange removes the pair at start count times, which drops the count
// pairs originally at [start, start+count). It is not atomic: when the list
// runs out of pairs it stops with ErrIndexOutOfRange and whatever was
// removed so far stays removed.
func (l *List[K1, K2]) RemoveRange(start, count int) error {
	if count < 0 {
		return errors.Wrapf(ErrIndexOutOfRange, "negative count %d", count)
	}

	for i := 0; i < count; i++ {
		if err := l.RemoveAt(start); err != nil {
			return errors.Wrapf(err, "removed %d of %d", i, count)
		}
	}

	return nil
}

// RemoveAll removes every pair of other that is present in l
// and returns how many were removed
func (l *List[K1, K2]) RemoveAll(other *List[K1, K2]) int {
	removed := 0
	for i := range other.xs {
		if err := l.Remove(other.xs[i], other.ys[i]); err == nil {
			removed++
		}
	}
	return removed
}

// Reverse reverses the order of pairs in place
func (l *List[K1, K2]) Reverse() {
	slices.Reverse(l.xs)
	slices.Reverse(l.ys)
}

// Reversed returns a reversed copy and leaves l untouched
func (l *List[K1, K2]) Reversed() *List[K1, K2] {
	clone := l.Clone()
	clone.Reverse()
	return clone
}

// SortBy returns a stably sorted copy
func (l *List[K1, K2]) SortBy(less LessPairFn[K1, K2]) *List[K1, K2] {
	clone := l.Clone()
	clone.SortInPlaceBy(less)
	return clone
}

// SortInPlaceBy sorts the list in place, keeping equal pairs in their order
func (l *List[K1, K2]) SortInPlaceBy(less LessPairFn[K1, K2]) {
	pairs := l.ToSlice()
	slices.SortStableFunc(pairs, func(a, b Pair[K1, K2]) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})

	for i, p := range pairs {
		l.xs[i] = p.X
		l.ys[i] = p.Y
	}
}

// Filter returns a new list holding the pairs for which fn returns true
func (l *List[K1, K2]) Filter(fn FilterFn[K1, K2]) *List[K1, K2] {
	result := &List[K1, K2]{strict: l.strict}
	for i := range l.xs {
		if fn(l.xs[i], l.ys[i], i) {
			result.xs = append(result.xs, l.xs[i])
			result.ys = append(result.ys, l.ys[i])
		}
	}
	return result
}
