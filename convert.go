package duallist

import (
	"github.com/pkg/errors"
)

// Convert builds a new list by mapping every pair through fx and fy and
// adding the results in order. It fails with ErrDuplicatePair when the
// mapping turns two distinct pairs into the same one.
func Convert[K1, K2, T1, T2 comparable](
	l *List[K1, K2],
	fx func(K1) T1,
	fy func(K2) T2,
	options ...Option,
) (*List[T1, T2], error) {
	result, err := New[T1, T2](append(options, WithCapacity(l.Len()))...)
	if err != nil {
		return nil, err
	}

	for i := range l.xs {
		if err := result.Add(fx(l.xs[i]), fy(l.ys[i])); err != nil {
			return nil, errors.Wrapf(err, "converting pair %d", i)
		}
	}

	return result, nil
}

// ConvertTo narrows the element types of l by type assertion, e.g. from a
// List[any, string] to a List[int, string]. An element that does not hold
// the target type fails the conversion with ErrInvalidConversion.
func ConvertTo[T1, T2, K1, K2 comparable](l *List[K1, K2], options ...Option) (*List[T1, T2], error) {
	result, err := New[T1, T2](append(options, WithCapacity(l.Len()))...)
	if err != nil {
		return nil, err
	}

	for i := range l.xs {
		x, ok := any(l.xs[i]).(T1)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidConversion, "first key %v at %d is %T", l.xs[i], i, l.xs[i])
		}

		y, ok := any(l.ys[i]).(T2)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidConversion, "second key %v at %d is %T", l.ys[i], i, l.ys[i])
		}

		if err := result.Add(x, y); err != nil {
			return nil, errors.Wrapf(err, "converting pair %d", i)
		}
	}

	return result, nil
}

// ToSlice returns snapshots of all pairs in order
func (l *List[K1, K2]) ToSlice() []Pair[K1, K2] {
	pairs := make([]Pair[K1, K2], len(l.xs))
	for i := range l.xs {
		pairs[i] = Pair[K1, K2]{X: l.xs[i], Y: l.ys[i]}
	}
	return pairs
}

// ToGrid returns a Len() x 2 grid, first keys in column 0
// and second keys in column 1
func (l *List[K1, K2]) ToGrid() [][]any {
	grid := make([][]any, len(l.xs))
	for i := range grid {
		grid[i] = make([]any, 2)
	}

	// cannot fail, the grid is sized from l
	_ = l.CopyTo(grid)
	return grid
}

// CopyTo writes the pairs row by row into dst. Rows past Len() and
// columns past 1 are left untouched.
func (l *List[K1, K2]) CopyTo(dst [][]any) error {
	if len(dst) < len(l.xs) {
		return errors.Wrapf(ErrInsufficientCapacity, "need %d rows, got %d", len(l.xs), len(dst))
	}

	for i := range l.xs {
		if len(dst[i]) < 2 {
			return errors.Wrapf(ErrInsufficientCapacity, "row %d has %d columns, need 2", i, len(dst[i]))
		}
	}

	for i := range l.xs {
		dst[i][0] = l.xs[i]
		dst[i][1] = l.ys[i]
	}

	return nil
}

// ToMap returns a map from first to second keys.
// When a first key repeats, its first occurrence wins.
func (l *List[K1, K2]) ToMap() map[K1]K2 {
	m := make(map[K1]K2, len(l.xs))
	for i := range l.xs {
		if _, found := m[l.xs[i]]; !found {
			m[l.xs[i]] = l.ys[i]
		}
	}
	return m
}
