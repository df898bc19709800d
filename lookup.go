package duallist

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/denismitr/duallist/utils"
)

// GetByFirst returns the second key paired with the first occurrence of x
func (l *List[K1, K2]) GetByFirst(x K1) (K2, error) {
	i := slices.Index(l.xs, x)
	if i < 0 {
		return utils.GetZero[K2](), errors.Wrapf(ErrNotFound, "first key %v", x)
	}
	return l.ys[i], nil
}

// GetBySecond returns the first key paired with the first occurrence of y
func (l *List[K1, K2]) GetBySecond(y K2) (K1, error) {
	i := slices.Index(l.ys, y)
	if i < 0 {
		return utils.GetZero[K1](), errors.Wrapf(ErrNotFound, "second key %v", y)
	}
	return l.xs[i], nil
}

// SetByFirst overwrites the second key paired with the first occurrence of x.
// Unless the list is Strict the write may leave a duplicate pair behind.
func (l *List[K1, K2]) SetByFirst(x K1, y K2) error {
	i := slices.Index(l.xs, x)
	if i < 0 {
		return errors.Wrapf(ErrNotFound, "first key %v", x)
	}

	prev := l.ys[i]
	l.ys[i] = y
	if l.strict && l.duplicateOf(i) >= 0 {
		l.ys[i] = prev
		return errors.Wrapf(ErrDuplicatePair, "(%v, %v)", x, y)
	}

	return nil
}

// SetBySecond overwrites the first key paired with the first occurrence of y.
// Unless the list is Strict the write may leave a duplicate pair behind.
func (l *List[K1, K2]) SetBySecond(y K2, x K1) error {
	i := slices.Index(l.ys, y)
	if i < 0 {
		return errors.Wrapf(ErrNotFound, "second key %v", y)
	}

	prev := l.xs[i]
	l.xs[i] = x
	if l.strict && l.duplicateOf(i) >= 0 {
		l.xs[i] = prev
		return errors.Wrapf(ErrDuplicatePair, "(%v, %v)", x, y)
	}

	return nil
}

func (l *List[K1, K2]) Contains(x K1, y K2) bool {
	return l.IndexOf(x, y) >= 0
}

func (l *List[K1, K2]) ContainsPair(p Pair[K1, K2]) bool {
	return l.IndexOf(p.X, p.Y) >= 0
}

func (l *List[K1, K2]) ContainsFirst(x K1) bool {
	return slices.Contains(l.xs, x)
}

func (l *List[K1, K2]) ContainsSecond(y K2) bool {
	return slices.Contains(l.ys, y)
}

// IndexOf returns the position of the first exact (x, y) match or -1
func (l *List[K1, K2]) IndexOf(x K1, y K2) int {
	for i := range l.xs {
		if l.xs[i] == x && l.ys[i] == y {
			return i
		}
	}
	return -1
}

func (l *List[K1, K2]) IndexOfPair(p Pair[K1, K2]) int {
	return l.IndexOf(p.X, p.Y)
}

// LastIndexOf returns the position of the last exact (x, y) match or -1
func (l *List[K1, K2]) LastIndexOf(x K1, y K2) int {
	for i := len(l.xs) - 1; i >= 0; i-- {
		if l.xs[i] == x && l.ys[i] == y {
			return i
		}
	}
	return -1
}

func (l *List[K1, K2]) LastIndexOfPair(p Pair[K1, K2]) int {
	return l.LastIndexOf(p.X, p.Y)
}

func (l *List[K1, K2]) IndexOfFirst(x K1) int {
	return slices.Index(l.xs, x)
}

func (l *List[K1, K2]) IndexOfSecond(y K2) int {
	return slices.Index(l.ys, y)
}

func (l *List[K1, K2]) LastIndexOfFirst(x K1) int {
	return lastIndex(l.xs, x)
}

func (l *List[K1, K2]) LastIndexOfSecond(y K2) int {
	return lastIndex(l.ys, y)
}

// duplicateOf returns another position holding the same pair as i, or -1
func (l *List[K1, K2]) duplicateOf(i int) int {
	for j := range l.xs {
		if j != i && l.xs[j] == l.xs[i] && l.ys[j] == l.ys[i] {
			return j
		}
	}
	return -1
}

// hasDuplicates reports whether any pair occurs more than once
func (l *List[K1, K2]) hasDuplicates() bool {
	seen := make(map[Pair[K1, K2]]struct{}, len(l.xs))
	for i := range l.xs {
		p := Pair[K1, K2]{X: l.xs[i], Y: l.ys[i]}
		if _, found := seen[p]; found {
			return true
		}
		seen[p] = struct{}{}
	}
	return false
}

func lastIndex[T comparable](s []T, v T) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == v {
			return i
		}
	}
	return -1
}
