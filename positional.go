package duallist

import (
	"github.com/pkg/errors"

	"github.com/denismitr/duallist/utils"
)

// ElementAt returns a snapshot of the pair at position i
func (l *List[K1, K2]) ElementAt(i int) (Pair[K1, K2], error) {
	if !utils.InRange(i, len(l.xs)) {
		return utils.GetZero[Pair[K1, K2]](), errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, len(l.xs))
	}
	return Pair[K1, K2]{X: l.xs[i], Y: l.ys[i]}, nil
}

func (l *List[K1, K2]) First() (Pair[K1, K2], error) {
	if len(l.xs) == 0 {
		return utils.GetZero[Pair[K1, K2]](), errors.Wrap(ErrEmptyCollection, "first")
	}
	return l.ElementAt(0)
}

func (l *List[K1, K2]) Last() (Pair[K1, K2], error) {
	if len(l.xs) == 0 {
		return utils.GetZero[Pair[K1, K2]](), errors.Wrap(ErrEmptyCollection, "last")
	}
	return l.ElementAt(len(l.xs) - 1)
}

// TryFirst is First without an error: ok is false on an empty list
func (l *List[K1, K2]) TryFirst() (Pair[K1, K2], bool) {
	p, err := l.First()
	return p, err == nil
}

// TryLast is Last without an error: ok is false on an empty list
func (l *List[K1, K2]) TryLast() (Pair[K1, K2], bool) {
	p, err := l.Last()
	return p, err == nil
}
