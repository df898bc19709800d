package duallist

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/denismitr/duallist/utils"
)

// AddRange appends all pairs of other. The batch is checked after it
// lands: if any pair now occurs twice the appended pairs are taken back
// out and ErrDuplicatesIntroduced is returned, leaving l as it was.
func (l *List[K1, K2]) AddRange(other *List[K1, K2]) error {
	return l.insertColumns(len(l.xs), other.xs, other.ys)
}

// AddSlices is AddRange for two columns given as slices
func (l *List[K1, K2]) AddSlices(xs []K1, ys []K2) error {
	if len(xs) != len(ys) {
		return errors.Wrapf(ErrLengthMismatch, "got %d first and %d second keys", len(xs), len(ys))
	}
	return l.insertColumns(len(l.xs), xs, ys)
}

// InsertRange inserts all pairs of other at position at with the same
// all-or-nothing duplicate handling as AddRange
func (l *List[K1, K2]) InsertRange(at int, other *List[K1, K2]) error {
	return l.insertColumns(at, other.xs, other.ys)
}

// InsertSlices is InsertRange for two columns given as slices
func (l *List[K1, K2]) InsertSlices(at int, xs []K1, ys []K2) error {
	if len(xs) != len(ys) {
		return errors.Wrapf(ErrLengthMismatch, "got %d first and %d second keys", len(xs), len(ys))
	}
	return l.insertColumns(at, xs, ys)
}

func (l *List[K1, K2]) insertColumns(at int, xs []K1, ys []K2) error {
	if !utils.InRange(at, len(l.xs)+1) {
		return errors.Wrapf(ErrIndexOutOfRange, "insert at %d, length %d", at, len(l.xs))
	}

	n := len(xs)
	if n == 0 {
		return nil
	}

	// the source may share backing arrays with l
	xs, ys = slices.Clone(xs), slices.Clone(ys)

	l.xs = slices.Insert(l.xs, at, xs...)
	l.ys = slices.Insert(l.ys, at, ys...)

	if l.hasDuplicates() {
		l.xs = slices.Delete(l.xs, at, at+n)
		l.ys = slices.Delete(l.ys, at, at+n)
		return errors.Wrapf(ErrDuplicatesIntroduced, "rolled back %d pairs", n)
	}

	return nil
}
