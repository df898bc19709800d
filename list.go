package duallist

import (
	"reflect"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// List is an ordered sequence of (X, Y) pairs in which either element
// of a pair can be used to look up the other.
//
// The two columns are kept at equal length and, apart from the permissive
// paths documented on From and SetByFirst/SetBySecond, no pair appears twice.
// Lookups are linear scans. A List is not safe for concurrent use.
// Use New or one of the From constructors: the zero value is an empty
// list that has skipped the key type check.
type List[K1, K2 comparable] struct {
	xs     []K1
	ys     []K2
	strict bool
}

// New creates an empty list. It fails with ErrTypeConflict when K1 and K2
// are the same type, since lookups by first and by second key would then
// be indistinguishable.
func New[K1, K2 comparable](options ...Option) (*List[K1, K2], error) {
	if err := checkTypes[K1, K2](); err != nil {
		return nil, err
	}

	cfg := newConfig(options)
	return &List[K1, K2]{
		xs:     make([]K1, 0, cfg.capacity),
		ys:     make([]K2, 0, cfg.capacity),
		strict: cfg.strict,
	}, nil
}

// From builds a list from two columns of equal length.
// The input is copied but not checked for duplicate pairs.
func From[K1, K2 comparable](xs []K1, ys []K2, options ...Option) (*List[K1, K2], error) {
	if len(xs) != len(ys) {
		return nil, errors.Wrapf(ErrLengthMismatch, "got %d first and %d second keys", len(xs), len(ys))
	}

	l, err := New[K1, K2](append(options, WithCapacity(len(xs)))...)
	if err != nil {
		return nil, err
	}

	l.xs = append(l.xs, xs...)
	l.ys = append(l.ys, ys...)
	return l, nil
}

// FromSelector builds a list whose second column is derived from the first
func FromSelector[K1, K2 comparable](xs []K1, selector func(K1) K2, options ...Option) (*List[K1, K2], error) {
	ys := make([]K2, len(xs))
	for i, x := range xs {
		ys[i] = selector(x)
	}

	return From(xs, ys, options...)
}

// FromMap adds every entry of m. Go map iteration order is random,
// so the order of the result is not reproducible; see FromSortedMap.
func FromMap[K1, K2 comparable](m map[K1]K2, options ...Option) (*List[K1, K2], error) {
	l, err := New[K1, K2](append(options, WithCapacity(len(m)))...)
	if err != nil {
		return nil, err
	}

	for k, v := range m {
		if err := l.Add(k, v); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// FromSortedMap is like FromMap but orders pairs by ascending key
func FromSortedMap[K1 constraints.Ordered, K2 comparable](m map[K1]K2, options ...Option) (*List[K1, K2], error) {
	l, err := New[K1, K2](append(options, WithCapacity(len(m)))...)
	if err != nil {
		return nil, err
	}

	keys := maps.Keys(m)
	slices.Sort(keys)
	for _, k := range keys {
		if err := l.Add(k, m[k]); err != nil {
			return nil, err
		}
	}

	return l, nil
}

func checkTypes[K1, K2 comparable]() error {
	t1 := reflect.TypeOf((*K1)(nil)).Elem()
	t2 := reflect.TypeOf((*K2)(nil)).Elem()
	if t1 == t2 {
		return errors.Wrapf(ErrTypeConflict, "both keys are %s", t1)
	}
	return nil
}

func (l *List[K1, K2]) Len() int {
	return len(l.xs)
}

func (l *List[K1, K2]) IsEmpty() bool {
	return len(l.xs) == 0
}

// Firsts returns a copy of the first column
func (l *List[K1, K2]) Firsts() []K1 {
	return slices.Clone(l.xs)
}

// Seconds returns a copy of the second column
func (l *List[K1, K2]) Seconds() []K2 {
	return slices.Clone(l.ys)
}

func (l *List[K1, K2]) Clear() {
	l.xs = l.xs[:0]
	l.ys = l.ys[:0]
}

// Clone returns an independent copy that keeps the receiver's options
func (l *List[K1, K2]) Clone() *List[K1, K2] {
	return &List[K1, K2]{
		xs:     slices.Clone(l.xs),
		ys:     slices.Clone(l.ys),
		strict: l.strict,
	}
}
