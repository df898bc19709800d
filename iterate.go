package duallist

import (
	"context"
	"iter"
)

type (
	FilterFn[K1, K2 comparable]       func(x K1, y K2, order int) bool
	ForEachFn[K1, K2 comparable]      func(x K1, y K2, order int)
	ForEachUntilFn[K1, K2 comparable] func(x K1, y K2, order int) bool

	// Source is anything that can stream pairs in order, a List included
	Source[K1, K2 comparable] interface {
		Pairs(ctx context.Context) <-chan Pair[K1, K2]
	}
)

var _ Source[string, int] = (*List[string, int])(nil)

// All returns a lazy sequence of pair snapshots in positional order.
// Each traversal reads the live list; mutating the list while a
// traversal is in progress gives undefined results.
func (l *List[K1, K2]) All() iter.Seq[Pair[K1, K2]] {
	return func(yield func(Pair[K1, K2]) bool) {
		for i := 0; i < len(l.xs); i++ {
			if !yield(Pair[K1, K2]{X: l.xs[i], Y: l.ys[i]}) {
				return
			}
		}
	}
}

// Pairs streams the pairs over a channel that is closed once all pairs are
// sent or ctx is done. The list must not be mutated until then.
func (l *List[K1, K2]) Pairs(ctx context.Context) <-chan Pair[K1, K2] {
	resultCh := make(chan Pair[K1, K2])

	go func() {
		defer close(resultCh)

		for p := range l.All() {
			select {
			case <-ctx.Done():
				return
			case resultCh <- p:
			}
		}
	}()

	return resultCh
}

func (l *List[K1, K2]) ForEach(f ForEachFn[K1, K2]) {
	for i := 0; i < len(l.xs); i++ {
		f(l.xs[i], l.ys[i], i)
	}
}

// ForEachUntil stops as soon as f returns false
func (l *List[K1, K2]) ForEachUntil(f ForEachUntilFn[K1, K2]) *List[K1, K2] {
	for i := 0; i < len(l.xs); i++ {
		if !f(l.xs[i], l.ys[i], i) {
			break
		}
	}
	return l
}

func (l *List[K1, K2]) Any() bool {
	return len(l.xs) > 0
}

// AnyFunc reports whether pred holds for at least one pair
func (l *List[K1, K2]) AnyFunc(pred func(x K1, y K2) bool) bool {
	for i := range l.xs {
		if pred(l.xs[i], l.ys[i]) {
			return true
		}
	}
	return false
}

// FromSource drains src into a new list, rejecting duplicate pairs.
// It returns ctx.Err() if ctx is done before src is exhausted.
func FromSource[K1, K2 comparable](ctx context.Context, src Source[K1, K2], options ...Option) (*List[K1, K2], error) {
	l, err := New[K1, K2](options...)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pairs := src.Pairs(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case p, ok := <-pairs:
			if !ok {
				return l, nil
			}
			if err := l.AddPair(p); err != nil {
				return nil, err
			}
		}
	}
}
