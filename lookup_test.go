package duallist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denismitr/duallist"
)

func TestList_GetBy(t *testing.T) {
	t.Run("get by first and by second", func(t *testing.T) {
		l := newNumbers(t)

		for first, second := range map[string]int{"one": 1, "two": 2, "three": 3} {
			y, err := l.GetByFirst(first)
			require.NoError(t, err)
			assert.Equal(t, second, y)

			x, err := l.GetBySecond(second)
			require.NoError(t, err)
			assert.Equal(t, first, x)
		}
	})

	t.Run("missing keys", func(t *testing.T) {
		l := newNumbers(t)

		y, err := l.GetByFirst("seven")
		require.ErrorIs(t, err, duallist.ErrNotFound)
		assert.Equal(t, 0, y)

		x, err := l.GetBySecond(7)
		require.ErrorIs(t, err, duallist.ErrNotFound)
		assert.Equal(t, "", x)
	})

	t.Run("first occurrence wins", func(t *testing.T) {
		l, err := duallist.New[string, int]()
		require.NoError(t, err)
		require.NoError(t, l.Add("foo", 1))
		require.NoError(t, l.Add("foo", 2))

		y, err := l.GetByFirst("foo")
		require.NoError(t, err)
		assert.Equal(t, 1, y)
	})

	t.Run("lookup symmetry", func(t *testing.T) {
		l := newNumbers(t)

		for i := 0; i < l.Len(); i++ {
			p, err := l.ElementAt(i)
			require.NoError(t, err)

			y, err := l.GetByFirst(p.X)
			require.NoError(t, err)
			assert.Equal(t, p.Y, y)

			x, err := l.GetBySecond(p.Y)
			require.NoError(t, err)
			assert.Equal(t, p.X, x)
		}
	})
}

func TestList_SetBy(t *testing.T) {
	t.Run("set by first and by second", func(t *testing.T) {
		l := newNumbers(t)

		require.NoError(t, l.SetByFirst("one", 10))
		require.NoError(t, l.SetBySecond(5, "fifteen"))

		x, err := l.GetBySecond(10)
		require.NoError(t, err)
		assert.Equal(t, "one", x)

		y, err := l.GetByFirst("fifteen")
		require.NoError(t, err)
		assert.Equal(t, 5, y)
		assert.Equal(t, 5, l.Len())
	})

	t.Run("missing keys", func(t *testing.T) {
		l := newNumbers(t)

		require.ErrorIs(t, l.SetByFirst("seven", 7), duallist.ErrNotFound)
		require.ErrorIs(t, l.SetBySecond(7, "seven"), duallist.ErrNotFound)
	})

	t.Run("overwrite may introduce a duplicate pair by default", func(t *testing.T) {
		l, err := duallist.New[string, int]()
		require.NoError(t, err)
		require.NoError(t, l.Add("foo", 1))
		require.NoError(t, l.Add("foo", 2))

		require.NoError(t, l.SetByFirst("foo", 2))
		assert.Equal(t, 0, l.IndexOf("foo", 2))
		assert.Equal(t, 1, l.LastIndexOf("foo", 2))
	})

	t.Run("strict list rejects and reverts a duplicating overwrite", func(t *testing.T) {
		l, err := duallist.New[string, int](duallist.Strict())
		require.NoError(t, err)
		require.NoError(t, l.Add("foo", 1))
		require.NoError(t, l.Add("foo", 2))
		require.NoError(t, l.Add("bar", 2))

		require.ErrorIs(t, l.SetByFirst("foo", 2), duallist.ErrDuplicatePair)
		require.ErrorIs(t, l.SetBySecond(2, "bar"), duallist.ErrDuplicatePair)

		assert.Equal(t, []string{"foo", "foo", "bar"}, l.Firsts())
		assert.Equal(t, []int{1, 2, 2}, l.Seconds())

		require.NoError(t, l.SetByFirst("foo", 3))
		assert.Equal(t, []int{3, 2, 2}, l.Seconds())
	})

	t.Run("strict mode survives clone", func(t *testing.T) {
		l, err := duallist.New[string, int](duallist.Strict())
		require.NoError(t, err)
		require.NoError(t, l.Add("foo", 1))
		require.NoError(t, l.Add("foo", 2))

		clone := l.Clone()
		require.ErrorIs(t, clone.SetByFirst("foo", 2), duallist.ErrDuplicatePair)
		require.NoError(t, clone.SetBySecond(2, "bar"))
		assert.Equal(t, []string{"foo", "bar"}, clone.Firsts())
		assert.Equal(t, []string{"foo", "foo"}, l.Firsts())
	})
}

func TestList_Contains(t *testing.T) {
	l := newNumbers(t)

	assert.True(t, l.Contains("two", 2))
	assert.True(t, l.ContainsPair(duallist.NewPair("five", 5)))
	assert.False(t, l.Contains("two", 3))
	assert.False(t, l.ContainsPair(duallist.NewPair("five", 1)))

	assert.True(t, l.ContainsFirst("three"))
	assert.False(t, l.ContainsFirst("six"))
	assert.True(t, l.ContainsSecond(4))
	assert.False(t, l.ContainsSecond(6))
}

func TestList_IndexOf(t *testing.T) {
	l, err := duallist.From(
		[]string{"foo", "bar", "foo", "baz", "bar"},
		[]int{1, 2, 3, 1, 2},
	)
	require.NoError(t, err)

	tt := []struct {
		name string
		have int
		want int
	}{
		{name: "index of pair", have: l.IndexOf("bar", 2), want: 1},
		{name: "index of pair value", have: l.IndexOfPair(duallist.NewPair("foo", 3)), want: 2},
		{name: "last index of pair", have: l.LastIndexOf("bar", 2), want: 4},
		{name: "last index of pair value", have: l.LastIndexOfPair(duallist.NewPair("foo", 1)), want: 0},
		{name: "missing pair", have: l.IndexOf("foo", 2), want: -1},
		{name: "missing pair from the end", have: l.LastIndexOf("baz", 2), want: -1},
		{name: "index of first", have: l.IndexOfFirst("foo"), want: 0},
		{name: "last index of first", have: l.LastIndexOfFirst("foo"), want: 2},
		{name: "index of second", have: l.IndexOfSecond(1), want: 0},
		{name: "last index of second", have: l.LastIndexOfSecond(1), want: 3},
		{name: "missing first", have: l.IndexOfFirst("qux"), want: -1},
		{name: "missing last second", have: l.LastIndexOfSecond(9), want: -1},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.have)
		})
	}
}
