package duallist

import (
	"encoding/json"

	"github.com/pkg/errors"
)

var (
	_ json.Marshaler   = (*List[string, int])(nil)
	_ json.Unmarshaler = (*List[string, int])(nil)
)

// MarshalJSON encodes the list as an ordered array of {"x", "y"} objects
func (l *List[K1, K2]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.ToSlice())
}

// UnmarshalJSON replaces the contents of l with the decoded pairs.
// Pairs are added one by one, so a repeated pair fails with ErrDuplicatePair
// and l is left unchanged.
func (l *List[K1, K2]) UnmarshalJSON(data []byte) error {
	if err := checkTypes[K1, K2](); err != nil {
		return err
	}

	var pairs []Pair[K1, K2]
	if err := json.Unmarshal(data, &pairs); err != nil {
		return errors.Wrap(err, "could not decode pairs")
	}

	decoded := &List[K1, K2]{
		xs: make([]K1, 0, len(pairs)),
		ys: make([]K2, 0, len(pairs)),
	}
	for _, p := range pairs {
		if err := decoded.AddPair(p); err != nil {
			return err
		}
	}

	l.xs, l.ys = decoded.xs, decoded.ys
	return nil
}
