package duallist

// Pair is a snapshot of one position of a List.
// Changing it does not affect the list it came from.
type Pair[K1, K2 comparable] struct {
	X K1 `json:"x"`
	Y K2 `json:"y"`
}

func NewPair[K1, K2 comparable](x K1, y K2) Pair[K1, K2] {
	return Pair[K1, K2]{X: x, Y: y}
}

// Unpack returns both values of the pair
func (p Pair[K1, K2]) Unpack() (K1, K2) {
	return p.X, p.Y
}
