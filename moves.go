package rubikscube

// Predefined sequences for convenience.
//
// Example:
//
//	cube.ApplyMoves(rubikscube.SexyMove)
var (
	// SexyMove is R U R' U', which has order 6.
	SexyMove = []Move{RPlus, UPlus, RMinus, UMinus}

	// InverseSexyMove is U R U' R'.
	InverseSexyMove = []Move{UPlus, RPlus, UMinus, RMinus}
)

// Commutator returns a b a' b'.
func Commutator(a, b Move) []Move {
	return []Move{a, b, a.Inverse(), b.Inverse()}
}

// Invert returns the sequence that undoes moves.
func Invert(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
