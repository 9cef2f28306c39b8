package chess

// Square is an index into a board's placement: rank*Files + file.
// Rank 0 is White's home rank.
type Square int

// NoSquare marks an absent square (no en-passant target, no castling rook).
const NoSquare Square = -1

// Limits for the board dimensions supported by the notation.
const (
	MinDimension = 5
	MaxFiles     = 26
	MaxRanks     = 99

	StandardRanks = 8
	StandardFiles = 8
)

// Geometry is the fixed shape of a board for the lifetime of a game.
type Geometry struct {
	Ranks int
	Files int
}

// StandardGeometry is the orthodox 8x8 board.
var StandardGeometry = Geometry{Ranks: StandardRanks, Files: StandardFiles}

// NumSquares returns Ranks*Files.
func (g Geometry) NumSquares() int {
	return g.Ranks * g.Files
}

// Valid reports whether the geometry can host an orthodox game.
func (g Geometry) Valid() bool {
	return g.Ranks >= MinDimension && g.Ranks <= MaxRanks &&
		g.Files >= MinDimension && g.Files <= MaxFiles
}

// Square returns the square at the given rank and file indices.
func (g Geometry) Square(rank, file int) Square {
	return Square(rank*g.Files + file)
}

// Rank returns the rank index of a square.
func (g Geometry) Rank(sq Square) int {
	return int(sq) / g.Files
}

// File returns the file index of a square.
func (g Geometry) File(sq Square) int {
	return int(sq) % g.Files
}

// Contains reports whether rank and file lie on the board.
func (g Geometry) Contains(rank, file int) bool {
	return rank >= 0 && rank < g.Ranks && file >= 0 && file < g.Files
}

// Offset moves a square by the given rank and file deltas.
// The second result is false if the target lies off the board.
func (g Geometry) Offset(sq Square, dRank, dFile int) (Square, bool) {
	r := g.Rank(sq) + dRank
	f := g.File(sq) + dFile
	if !g.Contains(r, f) {
		return NoSquare, false
	}
	return g.Square(r, f), true
}

// HomeRank returns the back rank of a colour.
func (g Geometry) HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return g.Ranks - 1
}

// PawnStartRank returns the rank a colour's pawns start on.
func (g Geometry) PawnStartRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return g.Ranks - 2
}

// PromotionRank returns the rank on which a colour's pawns promote.
func (g Geometry) PromotionRank(colour Colour) int {
	return g.HomeRank(colour.Opposite())
}

// Mirror returns the square seen from the other side of the board (rank flipped).
func (g Geometry) Mirror(sq Square) Square {
	return g.Square(g.Ranks-1-g.Rank(sq), g.File(sq))
}

// Distance returns the king-step (Chebyshev) distance between two squares.
func (g Geometry) Distance(a, b Square) int {
	dr := abs(g.Rank(a) - g.Rank(b))
	df := abs(g.File(a) - g.File(b))
	if dr > df {
		return dr
	}
	return df
}

// MaxDistance returns the largest possible Distance on this geometry.
func (g Geometry) MaxDistance() int {
	if g.Ranks > g.Files {
		return g.Ranks - 1
	}
	return g.Files - 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
