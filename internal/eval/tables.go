package eval

import (
	"math"
	"sync"

	"github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"
)

// BiasTables holds the positional bias of every piece type on one geometry,
// seen from White's side. Values lie in [0,1]; Black reads them through
// Geometry.Mirror.
type BiasTables struct {
	geometry chess.Geometry

	// Early holds the opening/middlegame table per piece type. The late
	// table is flat (zero) for everything but the king.
	Early [chess.NumPieceValues][]float64

	// KingLate rewards a centralized king once material comes off.
	KingLate []float64
}

var tableCache sync.Map // chess.Geometry -> *BiasTables

// TablesFor returns the bias tables for g, building them on first use.
// It is safe for concurrent use.
func TablesFor(g chess.Geometry) *BiasTables {
	if t, ok := tableCache.Load(g); ok {
		return t.(*BiasTables)
	}
	t, _ := tableCache.LoadOrStore(g, NewBiasTables(g))
	return t.(*BiasTables)
}

// NewBiasTables builds the tables for g.
func NewBiasTables(g chess.Geometry) *BiasTables {
	t := &BiasTables{geometry: g}
	for p := chess.Pawn; p <= chess.King; p++ {
		t.Early[p] = make([]float64, g.NumSquares())
	}
	t.KingLate = make([]float64, g.NumSquares())

	for sq := chess.Square(0); int(sq) < g.NumSquares(); sq++ {
		centre := centrality(g, sq)
		advance := advancement(g, sq)

		t.Early[chess.Pawn][sq] = 0.7*advance + 0.3*fileCentrality(g, g.File(sq))
		t.Early[chess.Knight][sq] = centre
		t.Early[chess.Bishop][sq] = 0.8*centre + 0.2*advance
		t.Early[chess.Rook][sq] = 0.6*advance + 0.4*fileCentrality(g, g.File(sq))
		t.Early[chess.Queen][sq] = centre
		t.Early[chess.King][sq] = shelter(g, sq)
		t.KingLate[sq] = centre
	}
	return t
}

// Value returns the early and late bias of piece (coloured) standing on sq.
func (t *BiasTables) Value(piece chess.Piece, sq chess.Square) (early, late float64) {
	kind := chess.ExtractPiece(piece)
	if chess.ExtractColour(piece) == chess.Black {
		sq = t.geometry.Mirror(sq)
	}
	early = t.Early[kind][sq]
	if kind == chess.King {
		late = t.KingLate[sq]
	}
	return early, late
}

// centrality is 1 on the centre squares and 0 on the farthest edge.
func centrality(g chess.Geometry, sq chess.Square) float64 {
	cr := float64(g.Ranks-1) / 2
	cf := float64(g.Files-1) / 2
	d := math.Max(math.Abs(float64(g.Rank(sq))-cr), math.Abs(float64(g.File(sq))-cf))
	return 1 - d/math.Max(cr, cf)
}

func fileCentrality(g chess.Geometry, file int) float64 {
	cf := float64(g.Files-1) / 2
	return 1 - math.Abs(float64(file)-cf)/cf
}

// advancement is 0 on White's home rank and 1 on the promotion rank.
func advancement(g chess.Geometry, sq chess.Square) float64 {
	return float64(g.Rank(sq)) / float64(g.Ranks-1)
}

// shelter keeps the king on its home rank and off the centre files.
func shelter(g chess.Geometry, sq chess.Square) float64 {
	rank := 1 - math.Min(1, float64(g.Rank(sq))/2)
	return rank * (1 - fileCentrality(g, g.File(sq)))
}
