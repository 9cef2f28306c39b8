// Package hashing provides Zobrist position keys and repetition tracking.
package hashing

import (
	"sync"

	"golang.org/x/exp/rand"

	"github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"
)

// DefaultSeed seeds the key tables returned by KeysFor.
const DefaultSeed uint64 = 0x9E3779B97F4A7C15

// pieceKinds is the number of coloured piece kinds: six types in two colours.
const pieceKinds = 12

// Keys holds the Zobrist random values for one board geometry.
type Keys struct {
	geometry chess.Geometry
	// pieces is indexed by square, then by kindIndex.
	pieces   [][pieceKinds]uint64
	side     uint64
	castling [16]uint64
	// enPassant is indexed by file.
	enPassant []uint64
}

// NewKeys generates a key table for g from a seeded generator. Equal seeds
// give equal tables.
func NewKeys(g chess.Geometry, seed uint64) *Keys {
	rng := rand.New(rand.NewSource(seed))
	k := &Keys{
		geometry:  g,
		pieces:    make([][pieceKinds]uint64, g.NumSquares()),
		side:      rng.Uint64(),
		enPassant: make([]uint64, g.Files),
	}
	for sq := range k.pieces {
		for i := range k.pieces[sq] {
			k.pieces[sq][i] = rng.Uint64()
		}
	}
	for i := range k.castling {
		k.castling[i] = rng.Uint64()
	}
	// No castling rights contribute nothing.
	k.castling[0] = 0
	for f := range k.enPassant {
		k.enPassant[f] = rng.Uint64()
	}
	return k
}

var keyCache sync.Map // chess.Geometry -> *Keys

// KeysFor returns the shared key table for g, generating it on first use.
// It is safe for concurrent use.
func KeysFor(g chess.Geometry) *Keys {
	if k, ok := keyCache.Load(g); ok {
		return k.(*Keys)
	}
	k, _ := keyCache.LoadOrStore(g, NewKeys(g, DefaultSeed))
	return k.(*Keys)
}

// Hash computes the key of a position: placement, side to move, castling
// rights and en-passant file. The en-passant file only counts when a pawn of
// the side to move can capture onto the target. Clocks are not part of the key.
func (k *Keys) Hash(board *chess.Board) uint64 {
	var hash uint64
	for colour := range board.PieceSquares {
		for _, sq := range board.PieceSquares[colour] {
			hash ^= k.pieces[sq][kindIndex(board.Squares[sq])]
		}
	}
	if board.ToMove == chess.Black {
		hash ^= k.side
	}
	hash ^= k.castling[board.Castling&chess.AllCastling]
	if board.EnPassant != chess.NoSquare && enPassantCapturable(board) {
		hash ^= k.enPassant[board.Geometry.File(board.EnPassant)]
	}
	return hash
}

// enPassantCapturable reports whether a pawn of the side to move stands
// diagonally behind the en-passant target.
func enPassantCapturable(board *chess.Board) bool {
	g := board.Geometry
	pawn := chess.MakeColouredPiece(board.ToMove, chess.Pawn)
	back := -chess.ColourOffset(board.ToMove)
	for _, df := range []int{-1, 1} {
		if sq, ok := g.Offset(board.EnPassant, back, df); ok && board.Squares[sq] == pawn {
			return true
		}
	}
	return false
}

// kindIndex maps a coloured piece to 0..11.
func kindIndex(colouredPiece chess.Piece) int {
	piece := chess.ExtractPiece(colouredPiece)
	return int(piece-chess.Pawn)*chess.NumColours + int(chess.ExtractColour(colouredPiece))
}

// GenerateZobristHash returns the key of a position using the shared table
// for its geometry.
func GenerateZobristHash(board *chess.Board) uint64 {
	return KeysFor(board.Geometry).Hash(board)
}

// WeakHash is a cheap placement-only hash, used as a second check when two
// Zobrist keys collide.
func WeakHash(board *chess.Board) uint64 {
	var hash uint64
	multiplier := uint64(31)
	for sq, piece := range board.Squares {
		if chess.IsOccupied(piece) {
			hash = hash*multiplier + uint64(sq)<<8 + uint64(piece)
		}
	}
	return hash
}

// positionSignature identifies a position in the tracker.
type positionSignature struct {
	// Hash is the Zobrist key of the position
	Hash uint64
	// WeakHash guards against key collisions
	WeakHash uint64
}

// RepetitionTracker counts how often each position has occurred along a
// line of play. Positions are pushed as they are reached and popped when a
// move is taken back.
type RepetitionTracker struct {
	counts  map[positionSignature]int
	history []positionSignature
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{
		counts: make(map[positionSignature]int),
	}
}

// Push records a reached position and returns how many times it has now
// occurred.
func (r *RepetitionTracker) Push(board *chess.Board) int {
	sig := signatureOf(board)
	r.history = append(r.history, sig)
	r.counts[sig]++
	return r.counts[sig]
}

// Pop forgets the most recently pushed position. It returns false if the
// tracker is empty.
func (r *RepetitionTracker) Pop() bool {
	if len(r.history) == 0 {
		return false
	}
	last := len(r.history) - 1
	sig := r.history[last]
	r.history = r.history[:last]
	if r.counts[sig]--; r.counts[sig] == 0 {
		delete(r.counts, sig)
	}
	return true
}

// Count returns how many times the position has been pushed.
func (r *RepetitionTracker) Count(board *chess.Board) int {
	return r.counts[signatureOf(board)]
}

// Len returns the number of pushed positions.
func (r *RepetitionTracker) Len() int {
	return len(r.history)
}

// UniqueCount returns the number of distinct positions seen.
func (r *RepetitionTracker) UniqueCount() int {
	return len(r.counts)
}

// Reset clears the tracker.
func (r *RepetitionTracker) Reset() {
	r.counts = make(map[positionSignature]int)
	r.history = r.history[:0]
}

func signatureOf(board *chess.Board) positionSignature {
	return positionSignature{
		Hash:     GenerateZobristHash(board),
		WeakHash: WeakHash(board),
	}
}
