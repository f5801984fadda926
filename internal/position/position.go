//
// XiangqiGo - UCI Xiangqi (Chinese Chess) engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2024 Duc Hien Nguyen
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package position represents a Xiangqi board position and its
// manipulation. The position is a plain value type - the search
// copies a position before mutating it, there is no undo stack.
package position

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/hduc-dev/XiangqiGo/internal/types"
)

// Position represents a Xiangqi board position with all relevant
// state. It contains only value typed fields so a simple assignment
// creates an independent deep copy.
type Position struct {
	// piece placement, square = rank*9 + file
	data [SquareLength]Piece

	// game state
	nextPlayer    Color
	zobristKey    Key
	kingSquare    [ColorLength]Square
	pieceCounter  [ColorLength]int
	material      [ColorLength]Value
	halfMoveClock int
	moveNumber    int
}

// NewPosition creates a new position.
// When called without an argument the position is set up with the
// start position. When a fen string is given the position is set up
// with that fen. An invalid fen leads to a panic - use
// NewPositionFen when the fen comes from an untrusted source.
func NewPosition(fen ...string) *Position {
	if len(fen) == 0 {
		p, _ := NewPositionFen(StartFen)
		return p
	}
	p, err := NewPositionFen(fen[0])
	if err != nil {
		panic(err)
	}
	return p
}

// NewPositionFen creates a new position with the given fen string
// as the starting position. Returns an error and no position if the
// fen could not be parsed.
func NewPositionFen(fen string) (*Position, error) {
	p := &Position{}
	if err := p.setupBoard(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// MakeMove moves a piece from the from square to the to square if
// the basic move conditions are met - valid squares, a piece of the
// side to move on the from square and no own piece on the to square.
// It does NOT check whether the move complies with the piece's
// movement rules - the caller is expected to only pass generated
// moves or to accept pseudo moves. Returns false and leaves the
// position unchanged when a condition is not met.
func (p *Position) MakeMove(from Square, to Square) bool {
	if !from.IsValid() || !to.IsValid() || from == to {
		return false
	}

	fromPc := p.data[from]
	if fromPc == PieceNone || fromPc.ColorOf() != p.nextPlayer {
		return false
	}

	targetPc := p.data[to]
	if targetPc != PieceNone && targetPc.ColorOf() == fromPc.ColorOf() {
		return false
	}

	// the halfmove clock counts moves without progress - it resets
	// on captures and soldier moves
	if targetPc != PieceNone || fromPc.TypeOf() == Soldier {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	if targetPc != PieceNone {
		p.removePiece(to)
	}
	p.movePiece(from, to)

	if p.nextPlayer == Black {
		p.moveNumber++
	}
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobristRedMove

	return true
}

// IsFlyingGeneral reports whether the two generals face each other
// on the same file with no piece in between. Positions like this
// are illegal and must not be reachable through legal moves.
func (p *Position) IsFlyingGeneral() bool {
	redKing := p.kingSquare[Red]
	blackKing := p.kingSquare[Black]
	if !redKing.IsValid() || !blackKing.IsValid() {
		return false
	}
	file := redKing.FileOf()
	if file != blackKing.FileOf() {
		return false
	}
	for r := blackKing.RankOf() + 1; r < redKing.RankOf(); r++ {
		if p.data[SquareOf(r, file)] != PieceNone {
			return false
		}
	}
	return true
}

// GetPiece returns the piece on the given square.
func (p *Position) GetPiece(sq Square) Piece {
	return p.data[sq]
}

// NextPlayer returns the side to move.
func (p *Position) NextPlayer() Color {
	return p.nextPlayer
}

// ZobristKey returns the Zobrist key of the position.
func (p *Position) ZobristKey() Key {
	return p.zobristKey
}

// KingSquare returns the square of the general of the given color
// or SqNone if the general is not on the board.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// HalfMoveClock returns the halfmove clock of the position.
// It is tracked but not consulted by the search.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// MoveNumber returns the full move number of the position.
func (p *Position) MoveNumber() int {
	return p.moveNumber
}

// PieceCount returns the total number of pieces on the board.
func (p *Position) PieceCount() int {
	return p.pieceCounter[Red] + p.pieceCounter[Black]
}

// Material returns the material value of the given color.
func (p *Position) Material(c Color) Value {
	return p.material[c]
}

// GamePhaseFactor returns an estimation of the game phase between
// 1.0 (all pieces on the board) and 0.0 (only the generals left).
func (p *Position) GamePhaseFactor() float64 {
	return float64(p.PieceCount()-2) / 30.0
}

// StringFen returns the FEN representation of the position.
func (p *Position) StringFen() string {
	var fen strings.Builder
	for r := 0; r < RankLength; r++ {
		empty := 0
		for f := 0; f < FileLength; f++ {
			pc := p.data[SquareOf(r, f)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				fen.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			fen.WriteByte(pc.Char())
		}
		if empty > 0 {
			fen.WriteString(strconv.Itoa(empty))
		}
		if r < RankLength-1 {
			fen.WriteString("/")
		}
	}
	fen.WriteString(fmt.Sprintf(" %s - - %d %d", p.nextPlayer.String(), p.halfMoveClock, p.moveNumber))
	return fen.String()
}

// StringBoard returns a visual representation of the board with a
// marker for the river.
func (p *Position) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("  +---------------------------+\n")
	for r := 0; r < RankLength; r++ {
		sb.WriteString(fmt.Sprintf("%d |", 9-r))
		for f := 0; f < FileLength; f++ {
			sb.WriteString(fmt.Sprintf(" %c ", p.data[SquareOf(r, f)].Char()))
		}
		sb.WriteString("|\n")
		if r == 4 {
			sb.WriteString("  |~~~~~~~~~~~river~~~~~~~~~~~|\n")
		}
	}
	sb.WriteString("  +---------------------------+\n")
	sb.WriteString("    a  b  c  d  e  f  g  h  i\n")
	return sb.String()
}

// String returns a string representation of the position consisting
// of the board, the side to move and the fen string.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString(p.StringBoard())
	sb.WriteString(fmt.Sprintf("Next Player: %s\n", p.nextPlayer.Name()))
	sb.WriteString(fmt.Sprintf("Fen: %s\n", p.StringFen()))
	return sb.String()
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

func (p *Position) movePiece(from Square, to Square) {
	p.putPiece(p.removePiece(from), to)
}

func (p *Position) putPiece(piece Piece, square Square) {
	color := piece.ColorOf()
	p.data[square] = piece
	if piece.TypeOf() == General {
		p.kingSquare[color] = square
	}
	p.pieceCounter[color]++
	p.material[color] += piece.ValueOf()
	p.zobristKey ^= zobristPieces[color][piece.TypeOf()][square]
}

func (p *Position) removePiece(square Square) Piece {
	piece := p.data[square]
	color := piece.ColorOf()
	p.data[square] = PieceNone
	if piece.TypeOf() == General {
		p.kingSquare[color] = SqNone
	}
	p.pieceCounter[color]--
	p.material[color] -= piece.ValueOf()
	p.zobristKey ^= zobristPieces[color][piece.TypeOf()][square]
	return piece
}

// setupBoard sets up a board based on a fen. This is basically
// a copy of the initialization of a position from a fen.
func (p *Position) setupBoard(fen string) error {
	// we will analyse the fen and only require the initial board layout part
	// All other parts will have defaults. E.g. next player is red,
	// halfmove clock is 0 and full move number is 1.

	// set general defaults and reset the position
	*p = Position{}
	p.nextPlayer = Red
	p.kingSquare[Red] = SqNone
	p.kingSquare[Black] = SqNone
	p.moveNumber = 1

	fenParts := strings.Fields(fen)
	if len(fenParts) == 0 {
		return fmt.Errorf("fen must not be empty")
	}

	// piece placement - the first group is the Black back rank
	// (internal rank 0), the last the Red back rank (rank 9)
	ranks := strings.Split(fenParts[0], "/")
	if len(ranks) != RankLength {
		return fmt.Errorf("fen must have 10 ranks: %s", fen)
	}
	for r, rankStr := range ranks {
		file := 0
		for i := 0; i < len(rankStr); i++ {
			c := rankStr[i]
			if c >= '1' && c <= '9' {
				file += int(c - '0')
				if file > FileLength {
					return fmt.Errorf("fen rank %d is too long: %s", r, rankStr)
				}
				continue
			}
			piece := PieceFromChar(c)
			if piece == PieceNone {
				return fmt.Errorf("invalid piece character in fen: %c", c)
			}
			if file >= FileLength {
				return fmt.Errorf("fen rank %d is too long: %s", r, rankStr)
			}
			p.putPiece(piece, SquareOf(r, file))
			file++
		}
		if file != FileLength {
			return fmt.Errorf("fen rank %d is incomplete: %s", r, rankStr)
		}
	}

	// next player
	if len(fenParts) >= 2 {
		switch fenParts[1] {
		case "r", "w":
			p.nextPlayer = Red
		case "b":
			p.nextPlayer = Black
		default:
			return fmt.Errorf("invalid next player in fen: %s", fenParts[1])
		}
	}

	// fen parts 3 and 4 (castling and en passant) have no meaning in
	// Xiangqi and are ignored - they are only present for shape

	// halfmove clock
	if len(fenParts) >= 5 {
		halfmove, err := strconv.Atoi(fenParts[4])
		if err != nil {
			return fmt.Errorf("invalid halfmove clock in fen: %s", fenParts[4])
		}
		p.halfMoveClock = halfmove
	}

	// fullmove number
	if len(fenParts) >= 6 {
		fullmove, err := strconv.Atoi(fenParts[5])
		if err != nil {
			return fmt.Errorf("invalid fullmove number in fen: %s", fenParts[5])
		}
		p.moveNumber = fullmove
	}
	if p.moveNumber == 0 {
		p.moveNumber = 1
	}

	// both generals must be on the board
	if p.kingSquare[Red] == SqNone || p.kingSquare[Black] == SqNone {
		return fmt.Errorf("fen must have one general per color: %s", fen)
	}

	// the side to move key is in the hash when Red is to move
	if p.nextPlayer == Red {
		p.zobristKey ^= zobristRedMove
	}

	return nil
}
