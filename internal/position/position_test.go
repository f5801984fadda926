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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/hduc-dev/XiangqiGo/internal/types"
)

func TestStartPosition(t *testing.T) {
	p := NewPosition()

	assert.Equal(t, Red, p.NextPlayer())
	assert.Equal(t, 32, p.PieceCount())
	assert.Equal(t, SquareOf(9, 4), p.KingSquare(Red))
	assert.Equal(t, SquareOf(0, 4), p.KingSquare(Black))
	assert.Equal(t, MakePiece(Red, Chariot), p.GetPiece(SquareOf(9, 0)))
	assert.Equal(t, MakePiece(Black, Chariot), p.GetPiece(SquareOf(0, 0)))
	assert.Equal(t, MakePiece(Red, Cannon), p.GetPiece(SquareOf(7, 1)))
	assert.Equal(t, MakePiece(Black, Soldier), p.GetPiece(SquareOf(3, 0)))
	assert.Equal(t, MakePiece(Red, Soldier), p.GetPiece(SquareOf(6, 4)))
	assert.Equal(t, 0, p.HalfMoveClock())
	assert.Equal(t, 1, p.MoveNumber())
	assert.Equal(t, StartFen, p.StringFen())
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"4k4/R8/8R/9/9/9/9/9/9/3K5 r - - 0 1",
		"rheakaehr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RHEAKAEHR b - - 12 7",
	}
	for _, fen := range fens {
		p, err := NewPositionFen(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, p.StringFen())
	}
}

func TestInvalidFen(t *testing.T) {
	invalid := []string{
		"",
		"rheakaehr/9/1c5c1 r - - 0 1",                                      // too few ranks
		"rheakaehr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RHEAKAEHRR r",   // rank too long
		"rheakaehr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RHEAKAEH r",     // rank incomplete
		"rheakaehr/9/1x5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RHEAKAEHR r",    // unknown piece letter
		"rheakaehr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RHEAKAEHR x",    // bad color
		"rheakaehr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RHEAKAEHR r - - x 1", // bad clock
		"rhea1aehr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RHEAKAEHR r",    // missing general
	}
	for _, fen := range invalid {
		_, err := NewPositionFen(fen)
		assert.Error(t, err, "expected error for fen: %s", fen)
	}
}

func TestMakeMove(t *testing.T) {
	p := NewPosition()

	// red cannon h2 -> e2 (internal (7,7) -> (7,4))
	assert.True(t, p.MakeMove(SquareOf(7, 7), SquareOf(7, 4)))
	assert.Equal(t, Black, p.NextPlayer())
	assert.Equal(t, MakePiece(Red, Cannon), p.GetPiece(SquareOf(7, 4)))
	assert.Equal(t, PieceNone, p.GetPiece(SquareOf(7, 7)))
	assert.Equal(t, 1, p.HalfMoveClock())
	assert.Equal(t, 1, p.MoveNumber())

	// black answers - move number advances after Black's move
	assert.True(t, p.MakeMove(SquareOf(0, 1), SquareOf(2, 2)))
	assert.Equal(t, Red, p.NextPlayer())
	assert.Equal(t, 2, p.MoveNumber())
}

func TestMakeMoveRejections(t *testing.T) {
	p := NewPosition()

	// empty source square
	assert.False(t, p.MakeMove(SquareOf(5, 0), SquareOf(4, 0)))
	// wrong side to move
	assert.False(t, p.MakeMove(SquareOf(3, 0), SquareOf(4, 0)))
	// capture of own piece
	assert.False(t, p.MakeMove(SquareOf(9, 0), SquareOf(9, 1)))
	// invalid squares
	assert.False(t, p.MakeMove(SqNone, SquareOf(4, 0)))
	assert.False(t, p.MakeMove(SquareOf(9, 0), SquareOf(9, 0)))

	// nothing changed
	assert.Equal(t, Red, p.NextPlayer())
	assert.Equal(t, StartFen, p.StringFen())
}

func TestMakeMoveCapture(t *testing.T) {
	p := NewPosition()
	// MakeMove only enforces the basic conditions - the piece rules
	// are the move generator's responsibility. A capture resets the
	// halfmove clock and reduces the piece count by one.
	require.True(t, p.MakeMove(SquareOf(7, 7), SquareOf(7, 4))) // Ch2-e2
	require.True(t, p.MakeMove(SquareOf(0, 0), SquareOf(1, 0))) // black chariot
	require.True(t, p.MakeMove(SquareOf(7, 4), SquareOf(3, 4))) // cannon takes soldier

	assert.Equal(t, MakePiece(Red, Cannon), p.GetPiece(SquareOf(3, 4)))
	assert.Equal(t, 31, p.PieceCount())
	assert.Equal(t, 0, p.HalfMoveClock())
}

func TestZobristSideToMove(t *testing.T) {
	p := NewPosition()
	key := p.ZobristKey()

	require.True(t, p.MakeMove(SquareOf(7, 1), SquareOf(7, 4)))
	assert.NotEqual(t, key, p.ZobristKey())
}

func TestZobristTranspositionInvariance(t *testing.T) {
	// the same position reached through different move orders must
	// have the same hash
	p1 := NewPosition()
	require.True(t, p1.MakeMove(SquareOf(7, 1), SquareOf(7, 4))) // Cb2-e2
	require.True(t, p1.MakeMove(SquareOf(0, 1), SquareOf(2, 2))) // black horse
	require.True(t, p1.MakeMove(SquareOf(9, 1), SquareOf(7, 2))) // red horse

	p2 := NewPosition()
	require.True(t, p2.MakeMove(SquareOf(9, 1), SquareOf(7, 2))) // red horse first
	require.True(t, p2.MakeMove(SquareOf(0, 1), SquareOf(2, 2))) // black horse
	require.True(t, p2.MakeMove(SquareOf(7, 1), SquareOf(7, 4))) // cannon last

	assert.Equal(t, p1.ZobristKey(), p2.ZobristKey())
	assert.Equal(t, p1.StringFen()[:strIndex(p1.StringFen())], p2.StringFen()[:strIndex(p2.StringFen())])
}

// strIndex returns the length of the board part of a fen - the
// clocks differ for transpositions and are not part of the hash.
func strIndex(fen string) int {
	for i := 0; i < len(fen); i++ {
		if fen[i] == ' ' {
			return i
		}
	}
	return len(fen)
}

func TestPositionCopy(t *testing.T) {
	p := NewPosition()
	copied := *p

	require.True(t, copied.MakeMove(SquareOf(7, 1), SquareOf(7, 4)))

	// the original position is not affected by the copy's move
	assert.Equal(t, Red, p.NextPlayer())
	assert.Equal(t, MakePiece(Red, Cannon), p.GetPiece(SquareOf(7, 1)))
	assert.NotEqual(t, p.ZobristKey(), copied.ZobristKey())
}

func TestIsFlyingGeneral(t *testing.T) {
	p, err := NewPositionFen("4k4/9/9/9/9/9/9/9/9/4K4 r - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.IsFlyingGeneral())

	// a single screen on the file prevents the face off
	p2, err := NewPositionFen("4k4/9/9/4p4/9/9/9/9/9/4K4 r - - 0 1")
	require.NoError(t, err)
	assert.False(t, p2.IsFlyingGeneral())

	// different files
	p3, err := NewPositionFen("4k4/9/9/9/9/9/9/9/9/3K5 r - - 0 1")
	require.NoError(t, err)
	assert.False(t, p3.IsFlyingGeneral())
}
