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

package movegen

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hduc-dev/XiangqiGo/internal/config"
	"github.com/hduc-dev/XiangqiGo/internal/moveslice"
	"github.com/hduc-dev/XiangqiGo/internal/position"
	. "github.com/hduc-dev/XiangqiGo/internal/types"
)

func TestMain(m *testing.M) {
	config.Setup()
	code := m.Run()
	os.Exit(code)
}

// movesFrom returns all moves of the list starting on the given square.
func movesFrom(moves *moveslice.MoveSlice, from Square) *moveslice.MoveSlice {
	result := moveslice.NewMoveSlice(moves.Len())
	for _, m := range *moves {
		if m.From() == from {
			result.PushBack(m)
		}
	}
	return result
}

func TestStartPositionMoves(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()

	// 2 chariots x 2, 2 horses x 2, 2 cannons x 12, 5 soldiers x 1,
	// 2 elephants x 2, 2 advisors x 2, 1 general x 1 = 44
	pseudo := mg.GeneratePseudoLegalMoves(p, GenAll)
	assert.Equal(t, 44, pseudo.Len())

	legal := mg.GenerateLegalMoves(p, GenAll)
	assert.Equal(t, 44, legal.Len())

	// the only captures in the start position are the two cannons
	// taking the opposing horses over the black cannon screens
	captures := mg.GenerateLegalMoves(p, GenNonQuiet)
	assert.Equal(t, 2, captures.Len())
}

func TestHorseHobbled(t *testing.T) {
	// red horse on (0,1) with an own soldier on its (1,1) leg -
	// all moves towards rank 2 are blocked
	p, err := position.NewPositionFen("1H2k4/1P7/9/9/9/9/9/9/9/4K4 r - - 0 1")
	require.NoError(t, err)
	mg := NewMoveGen()

	horseMoves := movesFrom(mg.GeneratePseudoLegalMoves(p, GenAll), SquareOf(0, 1))
	for _, m := range *horseMoves {
		assert.NotEqual(t, 2, m.To().RankOf(), "horse must be hobbled towards rank 2: %s", m.StringUci())
	}
	// the sideways jump over the empty (0,2) leg remains
	assert.True(t, horseMoves.Contains(CreateMove(SquareOf(0, 1), SquareOf(1, 3))))
	assert.Equal(t, 1, horseMoves.Len())
}

func TestHorseFree(t *testing.T) {
	// the same horse without the blocking soldier has its rank 2 moves
	p, err := position.NewPositionFen("1H2k4/9/9/9/9/9/9/9/9/4K4 r - - 0 1")
	require.NoError(t, err)
	mg := NewMoveGen()

	horseMoves := movesFrom(mg.GeneratePseudoLegalMoves(p, GenAll), SquareOf(0, 1))
	assert.True(t, horseMoves.Contains(CreateMove(SquareOf(0, 1), SquareOf(2, 0))))
	assert.True(t, horseMoves.Contains(CreateMove(SquareOf(0, 1), SquareOf(2, 2))))
}

func TestCannonScreen(t *testing.T) {
	// red cannon (0,1), black soldier screen (3,1), black chariot (5,1)
	p, err := position.NewPositionFen("1C2k4/9/9/1p7/9/1r7/9/9/9/4K4 r - - 0 1")
	require.NoError(t, err)
	mg := NewMoveGen()

	cannonMoves := movesFrom(mg.GeneratePseudoLegalMoves(p, GenAll), SquareOf(0, 1))

	// capture over the screen
	assert.True(t, cannonMoves.Contains(CreateMove(SquareOf(0, 1), SquareOf(5, 1))))
	// no capture of the screen itself and no landing on it
	assert.False(t, cannonMoves.Contains(CreateMove(SquareOf(0, 1), SquareOf(3, 1))))
	// no landing behind the screen short of the capture
	assert.False(t, cannonMoves.Contains(CreateMove(SquareOf(0, 1), SquareOf(4, 1))))
	// quiet moves up to the screen
	assert.True(t, cannonMoves.Contains(CreateMove(SquareOf(0, 1), SquareOf(1, 1))))
	assert.True(t, cannonMoves.Contains(CreateMove(SquareOf(0, 1), SquareOf(2, 1))))
}

func TestElephantRiverBound(t *testing.T) {
	// red elephant on (5,2) at the river edge
	p, err := position.NewPositionFen("4k4/9/9/9/9/2E6/9/9/9/4K4 r - - 0 1")
	require.NoError(t, err)
	mg := NewMoveGen()

	elephantMoves := movesFrom(mg.GeneratePseudoLegalMoves(p, GenAll), SquareOf(5, 2))

	assert.True(t, elephantMoves.Contains(CreateMove(SquareOf(5, 2), SquareOf(7, 0))))
	assert.True(t, elephantMoves.Contains(CreateMove(SquareOf(5, 2), SquareOf(7, 4))))
	// crossing the river is not allowed
	assert.False(t, elephantMoves.Contains(CreateMove(SquareOf(5, 2), SquareOf(3, 0))))
	assert.False(t, elephantMoves.Contains(CreateMove(SquareOf(5, 2), SquareOf(3, 4))))
	assert.Equal(t, 2, elephantMoves.Len())
}

func TestElephantEyeBlocked(t *testing.T) {
	// a piece on the elephant's eye (6,1) blocks the (7,0) move
	p, err := position.NewPositionFen("4k4/9/9/9/9/2E6/1P7/9/9/4K4 r - - 0 1")
	require.NoError(t, err)
	mg := NewMoveGen()

	elephantMoves := movesFrom(mg.GeneratePseudoLegalMoves(p, GenAll), SquareOf(5, 2))
	assert.False(t, elephantMoves.Contains(CreateMove(SquareOf(5, 2), SquareOf(7, 0))))
	assert.True(t, elephantMoves.Contains(CreateMove(SquareOf(5, 2), SquareOf(7, 4))))
}

func TestSoldierMoves(t *testing.T) {
	mg := NewMoveGen()

	// red soldier just across the river on (4,4) - forward and sideways
	p, err := position.NewPositionFen("4k4/9/9/9/4P4/9/9/9/9/4K4 r - - 0 1")
	require.NoError(t, err)
	soldierMoves := movesFrom(mg.GeneratePseudoLegalMoves(p, GenAll), SquareOf(4, 4))
	assert.Equal(t, 3, soldierMoves.Len())
	assert.True(t, soldierMoves.Contains(CreateMove(SquareOf(4, 4), SquareOf(3, 4))))
	assert.True(t, soldierMoves.Contains(CreateMove(SquareOf(4, 4), SquareOf(4, 3))))
	assert.True(t, soldierMoves.Contains(CreateMove(SquareOf(4, 4), SquareOf(4, 5))))

	// red soldier before the river on (5,4) - forward only
	p2, err := position.NewPositionFen("4k4/9/9/9/9/4P4/9/9/9/4K4 r - - 0 1")
	require.NoError(t, err)
	soldierMoves2 := movesFrom(mg.GeneratePseudoLegalMoves(p2, GenAll), SquareOf(5, 4))
	assert.Equal(t, 1, soldierMoves2.Len())
	assert.True(t, soldierMoves2.Contains(CreateMove(SquareOf(5, 4), SquareOf(4, 4))))
}

func TestGeneralPalaceBound(t *testing.T) {
	// red general on the palace corner (7,3)
	p, err := position.NewPositionFen("4k4/9/9/9/9/9/9/3K5/9/9 r - - 0 1")
	require.NoError(t, err)
	mg := NewMoveGen()

	generalMoves := movesFrom(mg.GeneratePseudoLegalMoves(p, GenAll), SquareOf(7, 3))
	// (6,3) and (7,2) leave the palace, (7,4) and (8,3) stay inside
	assert.True(t, generalMoves.Contains(CreateMove(SquareOf(7, 3), SquareOf(7, 4))))
	assert.True(t, generalMoves.Contains(CreateMove(SquareOf(7, 3), SquareOf(8, 3))))
	assert.Equal(t, 2, generalMoves.Len())
}

func TestAdvisorPalaceBound(t *testing.T) {
	// red advisor on the palace center (8,4) reaches all four corners
	p, err := position.NewPositionFen("4k4/9/9/9/9/9/9/9/4A4/4K4 r - - 0 1")
	require.NoError(t, err)
	mg := NewMoveGen()

	advisorMoves := movesFrom(mg.GeneratePseudoLegalMoves(p, GenAll), SquareOf(8, 4))
	assert.Equal(t, 4, advisorMoves.Len())
	assert.True(t, advisorMoves.Contains(CreateMove(SquareOf(8, 4), SquareOf(7, 3))))
	assert.True(t, advisorMoves.Contains(CreateMove(SquareOf(8, 4), SquareOf(7, 5))))
}

func TestIsInCheck(t *testing.T) {
	// black chariot on the red general's file gives check
	p, err := position.NewPositionFen("4k4/9/9/9/9/9/9/9/9/3Kr4 r - - 0 1")
	require.NoError(t, err)
	assert.True(t, IsInCheck(p, Red))
	assert.False(t, IsInCheck(p, Black))

	// cannon check over a screen
	p2, err := position.NewPositionFen("4k4/9/9/4c4/9/4P4/9/9/9/4K4 r - - 0 1")
	require.NoError(t, err)
	assert.True(t, IsInCheck(p2, Red))

	// cannon without a screen does not check
	p3, err := position.NewPositionFen("4k4/9/9/4c4/9/9/9/9/9/4K4 r - - 0 1")
	require.NoError(t, err)
	assert.False(t, IsInCheck(p3, Red))

	// horse check respecting its leg
	p4, err := position.NewPositionFen("4k4/9/9/9/9/9/9/3h5/9/4K4 r - - 0 1")
	require.NoError(t, err)
	assert.True(t, IsInCheck(p4, Red))

	// the same horse hobbled by a piece on its leg
	p5, err := position.NewPositionFen("4k4/9/9/9/9/9/9/3h5/3P5/4K4 r - - 0 1")
	require.NoError(t, err)
	assert.False(t, IsInCheck(p5, Red))

	// soldier check from the square in front of the general
	p6, err := position.NewPositionFen("4k4/9/9/9/9/9/9/9/4p4/4K4 r - - 0 1")
	require.NoError(t, err)
	assert.True(t, IsInCheck(p6, Red))
}

func TestCheckPropertyAgainstPseudoMoves(t *testing.T) {
	// IsInCheck must be true exactly when a pseudo legal enemy move
	// lands on the general's square
	fens := []string{
		StartFen,
		"4k4/9/9/4c4/9/4P4/9/9/9/4K4 r - - 0 1",
		"4k4/9/9/9/9/9/9/3h5/9/4K4 r - - 0 1",
		"1C2k4/9/9/1p7/9/1r7/9/9/9/4K4 b - - 0 1",
	}
	mg := NewMoveGen()
	for _, fen := range fens {
		p, err := position.NewPositionFen(fen)
		require.NoError(t, err)
		for _, c := range []Color{Red, Black} {
			// generate the opponent's pseudo moves by flipping the
			// side to move via a null-ish fen reload
			kingSquare := p.KingSquare(c)
			attacked := false
			opp := *p
			if opp.NextPlayer() != c.Flip() {
				// flip side to move by re-parsing the fen
				fenParts := p.StringFen()
				p2, err := position.NewPositionFen(replaceSideToMove(fenParts, c.Flip()))
				require.NoError(t, err)
				opp = *p2
			}
			for _, m := range *mg.GeneratePseudoLegalMoves(&opp, GenAll) {
				if m.To() == kingSquare {
					attacked = true
					break
				}
			}
			assert.Equal(t, attacked, IsInCheck(p, c), "fen: %s color: %s", fen, c.Name())
		}
	}
}

func replaceSideToMove(fen string, c Color) string {
	fields := []byte(fen)
	for i := 0; i < len(fields); i++ {
		if fields[i] == ' ' {
			fields[i+1] = c.String()[0]
			break
		}
	}
	return string(fields)
}

func TestLegalMovesFilterSelfCheck(t *testing.T) {
	// the red advisor on (8,4) is pinned by the black chariot on the
	// e-file - moving it would expose the general
	p, err := position.NewPositionFen("4k4/9/9/9/4r4/9/9/9/4A4/4K4 r - - 0 1")
	require.NoError(t, err)
	mg := NewMoveGen()

	legal := mg.GenerateLegalMoves(p, GenAll)
	for _, m := range *legal {
		assert.NotEqual(t, SquareOf(8, 4), m.From(), "pinned advisor must not move: %s", m.StringUci())
	}
}

func TestLegalMovesFilterFlyingGeneral(t *testing.T) {
	// only one screen between the generals - the screen is pinned
	// against the flying general rule
	p, err := position.NewPositionFen("4k4/9/9/9/4C4/9/9/9/9/4K4 r - - 0 1")
	require.NoError(t, err)
	mg := NewMoveGen()

	legal := mg.GenerateLegalMoves(p, GenAll)
	for _, m := range *legal {
		if m.From() == SquareOf(4, 4) {
			// the cannon may only move along the file
			assert.Equal(t, 4, m.To().FileOf(), "cannon is pinned to the file: %s", m.StringUci())
		}
	}
}

func TestGetMoveFromUci(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()

	// cannon b2 to e2 in wire format: b2 = (7,1), e2 = (7,4)
	m := mg.GetMoveFromUci(p, "b2e2")
	assert.Equal(t, CreateMove(SquareOf(7, 1), SquareOf(7, 4)), m)

	// not a legal move
	assert.Equal(t, MoveNone, mg.GetMoveFromUci(p, "a0a9"))
	// malformed
	assert.Equal(t, MoveNone, mg.GetMoveFromUci(p, "xx"))
}

func TestMoveCountChangesByOneAtMost(t *testing.T) {
	// applying any generated legal move changes the total piece
	// count by 0 (quiet) or 1 (capture)
	p, err := position.NewPositionFen("1C2k4/9/9/1p7/9/1r7/9/9/9/4K4 r - - 0 1")
	require.NoError(t, err)
	mg := NewMoveGen()

	count := p.PieceCount()
	for _, m := range *mg.GenerateLegalMoves(p, GenAll) {
		next := *p
		require.True(t, next.MakeMove(m.From(), m.To()))
		diff := count - next.PieceCount()
		assert.True(t, diff == 0 || diff == 1, "piece count changed by %d on %s", diff, m.StringUci())
		assert.Equal(t, Black, next.NextPlayer())
	}
}
