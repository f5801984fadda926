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

package evaluator

import (
	. "github.com/hduc-dev/XiangqiGo/internal/types"
)

// Piece square tables for all piece types in Red's orientation -
// rank 9 is the Red back rank. For Black pieces the tables are read
// vertically flipped (rank 9-r).

// soldierPst rewards advancement and central files. The values grow
// as the soldier crosses the river and marches towards the enemy
// back rank.
var soldierPst = [RankLength][FileLength]Value{
	{26, 28, 30, 32, 32, 32, 30, 28, 26},
	{22, 24, 26, 28, 28, 28, 26, 24, 22},
	{18, 20, 22, 24, 24, 24, 22, 20, 18},
	{14, 16, 18, 20, 20, 20, 18, 16, 14},
	{10, 12, 14, 16, 18, 16, 14, 12, 10},
	{6, 8, 10, 12, 12, 12, 10, 8, 6},
	{2, 4, 6, 6, 6, 6, 6, 4, 2},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
}

// chariotPst rewards open central files and activity in the enemy camp.
var chariotPst = [RankLength][FileLength]Value{
	{14, 14, 12, 18, 16, 18, 12, 14, 14},
	{16, 20, 18, 24, 26, 24, 18, 20, 16},
	{12, 12, 12, 18, 18, 18, 12, 12, 12},
	{12, 18, 16, 22, 22, 22, 16, 18, 12},
	{12, 14, 12, 18, 18, 18, 12, 14, 12},
	{12, 16, 14, 20, 20, 20, 14, 16, 12},
	{6, 10, 8, 14, 14, 14, 8, 10, 6},
	{4, 8, 6, 14, 12, 14, 6, 8, 4},
	{8, 4, 8, 16, 8, 16, 8, 4, 8},
	{-2, 10, 6, 14, 12, 14, 6, 10, -2},
}

// horsePst rewards central and advanced squares - horses on the rim
// and on the back rank score poorly.
var horsePst = [RankLength][FileLength]Value{
	{4, 8, 16, 12, 4, 12, 16, 8, 4},
	{4, 10, 28, 16, 8, 16, 28, 10, 4},
	{12, 14, 16, 20, 18, 20, 16, 14, 12},
	{8, 24, 18, 24, 20, 24, 18, 24, 8},
	{6, 16, 14, 18, 16, 18, 14, 16, 6},
	{4, 12, 16, 14, 12, 14, 16, 12, 4},
	{2, 6, 8, 6, 10, 6, 8, 6, 2},
	{-2, 4, 4, 4, 4, 4, 4, 4, -2},
	{0, 2, 4, 4, -2, 4, 4, 2, 0},
	{0, -4, 0, 0, 0, 0, 0, -4, 0},
}

// cannonPst encodes the known cannon placements - the central rank
// positions and the classic attacking files.
var cannonPst = [RankLength][FileLength]Value{
	{6, 4, 0, -10, -12, -10, 0, 4, 6},
	{2, 2, 0, -4, -14, -4, 0, 2, 2},
	{2, 2, 0, -10, -8, -10, 0, 2, 2},
	{0, 0, -2, 4, 10, 4, -2, 0, 0},
	{0, 0, 0, 2, 8, 2, 0, 0, 0},
	{-2, 0, 4, 2, 6, 2, 4, 0, -2},
	{0, 0, 0, 2, 4, 2, 0, 0, 0},
	{4, 0, 8, 6, 10, 6, 8, 0, 4},
	{0, 2, 4, 6, 6, 6, 4, 2, 0},
	{0, 0, 2, 6, 6, 6, 2, 0, 0},
}

// advisorPst rewards the defensive posts next to the general.
var advisorPst = [RankLength][FileLength]Value{
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 20, 0, 20, 0, 0, 0},
	{0, 0, 0, 0, 23, 0, 0, 0, 0},
	{0, 0, 0, 20, 0, 20, 0, 0, 0},
}

// elephantPst rewards the palace-adjacent defensive squares.
var elephantPst = [RankLength][FileLength]Value{
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 20, 0, 0, 0, 20, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{18, 0, 0, 0, 23, 0, 0, 0, 18},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 20, 0, 0, 0, 20, 0, 0},
}

// pst is the lookup table from piece type to its piece square table.
// The General has no positional table - its placement is covered by
// the king safety term.
var pst = [PieceTypeLength]*[RankLength][FileLength]Value{
	PtNone:   nil,
	General:  nil,
	Advisor:  &advisorPst,
	Elephant: &elephantPst,
	Horse:    &horsePst,
	Chariot:  &chariotPst,
	Cannon:   &cannonPst,
	Soldier:  &soldierPst,
}

// posValue returns the piece square value for the given piece on the
// given square. Black pieces read the table vertically flipped.
func posValue(piece Piece, sq Square) Value {
	table := pst[piece.TypeOf()]
	if table == nil {
		return 0
	}
	rank := sq.RankOf()
	if piece.ColorOf() == Black {
		rank = 9 - rank
	}
	return table[rank][sq.FileOf()]
}
