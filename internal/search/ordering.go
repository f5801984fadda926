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

package search

import (
	"github.com/hduc-dev/XiangqiGo/internal/config"
	"github.com/hduc-dev/XiangqiGo/internal/moveslice"
	"github.com/hduc-dev/XiangqiGo/internal/position"
	. "github.com/hduc-dev/XiangqiGo/internal/types"
)

// Move ordering scores. The TT move is searched first, then captures
// by MVV-LVA and SEE, then the killer moves of the ply and finally
// quiet moves by their history counters.
const (
	ttMoveScore  = int64(20_000)
	killer1Score = int64(9_000)
	killer2Score = int64(8_000)
)

// mvvLva is the "most valuable victim - least valuable aggressor"
// capture score table indexed by victim and attacker piece type.
var mvvLva [PieceTypeLength][PieceTypeLength]int64

func init() {
	// larger victims rank higher, smaller attackers break the tie
	victimScore := [PieceTypeLength]int64{0, 500, 300, 250, 350, 450, 400, 200}
	attackerRank := [PieceTypeLength]int64{0, 7, 3, 2, 4, 6, 5, 1}
	for victim := PtNone; victim < PieceTypeLength; victim++ {
		for attacker := PtNone; attacker < PieceTypeLength; attacker++ {
			mvvLva[victim][attacker] = victimScore[victim] - attackerRank[attacker]
		}
	}
}

// sortMoves scores all moves of the list and sorts them descending.
// The score is encoded into the sort value bits of each move.
func (s *Search) sortMoves(p *position.Position, moves *moveslice.MoveSlice, ply int, ttMove Move) {
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		score := int64(0)

		if config.Settings.Search.UseTTMove && ttMove != MoveNone && m.MoveOf() == ttMove.MoveOf() {
			score += ttMoveScore
		}

		victim := p.GetPiece(m.To())
		if victim != PieceNone {
			attacker := p.GetPiece(m.From())
			score += mvvLva[victim.TypeOf()][attacker.TypeOf()]
			if config.Settings.Search.UseSEE {
				score += int64(see(p, m))
			}
		} else if config.Settings.Search.UseKiller {
			switch m.MoveOf() {
			case s.killers[ply][0]:
				score += killer1Score
			case s.killers[ply][1]:
				score += killer2Score
			}
		}

		if config.Settings.Search.UseHistory {
			score += s.history.Get(m)
		}

		moves.Set(i, m.SetValue(clampToValue(score)))
	}
	moves.Sort()
}

// sortCaptures scores capture moves by MVV-LVA and SEE only. Used in
// quiescence where killers and history do not apply.
func (s *Search) sortCaptures(p *position.Position, moves *moveslice.MoveSlice) {
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		victim := p.GetPiece(m.To())
		if victim == PieceNone {
			continue
		}
		attacker := p.GetPiece(m.From())
		score := mvvLva[victim.TypeOf()][attacker.TypeOf()]
		if config.Settings.Search.UseSEE {
			score += int64(see(p, m))
		}
		moves.Set(i, m.SetValue(clampToValue(score)))
	}
	moves.Sort()
}

// storeKiller installs a quiet cutoff move into the killer slots of
// the ply, shifting the previous first killer to the second slot.
func (s *Search) storeKiller(ply int, m Move) {
	move := m.MoveOf()
	if s.killers[ply][0] != move {
		s.killers[ply][1] = s.killers[ply][0]
		s.killers[ply][0] = move
	}
}

// clampToValue clamps a move ordering score to the range of the
// sort value encoded in a move. History counters are unbounded so
// extreme scores are cut off instead of wrapping.
func clampToValue(score int64) Value {
	const limit = int64(1) << 30
	if score > limit {
		return Value(limit)
	}
	if score < -limit {
		return Value(-limit)
	}
	return Value(score)
}
