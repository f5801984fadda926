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

// Package evaluator contains structures and functions to calculate
// the value of a Xiangqi position to be used in the engine search.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/hduc-dev/XiangqiGo/internal/config"
	myLogging "github.com/hduc-dev/XiangqiGo/internal/logging"
	"github.com/hduc-dev/XiangqiGo/internal/movegen"
	"github.com/hduc-dev/XiangqiGo/internal/position"
	. "github.com/hduc-dev/XiangqiGo/internal/types"
)

// endgameThreshold is the total piece count at and below which the
// endgame adjustments apply.
const endgameThreshold = 12

// Evaluator represents a data structure and functionality for
// evaluating Xiangqi positions by material, positional piece square
// values, mobility and king safety.
//  Create a new instance with NewEvaluator()
type Evaluator struct {
	log *logging.Logger
	mg  *movegen.Movegen
}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		log: myLogging.GetLog(),
		mg:  movegen.NewMoveGen(),
	}
}

// Evaluate calculates a static evaluation of the position and returns
// the value from the perspective of the side to move - a positive
// value means the position favors the player whose turn it is.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	// facing generals with nothing in between is an illegal position
	// the previous mover has produced - reject it with a value which
	// loses for the side which allowed it
	if p.IsFlyingGeneral() {
		return -ValueFlyingGeneral
	}

	// all terms below are computed from Red's perspective and the
	// total is flipped for Black at the very end
	var score Value

	// generals on the same file with screens in between still carry
	// a latent flying general threat
	redKing := p.KingSquare(Red)
	blackKing := p.KingSquare(Black)
	if redKing.FileOf() == blackKing.FileOf() {
		score -= 50
	}

	// material and positional values
	endgame := p.PieceCount() <= endgameThreshold
	for sq := Square(0); sq < SquareLength; sq++ {
		piece := p.GetPiece(sq)
		if piece == PieceNone {
			continue
		}
		pieceValue := piece.ValueOf()
		if config.Settings.Eval.UsePst {
			pieceValue += posValue(piece, sq)
		}
		// soldiers gain importance once the armies have thinned out
		if endgame && piece.TypeOf() == Soldier {
			pieceValue += 10
		}
		if piece.ColorOf() == Red {
			score = saturatingAdd(score, pieceValue)
		} else {
			score = saturatingAdd(score, -pieceValue)
		}
	}

	// mobility of the side to move - counts legal moves, so pinned
	// pieces and palace restrictions reduce the score
	if config.Settings.Eval.UseMobility {
		mobility := Value(e.mg.GenerateLegalMoves(p, movegen.GenAll).Len() *
			config.Settings.Eval.MobilityBonus)
		if p.NextPlayer() == Red {
			score = saturatingAdd(score, mobility)
		} else {
			score = saturatingAdd(score, -mobility)
		}
	}

	// king safety for both sides
	if config.Settings.Eval.UseKingSafety {
		score = saturatingAdd(score, e.kingSafety(p, Red))
		score = saturatingAdd(score, -e.kingSafety(p, Black))
	}

	if p.NextPlayer() == Black {
		return -score
	}
	return score
}

// kingSafety computes the safety term for the general of the given
// color - a bonus for each advisor or elephant on the palace files of
// the own camp and a penalty for each rank the general has been
// pushed out of its back rank.
func (e *Evaluator) kingSafety(p *position.Position, c Color) Value {
	var safety Value

	// count defenders on the palace files of the own camp
	firstRank := 0
	if c == Red {
		firstRank = 7
	}
	for rank := firstRank; rank < firstRank+3; rank++ {
		for file := 3; file <= 5; file++ {
			piece := p.GetPiece(SquareOf(rank, file))
			if piece == PieceNone || piece.ColorOf() != c {
				continue
			}
			if pt := piece.TypeOf(); pt == Advisor || pt == Elephant {
				safety += 15
			}
		}
	}

	// exposed general penalty - 10 per rank out of the back rank
	kingSquare := p.KingSquare(c)
	if kingSquare.IsValid() {
		if c == Red {
			safety -= Value(9-kingSquare.RankOf()) * 10
		} else {
			safety -= Value(kingSquare.RankOf()) * 10
		}
	}

	return safety
}

// saturatingAdd adds two values clamping the result to the valid
// value range instead of overflowing.
func saturatingAdd(a Value, b Value) Value {
	sum := a + b
	if sum > ValueMax {
		return ValueMax
	}
	if sum < ValueMin {
		return ValueMin
	}
	return sum
}
