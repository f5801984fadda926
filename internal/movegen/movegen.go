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

// Package movegen contains functionality to create moves on a
// Xiangqi position. It implements generation of pseudo legal and
// legal moves and the attack tests needed for check detection.
package movegen

import (
	"github.com/hduc-dev/XiangqiGo/internal/moveslice"
	"github.com/hduc-dev/XiangqiGo/internal/position"
	. "github.com/hduc-dev/XiangqiGo/internal/types"
)

// GenMode generation modes for the move generator.
type GenMode int

// GenMode generation modes. GenNonQuiet are captures, GenQuiet all
// other moves.
const (
	GenZero     GenMode = 0b00
	GenNonQuiet GenMode = 0b01
	GenQuiet    GenMode = 0b10
	GenAll      GenMode = 0b11
)

// the four orthogonal and four diagonal step offsets as rank/file deltas.
var (
	orthogonalSteps = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalSteps   = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// Movegen data structure. Create a new move generator via
//  movegen.NewMoveGen()
// Each instance holds pre-allocated move lists which are reused
// between calls. The returned move lists are owned by the generator
// and are only valid until the next generation call.
type Movegen struct {
	pseudoLegalMoves *moveslice.MoveSlice
	legalMoves       *moveslice.MoveSlice
}

// NewMoveGen creates a new instance of a move generator.
func NewMoveGen() *Movegen {
	return &Movegen{
		pseudoLegalMoves: moveslice.NewMoveSlice(128),
		legalMoves:       moveslice.NewMoveSlice(128),
	}
}

// GeneratePseudoLegalMoves generates the pseudo legal moves for the
// next player. Piece geometry, blockers, palace and river rules are
// enforced but moves which leave the own general in check or lead to
// facing generals are not filtered out.
func (mg *Movegen) GeneratePseudoLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.pseudoLegalMoves.Clear()
	us := p.NextPlayer()
	for sq := Square(0); sq < SquareLength; sq++ {
		piece := p.GetPiece(sq)
		if piece == PieceNone || piece.ColorOf() != us {
			continue
		}
		switch piece.TypeOf() {
		case General:
			mg.genGeneralMoves(p, sq, us, mode)
		case Advisor:
			mg.genAdvisorMoves(p, sq, us, mode)
		case Elephant:
			mg.genElephantMoves(p, sq, us, mode)
		case Horse:
			mg.genHorseMoves(p, sq, us, mode)
		case Chariot:
			mg.genChariotMoves(p, sq, us, mode)
		case Cannon:
			mg.genCannonMoves(p, sq, us, mode)
		case Soldier:
			mg.genSoldierMoves(p, sq, us, mode)
		}
	}
	return mg.pseudoLegalMoves
}

// GenerateLegalMoves generates legal moves for the next player.
// Uses GeneratePseudoLegalMoves and filters out all moves which
// leave the own general in check or produce facing generals.
func (mg *Movegen) GenerateLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.legalMoves.Clear()
	us := p.NextPlayer()
	pseudo := mg.GeneratePseudoLegalMoves(p, mode)
	for _, m := range *pseudo {
		next := *p
		if !next.MakeMove(m.From(), m.To()) {
			continue
		}
		if IsInCheck(&next, us) || next.IsFlyingGeneral() {
			continue
		}
		mg.legalMoves.PushBack(m)
	}
	return mg.legalMoves
}

// HasLegalMove determines if the next player has at least one legal
// move in the position.
func (mg *Movegen) HasLegalMove(p *position.Position) bool {
	return mg.GenerateLegalMoves(p, GenAll).Len() > 0
}

// GetMoveFromUci generates all legal moves and matches the given
// wire format move string against them. If there is a match the
// actual move is returned. Otherwise MoveNone is returned.
// As this uses string parsing and full move generation it is not
// very efficient. Use only when performance is not critical.
func (mg *Movegen) GetMoveFromUci(p *position.Position, uciMove string) Move {
	if len(uciMove) != 4 {
		return MoveNone
	}
	from := SquareFromString(uciMove[0:2])
	to := SquareFromString(uciMove[2:4])
	if from == SqNone || to == SqNone {
		return MoveNone
	}
	move := CreateMove(from, to)
	for _, m := range *mg.GenerateLegalMoves(p, GenAll) {
		if m.MoveOf() == move {
			return move
		}
	}
	return MoveNone
}

// ValidateMove validates if a move is a legal move on the given position.
func (mg *Movegen) ValidateMove(p *position.Position, move Move) bool {
	if move == MoveNone {
		return false
	}
	return mg.GenerateLegalMoves(p, GenAll).Contains(move)
}

// IsInCheck tests if the general of the given color is attacked by
// any enemy piece - which is the case exactly when at least one
// pseudo legal enemy move lands on the general's square.
func IsInCheck(p *position.Position, c Color) bool {
	kingSquare := p.KingSquare(c)
	if !kingSquare.IsValid() {
		return false
	}
	return IsAttacked(p, kingSquare, c.Flip())
}

// IsAttacked determines if the given square is attacked by any piece
// of the given color. The flying general rule is not considered here
// - it is checked separately via Position.IsFlyingGeneral.
func IsAttacked(p *position.Position, sq Square, by Color) bool {
	rank := sq.RankOf()
	file := sq.FileOf()

	// orthogonal rays cover chariot, cannon (with screen), the
	// adjacent general and soldiers
	for _, d := range orthogonalSteps {
		screenSeen := false
		for dist := 1; ; dist++ {
			target := SquareFromCoords(rank+d[0]*dist, file+d[1]*dist)
			if target == SqNone {
				break
			}
			piece := p.GetPiece(target)
			if piece == PieceNone {
				continue
			}
			if !screenSeen {
				if piece.ColorOf() == by {
					switch piece.TypeOf() {
					case Chariot:
						return true
					case General:
						if dist == 1 && sq.InPalace(by) {
							return true
						}
					case Soldier:
						if dist == 1 && soldierAttacks(target, sq, by) {
							return true
						}
					}
				}
				// first piece on the ray becomes the cannon screen
				screenSeen = true
				continue
			}
			// second piece on the ray - only a cannon hits through the screen
			if piece.ColorOf() == by && piece.TypeOf() == Cannon {
				return true
			}
			break
		}
	}

	// horse attacks - for each horse offset the blocking leg lies
	// next to the horse, not next to the target square
	for _, d := range [8][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}} {
		horseSq := SquareFromCoords(rank+d[0], file+d[1])
		if horseSq == SqNone {
			continue
		}
		piece := p.GetPiece(horseSq)
		if piece == PieceNone || piece.ColorOf() != by || piece.TypeOf() != Horse {
			continue
		}
		var leg Square
		if d[0] == 2 || d[0] == -2 {
			leg = SquareFromCoords(rank+d[0]/2, file+d[1])
		} else {
			leg = SquareFromCoords(rank+d[0], file+d[1]/2)
		}
		if leg != SqNone && p.GetPiece(leg) == PieceNone {
			return true
		}
	}

	// elephant attacks - only relevant when the target square is on
	// the attacker's own side of the river
	if sq.OnOwnSide(by) {
		for _, d := range diagonalSteps {
			elephantSq := SquareFromCoords(rank+2*d[0], file+2*d[1])
			if elephantSq == SqNone {
				continue
			}
			piece := p.GetPiece(elephantSq)
			if piece == PieceNone || piece.ColorOf() != by || piece.TypeOf() != Elephant {
				continue
			}
			eye := SquareOf(rank+d[0], file+d[1])
			if p.GetPiece(eye) == PieceNone {
				return true
			}
		}
	}

	// advisor attacks - only relevant within the attacker's palace
	if sq.InPalace(by) {
		for _, d := range diagonalSteps {
			advisorSq := SquareFromCoords(rank+d[0], file+d[1])
			if advisorSq == SqNone {
				continue
			}
			piece := p.GetPiece(advisorSq)
			if piece != PieceNone && piece.ColorOf() == by && piece.TypeOf() == Advisor {
				return true
			}
		}
	}

	return false
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

// soldierAttacks tests if a soldier of the given color standing on
// from attacks the target square. Soldiers capture the way they move
// - one step forward, and one step sideways after crossing the river.
func soldierAttacks(from Square, target Square, c Color) bool {
	if SquareFromCoords(from.RankOf()+c.MoveDirection(), from.FileOf()) == target {
		return true
	}
	// sideways only after crossing the river
	if !from.OnOwnSide(c) && from.RankOf() == target.RankOf() {
		diff := from.FileOf() - target.FileOf()
		return diff == 1 || diff == -1
	}
	return false
}

// addMove appends the move to the pseudo legal move list if it
// matches the generation mode. The destination has already been
// verified to be empty or to hold an enemy piece.
func (mg *Movegen) addMove(p *position.Position, from Square, to Square, mode GenMode) {
	if p.GetPiece(to) == PieceNone {
		if mode&GenQuiet != 0 {
			mg.pseudoLegalMoves.PushBack(CreateMove(from, to))
		}
	} else if mode&GenNonQuiet != 0 {
		mg.pseudoLegalMoves.PushBack(CreateMove(from, to))
	}
}

// genGeneralMoves - one step orthogonal, confined to the own palace.
func (mg *Movegen) genGeneralMoves(p *position.Position, from Square, us Color, mode GenMode) {
	for _, d := range orthogonalSteps {
		to := SquareFromCoords(from.RankOf()+d[0], from.FileOf()+d[1])
		if to == SqNone || !to.InPalace(us) {
			continue
		}
		if target := p.GetPiece(to); target != PieceNone && target.ColorOf() == us {
			continue
		}
		mg.addMove(p, from, to, mode)
	}
}

// genAdvisorMoves - one step diagonal, confined to the own palace.
func (mg *Movegen) genAdvisorMoves(p *position.Position, from Square, us Color, mode GenMode) {
	for _, d := range diagonalSteps {
		to := SquareFromCoords(from.RankOf()+d[0], from.FileOf()+d[1])
		if to == SqNone || !to.InPalace(us) {
			continue
		}
		if target := p.GetPiece(to); target != PieceNone && target.ColorOf() == us {
			continue
		}
		mg.addMove(p, from, to, mode)
	}
}

// genElephantMoves - two steps diagonal, never across the river and
// only when the elephant's eye (the midpoint) is empty.
func (mg *Movegen) genElephantMoves(p *position.Position, from Square, us Color, mode GenMode) {
	for _, d := range diagonalSteps {
		to := SquareFromCoords(from.RankOf()+2*d[0], from.FileOf()+2*d[1])
		if to == SqNone || !to.OnOwnSide(us) {
			continue
		}
		eye := SquareOf(from.RankOf()+d[0], from.FileOf()+d[1])
		if p.GetPiece(eye) != PieceNone {
			continue
		}
		if target := p.GetPiece(to); target != PieceNone && target.ColorOf() == us {
			continue
		}
		mg.addMove(p, from, to, mode)
	}
}

// genHorseMoves - one step orthogonal followed by one step diagonal
// outward. When the orthogonal leg square is occupied the horse is
// hobbled in this direction.
func (mg *Movegen) genHorseMoves(p *position.Position, from Square, us Color, mode GenMode) {
	rank := from.RankOf()
	file := from.FileOf()
	for _, d := range orthogonalSteps {
		leg := SquareFromCoords(rank+d[0], file+d[1])
		if leg == SqNone || p.GetPiece(leg) != PieceNone {
			continue
		}
		var targets [2]Square
		if d[0] != 0 {
			targets[0] = SquareFromCoords(rank+2*d[0], file+1)
			targets[1] = SquareFromCoords(rank+2*d[0], file-1)
		} else {
			targets[0] = SquareFromCoords(rank+1, file+2*d[1])
			targets[1] = SquareFromCoords(rank-1, file+2*d[1])
		}
		for _, to := range targets {
			if to == SqNone {
				continue
			}
			if target := p.GetPiece(to); target != PieceNone && target.ColorOf() == us {
				continue
			}
			mg.addMove(p, from, to, mode)
		}
	}
}

// genChariotMoves - slides any number of empty squares orthogonally
// and may capture the first enemy piece encountered.
func (mg *Movegen) genChariotMoves(p *position.Position, from Square, us Color, mode GenMode) {
	rank := from.RankOf()
	file := from.FileOf()
	for _, d := range orthogonalSteps {
		for dist := 1; ; dist++ {
			to := SquareFromCoords(rank+d[0]*dist, file+d[1]*dist)
			if to == SqNone {
				break
			}
			target := p.GetPiece(to)
			if target == PieceNone {
				mg.addMove(p, from, to, mode)
				continue
			}
			if target.ColorOf() != us {
				mg.addMove(p, from, to, mode)
			}
			break
		}
	}
}

// genCannonMoves - moves like a chariot on empty squares. To capture
// it needs to jump exactly one piece of either color (the screen) and
// takes the first enemy piece behind it.
func (mg *Movegen) genCannonMoves(p *position.Position, from Square, us Color, mode GenMode) {
	rank := from.RankOf()
	file := from.FileOf()
	for _, d := range orthogonalSteps {
		screenSeen := false
		for dist := 1; ; dist++ {
			to := SquareFromCoords(rank+d[0]*dist, file+d[1]*dist)
			if to == SqNone {
				break
			}
			target := p.GetPiece(to)
			if !screenSeen {
				if target == PieceNone {
					mg.addMove(p, from, to, mode)
					continue
				}
				screenSeen = true
				continue
			}
			if target == PieceNone {
				continue
			}
			if target.ColorOf() != us {
				mg.addMove(p, from, to, mode)
			}
			break
		}
	}
}

// genSoldierMoves - one step forward, and additionally one step
// sideways after crossing the river. Soldiers never move backwards.
func (mg *Movegen) genSoldierMoves(p *position.Position, from Square, us Color, mode GenMode) {
	rank := from.RankOf()
	file := from.FileOf()

	targets := [3]Square{SquareFromCoords(rank+us.MoveDirection(), file), SqNone, SqNone}
	if !from.OnOwnSide(us) {
		targets[1] = SquareFromCoords(rank, file-1)
		targets[2] = SquareFromCoords(rank, file+1)
	}

	for _, to := range targets {
		if to == SqNone {
			continue
		}
		if target := p.GetPiece(to); target != PieceNone && target.ColorOf() == us {
			continue
		}
		mg.addMove(p, from, to, mode)
	}
}
