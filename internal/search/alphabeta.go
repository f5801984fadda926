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
	. "github.com/hduc-dev/XiangqiGo/internal/config"
	"github.com/hduc-dev/XiangqiGo/internal/movegen"
	"github.com/hduc-dev/XiangqiGo/internal/moveslice"
	"github.com/hduc-dev/XiangqiGo/internal/position"
	. "github.com/hduc-dev/XiangqiGo/internal/types"
)

// rootSearch runs the alpha beta search over the prepared root moves
// for the given depth. Root moves are treated a little differently
// than inner nodes so this separate function supports readability.
//
// Every root move gets its search value attached for sorting before
// the next iteration. The best move of the iteration is stored in
// pv[0][0] - as iterations always start with the best move of the
// previous iteration pv[0][0] is always a fully searched move.
func (s *Search) rootSearch(p *position.Position, depth int, alpha Value, beta Value) Value {
	bestNodeValue := ValueNA
	var value Value

	// ///////////////////////////////////////////////////////
	// MOVE LOOP
	for i, m := range *s.rootMoves {

		next := *p
		if !next.MakeMove(m.From(), m.To()) {
			continue
		}
		s.nodesVisited++
		s.statistics.CurrentRootMoveIndex = i
		s.statistics.CurrentRootMove = m
		s.sendSearchUpdateToUci()

		value = -s.search(&next, depth-1, 1, -beta, -alpha)

		// we want at least one complete search at depth 1 - after
		// that we can stop any time as the best move so far is
		// stored in pv[0]
		if s.stopConditions() && depth > 1 {
			return bestNodeValue
		}

		// set the value into the root move to be able to sort the
		// root moves for the next iteration
		s.rootMoves.Set(i, m.SetValue(value))

		// for the first move this is always the case
		if value > bestNodeValue {
			bestNodeValue = value
			savePV(m, s.pv[1], s.pv[0])
			if value > alpha {
				alpha = value
			}
		}

		// with an aspiration window the root can fail high
		if alpha >= beta {
			break
		}
	}
	// MOVE LOOP
	// ///////////////////////////////////////////////////////

	return bestNodeValue
}

// search is the recursive negamax alpha beta search for all plies
// after the root. All major prunings are done here, leaf nodes are
// resolved by the quiescence search.
func (s *Search) search(p *position.Position, depth int, ply int, alpha Value, beta Value) Value {
	// when the deadline has passed every frame returns immediately
	// and the whole search unwinds cooperatively
	if s.stopConditions() {
		return ValueDraw
	}
	s.nodesVisited++

	// TT Lookup
	// Results of previous searches are stored in the TT. The stored
	// move is used for move ordering in any case. The stored value
	// can only be used when it was computed with at least the
	// remaining depth of this node. Exact values terminate the node
	// immediately, bounds narrow the search window.
	ttMove := MoveNone
	if Settings.Search.UseTT {
		if ttEntry := s.tt.Probe(p.ZobristKey()); ttEntry != nil {
			s.statistics.TTHit++
			ttMove = ttEntry.Move()
			if int(ttEntry.Depth()) >= depth && Settings.Search.UseTTValue {
				ttValue := valueFromTT(ttEntry.Value(), ply)
				if ttValue.IsValid() {
					cut := false
					switch ttEntry.Vtype() {
					case EXACT:
						cut = true
					case BETA:
						if ttValue > alpha {
							alpha = ttValue
						}
					case ALPHA:
						if ttValue < beta {
							beta = ttValue
						}
					}
					if cut || alpha >= beta {
						s.statistics.TTCuts++
						return ttValue
					}
				}
			}
		} else {
			s.statistics.TTMiss++
		}
	}

	// Check extension
	// When the side to move is in check the search is extended by
	// one ply so forced sequences are resolved before evaluation.
	hasCheck := movegen.IsInCheck(p, p.NextPlayer())
	if hasCheck && Settings.Search.UseCheckExt {
		s.statistics.CheckExtensions++
		depth++
	}

	// enter quiescence search when the remaining depth is exhausted
	// or the maximum ply has been reached
	if depth <= 0 || ply >= MaxDepth {
		return s.qsearch(p, ply, alpha, beta)
	}

	// Razoring
	// When the static eval plus a depth dependent margin still does
	// not reach alpha the position is most likely hopeless. A
	// quiescence search verifies the fail low before we give up on
	// the full subtree.
	staticEval := ValueNA
	if Settings.Search.UseRazoring && depth <= razorDepth && !hasCheck {
		staticEval = s.evaluate(p)
		if staticEval+razor[depth] <= alpha {
			qValue := s.qsearch(p, ply, alpha, alpha+1)
			if qValue <= alpha {
				s.statistics.Razorings++
				return qValue
			}
		}
	}

	// Internal Iterative Deepening
	// When no TT move is available at higher depths a reduced search
	// populates the TT with a move hint for this node first.
	// Must run before this node's move generation - the reduced
	// search shares the per-ply move list.
	if Settings.Search.UseIID && depth >= Settings.Search.IIDDepth && ttMove == MoveNone {
		s.statistics.IIDsearches++
		s.search(p, depth-2, ply, alpha, beta)
		if s.stopConditions() {
			return ValueDraw
		}
		if ttEntry := s.tt.GetEntry(p.ZobristKey()); ttEntry != nil && ttEntry.Move() != MoveNone {
			s.statistics.IIDmoves++
			ttMove = ttEntry.Move()
		}
	}

	// generate all legal moves for this node - no moves means the
	// game is over right here
	moves := s.mg[ply].GenerateLegalMoves(p, movegen.GenAll)
	if moves.Len() == 0 {
		var value Value
		if hasCheck {
			s.statistics.Checkmates++
			value = -ValueCheckMate + Value(ply)
		} else {
			s.statistics.Stalemates++
			value = ValueDraw
		}
		if Settings.Search.UseTT {
			s.storeTT(p, depth, ply, MoveNone, value, EXACT)
		}
		return value
	}

	if ttMove != MoveNone {
		s.statistics.TTMoveUsed++
	} else {
		s.statistics.NoTTMove++
	}

	// move ordering - TT move, captures by MVV-LVA and SEE, killers,
	// history counters
	s.sortMoves(p, moves, ply, ttMove)
	s.pv[ply].Clear()

	// prepare node search
	bestNodeValue := ValueNA
	bestNodeMove := MoveNone
	ttType := ALPHA
	var value Value
	movesSearched := 0

	// ///////////////////////////////////////////////////////
	// MOVE LOOP
	for _, m := range *moves {

		isCapture := p.GetPiece(m.To()) != PieceNone

		// skip losing captures after the first searched move
		if isCapture && movesSearched > 0 &&
			Settings.Search.UseSEE && see(p, m) < seeThreshold {
			s.statistics.SeePrunings++
			continue
		}

		// Futility pruning
		// A quiet move at low depth which can't bring the static
		// eval close to alpha is skipped without searching it.
		if Settings.Search.UseFP && depth <= razorDepth &&
			!hasCheck && !isCapture && movesSearched > 0 {
			if staticEval == ValueNA {
				staticEval = s.evaluate(p)
			}
			if staticEval+fp[depth] <= alpha {
				s.statistics.FpPrunings++
				continue
			}
		}

		next := *p
		if !next.MakeMove(m.From(), m.To()) {
			continue
		}

		// ///////////////////////////////////////////////////////
		// LMR
		// Late Move Reduction assumes that later quiet moves rarely
		// exceed alpha and searches them with reduced depth first.
		// When the reduced search surprises with a value above alpha
		// the move is re-searched at full depth.
		if Settings.Search.UseLmr && depth >= Settings.Search.LmrDepth &&
			movesSearched > lmrMinMovesSearched && !hasCheck && !isCapture {
			r := 1
			if s.history.Get(m) < 0 {
				r = 2
			}
			lmrDepth := depth - 1 - r
			if lmrDepth < 0 {
				lmrDepth = 0
			}
			value = -s.search(&next, lmrDepth, ply+1, -beta, -alpha)
			if value > alpha && !s.stopConditions() {
				s.statistics.LmrResearches++
				value = -s.search(&next, depth-1, ply+1, -beta, -alpha)
			}
		} else {
			value = -s.search(&next, depth-1, ply+1, -beta, -alpha)
		}
		// ///////////////////////////////////////////////////////

		movesSearched++

		if s.stopConditions() {
			return ValueDraw
		}

		// for the first searched move this is always the case
		if value > bestNodeValue {
			bestNodeValue = value
			bestNodeMove = m
			if value > alpha {
				savePV(m, s.pv[ply+1], s.pv[ply])
				// a value at or above beta means the opponent can
				// avoid this position - cut the rest of the node and
				// remember the quiet move as a killer
				if value >= beta {
					s.statistics.BetaCuts++
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					if !isCapture {
						if Settings.Search.UseKiller {
							s.storeKiller(ply, m)
						}
						if Settings.Search.UseHistory {
							s.history.Inc(m, 2*int64(depth)*int64(depth))
						}
					}
					ttType = BETA
					break
				}
				alpha = value
				ttType = EXACT
				if !isCapture {
					if Settings.Search.UseKiller {
						s.storeKiller(ply, m)
					}
					if Settings.Search.UseHistory {
						s.history.Inc(m, int64(depth)*int64(depth))
					}
				}
				continue
			}
		}

		// a quiet move which did not raise alpha loses history credit
		// - repeated offenders may become negative and get reduced
		// deeper by LMR
		if !isCapture && Settings.Search.UseHistory {
			s.history.Inc(m, -int64(depth))
		}

		// Late move pruning
		// After enough moves have been searched a clearly failing
		// move ends the node - the remaining moves are even later
		// in the ordering.
		if Settings.Search.UseLmp && movesSearched >= lmpMovesSearched &&
			value <= alpha-lmpMargin {
			s.statistics.LmpCuts++
			break
		}
	}
	// MOVE LOOP
	// ///////////////////////////////////////////////////////

	// store the search result for this node into the TT
	if Settings.Search.UseTT {
		s.storeTT(p, depth, ply, bestNodeMove, bestNodeValue, ttType)
	}

	return bestNodeValue
}

// qsearch is a bounded search over capturing moves only to counter
// the horizon effect of the depth limited main search. The static
// eval serves as a standing pat bound - the side to move is assumed
// to have at least one move which holds the current evaluation.
func (s *Search) qsearch(p *position.Position, ply int, alpha Value, beta Value) Value {
	if s.stopConditions() {
		return ValueDraw
	}
	s.nodesVisited++

	if s.statistics.CurrentExtraSearchDepth < ply {
		s.statistics.CurrentExtraSearchDepth = ply
	}

	standPat := s.evaluate(p)
	if !Settings.Search.UseQuiescence || ply >= MaxDepth {
		return standPat
	}

	if Settings.Search.UseQSStandpat {
		if standPat >= beta {
			s.statistics.StandpatCuts++
			return beta
		}
		// Delta pruning - when even the stand pat is hopelessly below
		// alpha no capture is going to repair the position
		if Settings.Search.UseDelta && standPat < alpha-deltaMargin {
			s.statistics.DeltaPrunings++
			return alpha
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	// only captures are searched - ordered by MVV-LVA
	moves := s.mg[ply].GenerateLegalMoves(p, movegen.GenNonQuiet)
	s.sortCaptures(p, moves)

	// ///////////////////////////////////////////////////////
	// MOVE LOOP
	for _, m := range *moves {
		next := *p
		if !next.MakeMove(m.From(), m.To()) {
			continue
		}

		value := -s.qsearch(&next, ply+1, -beta, -alpha)

		if s.stopConditions() {
			return ValueDraw
		}

		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}
	// MOVE LOOP
	// ///////////////////////////////////////////////////////

	return alpha
}

// evaluate calls the static evaluation on the position.
func (s *Search) evaluate(p *position.Position) Value {
	s.statistics.Evaluations++
	return s.eval.Evaluate(p)
}

// savePV adds the given move as first move to a cleared dest and then
// appends all src moves to dest.
func savePV(move Move, src *moveslice.MoveSlice, dest *moveslice.MoveSlice) {
	dest.Clear()
	dest.PushBack(move)
	*dest = append(*dest, *src...)
}

// storeTT stores a position into the TT. The entry encodes the
// depth in 7 bits so extended depths are capped.
func (s *Search) storeTT(p *position.Position, depth int, ply int, move Move, value Value, valueType ValueType) {
	if depth > 127 {
		depth = 127
	}
	s.tt.Put(p.ZobristKey(), move, int8(depth), valueToTT(value, ply), valueType)
}

// correct the value for mate distance when storing to TT.
// Mate values are stored relative to the node so they stay valid
// when the position is reached at a different ply.
func valueToTT(value Value, ply int) Value {
	if value.IsCheckMateValue() {
		if value > 0 {
			return value + Value(ply)
		}
		return value - Value(ply)
	}
	return value
}

// correct the value for mate distance when reading from TT.
func valueFromTT(value Value, ply int) Value {
	if value.IsCheckMateValue() {
		if value > 0 {
			return value - Value(ply)
		}
		return value + Value(ply)
	}
	return value
}
