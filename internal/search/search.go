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

// Package search implements the search functionality of the engine -
// iterative deepening with aspiration windows around a negamax alpha
// beta search with transposition table, quiescence search, move
// ordering heuristics and several forward pruning techniques.
package search

import (
	"context"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hduc-dev/XiangqiGo/internal/config"
	"github.com/hduc-dev/XiangqiGo/internal/evaluator"
	"github.com/hduc-dev/XiangqiGo/internal/history"
	myLogging "github.com/hduc-dev/XiangqiGo/internal/logging"
	"github.com/hduc-dev/XiangqiGo/internal/movegen"
	"github.com/hduc-dev/XiangqiGo/internal/moveslice"
	"github.com/hduc-dev/XiangqiGo/internal/position"
	"github.com/hduc-dev/XiangqiGo/internal/transpositiontable"
	. "github.com/hduc-dev/XiangqiGo/internal/types"
	"github.com/hduc-dev/XiangqiGo/internal/uciInterface"
	"github.com/hduc-dev/XiangqiGo/internal/util"
)

var out = message.NewPrinter(language.German)

// Search represents the data structure for the engine search.
//  Create a new instance with NewSearch()
type Search struct {
	log *logging.Logger

	uciHandlerPtr uciInterface.UciDriver
	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	tt   *transpositiontable.TtTable
	eval *evaluator.Evaluator

	// history heuristics and killer moves
	history *history.History
	killers [MaxDepth + 1][2]Move

	// previous search
	lastSearchResult *Result

	// current search state
	stopFlag          bool
	startTime         time.Time
	hasResult         bool
	currentPosition   *position.Position
	searchLimits      *Limits
	timeLimit         time.Duration
	extraTime         time.Duration
	nodesVisited      uint64
	mg                []*movegen.Movegen
	pv                []*moveslice.MoveSlice
	rootMoves         *moveslice.MoveSlice
	lastUciUpdateTime time.Time
	statistics        Statistics
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// NewSearch creates a new Search instance without a uci handler -
// until one is set with SetUciHandler() all output goes to the log.
func NewSearch() *Search {
	return &Search{
		log:           myLogging.GetLog(),
		initSemaphore: semaphore.NewWeighted(int64(1)),
		isRunning:     semaphore.NewWeighted(int64(1)),
		eval:          evaluator.NewEvaluator(),
		history:       history.NewHistory(),
	}
}

// NewGame stops any running search and resets the search state to be
// ready for a different game. All caches are cleared.
func (s *Search) NewGame() {
	s.StopSearch()
	if s.tt != nil {
		s.tt.Clear()
	}
	s.history = history.NewHistory()
	s.killers = [MaxDepth + 1][2]Move{}
}

// StartSearch starts the search on the given position with the given
// search limits. The search runs in a separate goroutine - it can be
// stopped with StopSearch() and observed with IsSearching().
// This takes a copy of the position and the search limits.
func (s *Search) StartSearch(p position.Position, sl Limits) {
	// acquire init phase lock
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	// set position and searchLimits into the current search state
	s.currentPosition = &p
	s.searchLimits = &sl
	// run search
	go s.run(&p, &sl)
	// wait until the search is running and the initialization
	// is done before returning to the caller
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch stops a running search as quickly as possible. The
// search stops gracefully and a result will be sent to the handler.
// This waits for the search to be stopped before returning.
func (s *Search) StopSearch() {
	s.stopFlag = true
	s.WaitWhileSearching()
}

// IsSearching checks if the search is running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until a running search has stopped.
func (s *Search) WaitWhileSearching() {
	// get and release semaphore. Will block if search is running
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// FindBestMove searches the given position with a fixed time budget
// per move and blocks until the search has finished. Returns the
// best move of the last fully completed iteration or MoveNone when
// no iteration completed or no legal move exists.
func (s *Search) FindBestMove(p position.Position, moveTime time.Duration) Move {
	s.StartSearch(p, Limits{TimeControl: true, MoveTime: moveTime})
	s.WaitWhileSearching()
	if s.hasResult {
		return s.lastSearchResult.BestMove
	}
	return MoveNone
}

// SetUciHandler sets the UCI handler to communicate with the UCI
// user interface. If not set output will be sent to Stdout.
func (s *Search) SetUciHandler(uciHandler uciInterface.UciDriver) {
	s.uciHandlerPtr = uciHandler
}

// IsReady initializes the search and signals the uciHandler that
// the search is ready to receive commands.
func (s *Search) IsReady() {
	s.initialize()
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendReadyOk()
	} else {
		s.log.Debug("uci >> readyok")
	}
}

// ClearHash clears the transposition table.
// Is ignored with a warning while searching.
func (s *Search) ClearHash() {
	if s.IsSearching() {
		msg := "Can't clear hash while searching."
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return
	}
	if s.tt != nil {
		s.tt.Clear()
		s.sendInfoStringToUci("Hash cleared")
	}
}

// ResizeCache resizes and clears the transposition table.
// Is ignored with a warning while searching.
func (s *Search) ResizeCache() {
	if s.IsSearching() {
		msg := "Can't resize hash while searching."
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return
	}
	// just remove the tt pointer and re-initialize
	s.tt = nil
	s.initialize()
	// good point in time to let the garbage collector do its work
	s.log.Debug(util.GcWithStats())
	if s.tt != nil {
		s.sendInfoStringToUci(out.Sprintf("Hash resized: %s", s.tt.String()))
	}
}

// LastSearchResult returns a copy of the last search result.
func (s *Search) LastSearchResult() Result {
	return *s.lastSearchResult
}

// NodesVisited returns the number of visited nodes in the last search.
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// Statistics returns a pointer to the search statistics of the last search.
func (s *Search) Statistics() *Statistics {
	return &s.statistics
}

// //////////////////////////////////////////////////////
// // Private
// //////////////////////////////////////////////////////

// run is called by StartSearch() in a separate goroutine. It runs
// the actual search until a search limit is reached or the search
// has been stopped by StopSearch().
func (s *Search) run(p *position.Position, sl *Limits) {
	// check if there is already a search running and if not grab
	// the isRunning semaphore
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("Search already running")
		s.initSemaphore.Release(1)
		return
	}
	// release the running semaphore after the search has ended
	defer func() {
		s.isRunning.Release(1)
	}()

	// start search timer
	s.startTime = time.Now()

	s.log.Infof("Searching: %s", p.StringFen())

	// init new search run
	s.stopFlag = false
	s.hasResult = false
	s.timeLimit = 0
	s.extraTime = 0
	s.nodesVisited = 0
	s.killers = [MaxDepth + 1][2]Move{}
	s.statistics = Statistics{}
	s.lastUciUpdateTime = s.startTime
	s.initialize()

	// setup and report search limits
	s.setupSearchLimits(p, sl)

	// when the search is time controlled start the timer
	if s.searchLimits.TimeControl {
		s.startTimer()
	}

	// age TT entries
	if s.tt != nil {
		s.log.Debugf("Transposition Table: %s", s.tt.String())
		s.tt.AgeEntries()
	}

	// initialize ply based data
	s.mg = make([]*movegen.Movegen, 0, MaxDepth+1)
	s.pv = make([]*moveslice.MoveSlice, 0, MaxDepth+1)
	for i := 0; i <= MaxDepth; i++ {
		s.mg = append(s.mg, movegen.NewMoveGen())
		s.pv = append(s.pv, moveslice.NewMoveSlice(MaxDepth+1))
	}

	// release the init phase lock to signal the calling goroutine
	// waiting in StartSearch() to return
	s.initSemaphore.Release(1)

	// start the actual search with iterative deepening
	searchResult := s.iterativeDeepening(p)

	// update search result with search time and pv
	searchResult.SearchTime = time.Since(s.startTime)
	searchResult.Pv = *s.pv[0].Clone()

	// print stats to log
	s.log.Info(out.Sprintf("Search finished after %s", searchResult.SearchTime))
	s.log.Info(out.Sprintf("Search depth was %d(%d) with %d nodes visited. NPS = %d nps",
		s.statistics.CurrentSearchDepth, s.statistics.CurrentExtraSearchDepth, s.nodesVisited,
		util.Nps(s.nodesVisited, searchResult.SearchTime)))
	s.log.Debugf("Search stats: %s", s.statistics.String())

	// print result to log
	s.log.Infof("Search result: %s", searchResult.String())

	// save result until overwritten by the next search
	s.lastSearchResult = searchResult
	s.hasResult = true

	// make sure the timer stops as it could still be running when
	// the search finished without any stop signal/limit
	s.stopFlag = true

	// we send the result in any case even if the search has been
	// stopped - the best move is the best move so far
	s.sendResult(searchResult)
}

// iterativeDeepening starts with a one ply search and repeatedly
// increments the search depth until the time budget is exhausted or
// the maximum depth has been reached. The best move of the last
// fully completed iteration is the result - root moves are sorted
// before each iteration so even a partial iteration starts with the
// best move known so far.
func (s *Search) iterativeDeepening(p *position.Position) *Result {
	// generate all legal root moves
	s.rootMoves = s.mg[0].GenerateLegalMoves(p, movegen.GenAll).Clone()

	// no legal moves - mate or stalemate
	if s.rootMoves.Len() == 0 {
		if movegen.IsInCheck(p, p.NextPlayer()) {
			s.statistics.Checkmates++
			msg := "Search called on a mate position"
			s.sendInfoStringToUci(msg)
			s.log.Warning(msg)
			return &Result{BestValue: -ValueCheckMate}
		}
		s.statistics.Stalemates++
		msg := "Search called on a stalemate position"
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return &Result{BestValue: ValueDraw}
	}

	// prepare max depth from search limits
	maxDepth := MaxDepth
	if s.searchLimits.Depth > 0 && s.searchLimits.Depth < MaxDepth {
		maxDepth = s.searchLimits.Depth
	}

	bestValue := ValueNA

	// ###########################################
	// ### BEGIN Iterative Deepening
	for iterationDepth := 1; iterationDepth <= maxDepth; iterationDepth++ {
		iterationStartTime := time.Now()

		s.statistics.CurrentIterationDepth = iterationDepth
		s.statistics.CurrentSearchDepth = iterationDepth
		if s.statistics.CurrentExtraSearchDepth < iterationDepth {
			s.statistics.CurrentExtraSearchDepth = iterationDepth
		}

		// the first iterations run with the full window - later
		// iterations use an aspiration window around the last score
		if config.Settings.Search.UseAspiration &&
			iterationDepth > config.Settings.Search.AspirationDepth &&
			bestValue.IsValid() {
			bestValue = s.aspirationSearch(p, iterationDepth, bestValue)
		} else {
			bestValue = s.rootSearch(p, iterationDepth, ValueMin, ValueMax)
		}

		if s.stopConditions() {
			break
		}

		// sort root moves for the next iteration - the best move of
		// this iteration will be searched first in the next one
		s.rootMoves.Sort()
		s.statistics.CurrentBestRootMove = s.pv[0].Front()
		s.statistics.CurrentBestRootMoveValue = bestValue
		s.sendIterationEndInfoToUci()

		// a mate bound score can't be improved by searching deeper
		if bestValue.IsValid() &&
			(bestValue > ValueCheckMateThreshold || bestValue < -ValueCheckMateThreshold) {
			break
		}

		// early exit when another iteration would likely exceed the
		// time budget anyway
		if s.searchLimits.TimeControl && !s.searchLimits.Infinite {
			totalBudget := s.timeLimit + s.extraTime
			elapsed := time.Since(s.startTime)
			if time.Since(iterationStartTime) > (totalBudget-elapsed)/2 {
				s.log.Debug("Last iteration consumed more than half of the remaining budget")
				break
			}
			if elapsed > 3*totalBudget/4 {
				s.log.Debug("Three quarters of the time budget consumed")
				break
			}
		}
	}
	// ### END OF Iterative Deepening
	// ###########################################

	// best move is pv[0][0] - guaranteed to be from a fully
	// completed iteration
	result := &Result{
		BestMove:    MoveNone,
		BestValue:   bestValue,
		PonderMove:  MoveNone,
		SearchDepth: s.statistics.CurrentIterationDepth,
		ExtraDepth:  s.statistics.CurrentExtraSearchDepth,
	}
	if s.pv[0].Len() > 0 {
		result.BestMove = s.pv[0].Front().MoveOf()
		result.BestValue = s.pv[0].Front().ValueOf()
	}

	// see if we have a move we could ponder on
	if s.pv[0].Len() > 1 {
		result.PonderMove = s.pv[0].At(1).MoveOf()
	}

	return result
}

// aspirationSearch searches with a narrow window around the value of
// the previous iteration. A result outside the window is re-searched
// with the failing bound pushed outward by the doubled window. The
// number of re-searches is bounded - after that a full window search
// settles the iteration.
func (s *Search) aspirationSearch(p *position.Position, depth int, prevValue Value) Value {
	window := Value(config.Settings.Search.AspirationWindow)
	alpha := maxValue(prevValue-window, ValueMin)
	beta := minValue(prevValue+window, ValueMax)

	for researches := 0; researches < maxAspirationResearches; researches++ {
		value := s.rootSearch(p, depth, alpha, beta)
		if s.stopConditions() {
			return value
		}
		switch {
		case value <= alpha: // fail low
			s.statistics.AspirationResearches++
			s.sendAspirationResearchInfo(value, "upperbound")
			window *= 2
			alpha = maxValue(value-window, ValueMin)
		case value >= beta: // fail high
			s.statistics.AspirationResearches++
			s.sendAspirationResearchInfo(value, "lowerbound")
			window *= 2
			beta = minValue(value+window, ValueMax)
		default:
			return value
		}
	}

	// the result still oscillates outside the window - settle with a
	// full window search
	return s.rootSearch(p, depth, ValueMin, ValueMax)
}

// initialize sets up the transposition table and other potentially
// time consuming setup tasks. Can be called several times without
// doing the initialization again.
func (s *Search) initialize() {
	if config.Settings.Search.UseTT {
		if s.tt == nil {
			sizeInMByte := config.Settings.Search.TTSize
			if sizeInMByte == 0 {
				sizeInMByte = 64
			}
			s.tt = transpositiontable.NewTtTable(sizeInMByte)
		}
	} else {
		s.log.Info("Transposition Table is disabled in configuration")
		if s.tt == nil {
			s.tt = transpositiontable.NewTtTable(0)
		}
	}
}

// stopConditions checks if the stopFlag is set or if the visited
// nodes have reached a maximum set in the search limits. Once true
// it stays true for the rest of the search invocation.
func (s *Search) stopConditions() bool {
	if s.stopFlag {
		return true
	}
	if s.searchLimits.Nodes > 0 && s.nodesVisited >= s.searchLimits.Nodes {
		s.stopFlag = true
	}
	return s.stopFlag
}

// setupSearchLimits reports the search limits to the log and sets
// up the time control.
func (s *Search) setupSearchLimits(p *position.Position, sl *Limits) {
	if sl.Infinite {
		s.log.Info("Search mode: Infinite")
	}
	if sl.TimeControl {
		s.timeLimit = s.setupTimeControl(p, sl)
		s.extraTime = 0
		if sl.MoveTime > 0 {
			s.log.Infof("Search mode: Time controlled: Time per move %s", sl.MoveTime)
		} else {
			s.log.Info(out.Sprintf("Search mode: Time controlled: Red = %s (inc %s) Black = %s (inc %s) Moves to go: %d",
				sl.RedTime, sl.RedInc, sl.BlackTime, sl.BlackInc, sl.MovesToGo))
			s.log.Info(out.Sprintf("Search mode: Time limit: %s", s.timeLimit))
		}
	} else {
		s.log.Info("Search mode: No time control")
	}
	if sl.Depth > 0 {
		s.log.Debugf("Search mode: Depth limited: %d", sl.Depth)
	}
	if sl.Nodes > 0 {
		s.log.Infof(out.Sprintf("Search mode: Nodes limited: %d", sl.Nodes))
	}
}

// setupTimeControl computes a time limit for the search from the
// given search limits.
func (s *Search) setupTimeControl(p *position.Position, sl *Limits) time.Duration {
	if sl.MoveTime > 0 { // mode time per move
		// we need a little room for executing the code
		duration := sl.MoveTime - (20 * time.Millisecond)
		if duration < 0 {
			s.log.Warningf("Very short move time: %s", sl.MoveTime)
			return sl.MoveTime
		}
		return duration
	}
	// remaining time mode - estimate a time per move
	movesLeft := int64(sl.MovesToGo)
	if movesLeft == 0 { // default
		// we estimate a minimum of 15 more moves in final game phases
		// - in early game phases this grows up to 40
		movesLeft = int64(15 + (25 * p.GamePhaseFactor()))
	}
	// time left for the current player
	var timeLeft time.Duration
	switch p.NextPlayer() {
	case Red:
		timeLeft = sl.RedTime + time.Duration(movesLeft*sl.RedInc.Nanoseconds())
	case Black:
		timeLeft = sl.BlackTime + time.Duration(movesLeft*sl.BlackInc.Nanoseconds())
	}
	// estimate time per move
	timeLimit := time.Duration(timeLeft.Nanoseconds() / movesLeft)
	// account for the runtime of our code
	if timeLimit.Milliseconds() < 100 {
		// limits for very short available time reduced by another 20%
		timeLimit = time.Duration(int64(0.8 * float64(timeLimit.Nanoseconds())))
	} else {
		// reduced by 10%
		timeLimit = time.Duration(int64(0.9 * float64(timeLimit.Nanoseconds())))
	}
	return timeLimit
}

// addExtraTime adds or subtracts a portion (%) of the current time
// limit to the search time.
//  Example:
//  f = 1.0 --> no change in search time
//  f = 0.9 --> reduction by 10%
//  f = 1.1 --> extension by 10%
func (s *Search) addExtraTime(f float64) {
	if s.searchLimits.TimeControl && s.searchLimits.MoveTime == 0 {
		duration := time.Duration(int64((f - 1.0) * float64(s.timeLimit.Nanoseconds())))
		s.extraTime += duration
		s.log.Debugf(out.Sprintf("Time added/reduced by %s to %s",
			duration, s.timeLimit+s.extraTime))
	}
}

// startTimer starts a goroutine which regularly checks the elapsed
// time against the time limit and extra time given. When the time
// limit is reached it sets the stopFlag and terminates itself.
func (s *Search) startTimer() {
	go func() {
		timerStart := time.Now()
		s.log.Debugf("Timer started with time limit of %s", s.timeLimit)
		// as the time limit can change due to extra time we can't
		// set a fixed timeout - relaxed busy wait
		for time.Since(timerStart) < s.timeLimit+s.extraTime && !s.stopFlag {
			time.Sleep(5 * time.Millisecond)
		}
		if s.stopFlag {
			s.log.Debugf("Timer stopped early after wall time: %s (time limit %s and extra time %s)",
				time.Since(timerStart), s.timeLimit, s.extraTime)
		} else {
			s.log.Debugf("Timer stops search after wall time: %s (time limit %s and extra time %s)",
				time.Since(timerStart), s.timeLimit, s.extraTime)
			s.stopFlag = true
		}
	}()
}

// sendResult sends the search result to the uci handler if a handler
// is available.
func (s *Search) sendResult(searchResult *Result) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendResult(searchResult.BestMove, searchResult.PonderMove)
	}
}

// sendInfoStringToUci sends an info string to the uci handler if a
// handler is available.
func (s *Search) sendInfoStringToUci(msg string) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendInfoString(msg)
	}
}

// sendSearchUpdateToUci sends a periodic update about the search to
// the uci handler - at most once per second.
func (s *Search) sendSearchUpdateToUci() {
	if time.Since(s.lastUciUpdateTime) < time.Second {
		return
	}
	s.lastUciUpdateTime = time.Now()
	hashfull := 0
	if s.tt != nil {
		hashfull = s.tt.Hashfull()
	}
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendSearchUpdate(
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime),
			hashfull)
		s.uciHandlerPtr.SendCurrentRootMove(s.statistics.CurrentRootMove, s.statistics.CurrentRootMoveIndex)
	} else {
		s.log.Infof(out.Sprintf("depth %d seldepth %d nodes %d nps %d time %d hashfull %d",
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime).Milliseconds(),
			hashfull))
	}
}

// sendIterationEndInfoToUci sends the info of a completed iteration
// to the uci handler.
func (s *Search) sendIterationEndInfoToUci() {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendIterationEndInfo(
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime),
			*s.pv[0])
	} else {
		s.log.Infof(out.Sprintf("depth %d seldepth %d value %s nodes %d nps %d time %d pv %s",
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue.String(),
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime).Milliseconds(),
			s.pv[0].StringUci()))
	}
}

// sendAspirationResearchInfo reports an aspiration fail low/high to
// the uci handler.
func (s *Search) sendAspirationResearchInfo(value Value, bound string) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendAspirationResearchInfo(
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			value,
			bound,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime),
			*s.pv[0])
	} else {
		s.log.Infof(out.Sprintf("depth %d seldepth %d value %s %s nodes %d nps %d time %d pv %s",
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			value.String(),
			bound,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime).Milliseconds(),
			s.pv[0].StringUci()))
	}
}

// getNps calculates the current nps relative to s.startTime.
// Limits the value to avoid unrealistic values on very short times.
func (s *Search) getNps() uint64 {
	nps := util.Nps(s.nodesVisited, time.Since(s.startTime)+100)
	if nps > 15_000_000 { // sanity value for very short times
		nps = 0
	}
	return nps
}

func minValue(a Value, b Value) Value {
	if a < b {
		return a
	}
	return b
}

func maxValue(a Value, b Value) Value {
	if a > b {
		return a
	}
	return b
}
