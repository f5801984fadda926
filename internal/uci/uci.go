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

// Package uci contains the UciHandler data structure and
// functionality to handle the UCI protocol communication between a
// Xiangqi user interface and the engine.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hduc-dev/XiangqiGo/internal/config"
	myLogging "github.com/hduc-dev/XiangqiGo/internal/logging"
	"github.com/hduc-dev/XiangqiGo/internal/movegen"
	"github.com/hduc-dev/XiangqiGo/internal/moveslice"
	"github.com/hduc-dev/XiangqiGo/internal/position"
	"github.com/hduc-dev/XiangqiGo/internal/search"
	"github.com/hduc-dev/XiangqiGo/internal/transpositiontable"
	. "github.com/hduc-dev/XiangqiGo/internal/types"
	"github.com/hduc-dev/XiangqiGo/internal/version"
)

var out = message.NewPrinter(language.German)
var log *logging.Logger

// UciHandler handles all communication with the user interface via
// the UCI protocol and controls options and the search.
// Create an instance with NewUciHandler()
type UciHandler struct {
	InIo       *bufio.Scanner
	OutIo      *bufio.Writer
	myMoveGen  *movegen.Movegen
	mySearch   *search.Search
	myPosition *position.Position
	myPerft    *movegen.Perft
	uciLog     *logging.Logger
}

// ///////////////////////////////////////////////////////////
// Public
// ///////////////////////////////////////////////////////////

// NewUciHandler creates a new UciHandler instance.
// Input / Output io can be replaced by changing the instance's
// InIo and OutIo members.
//  Example:
// 		u.InIo = bufio.NewScanner(os.Stdin)
//		u.OutIo = bufio.NewWriter(os.Stdout)
func NewUciHandler() *UciHandler {
	if log == nil {
		log = myLogging.GetLog()
	}
	u := &UciHandler{
		InIo:       bufio.NewScanner(os.Stdin),
		OutIo:      bufio.NewWriter(os.Stdout),
		myMoveGen:  movegen.NewMoveGen(),
		mySearch:   search.NewSearch(),
		myPosition: position.NewPosition(),
		myPerft:    movegen.NewPerft(),
		uciLog:     myLogging.GetUciLog(),
	}
	u.mySearch.SetUciHandler(u)
	return u
}

// Loop starts the main loop to receive commands through the input
// stream (pipe or user).
func (u *UciHandler) Loop() {
	u.loop()
}

// Command handles a single line of UCI protocol aka command.
// Returns the uci response as string output.
// Mostly useful for debugging and unit testing.
func (u *UciHandler) Command(cmd string) string {
	tmp := u.OutIo
	buffer := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buffer)
	u.handleReceivedCommand(cmd)
	_ = u.OutIo.Flush()
	u.OutIo = tmp
	return buffer.String()
}

// SendReadyOk sends "readyok" to the UCI user interface.
func (u *UciHandler) SendReadyOk() {
	u.send("readyok")
}

// SendInfoString sends an arbitrary string to the UCI user interface.
func (u *UciHandler) SendInfoString(info string) {
	u.send(fmt.Sprintf("info string %s", info))
}

// SendIterationEndInfo sends information about the last search depth
// iteration to the UCI ui.
func (u *UciHandler) SendIterationEndInfo(depth int, seldepth int, value Value, nodes uint64, nps uint64, time time.Duration, pv moveslice.MoveSlice) {
	u.send(fmt.Sprintf("info depth %d seldepth %d multipv 1 score %s nodes %d nps %d time %d pv %s",
		depth, seldepth, value.String(), nodes, nps, time.Milliseconds(), pv.StringUci()))
}

// SendAspirationResearchInfo sends information about an aspiration
// window fail low/high to the UCI ui.
func (u *UciHandler) SendAspirationResearchInfo(depth int, seldepth int, value Value, bound string, nodes uint64, nps uint64, time time.Duration, pv moveslice.MoveSlice) {
	u.send(fmt.Sprintf("info depth %d seldepth %d multipv 1 score %s %s nodes %d nps %d time %d pv %s",
		depth, seldepth, value.String(), bound, nodes, nps, time.Milliseconds(), pv.StringUci()))
}

// SendSearchUpdate sends a periodic update about search stats to the UCI ui.
func (u *UciHandler) SendSearchUpdate(depth int, seldepth int, nodes uint64, nps uint64, time time.Duration, hashfull int) {
	u.send(fmt.Sprintf("info depth %d seldepth %d nodes %d nps %d time %d hashfull %d",
		depth, seldepth, nodes, nps, time.Milliseconds(), hashfull))
}

// SendCurrentRootMove sends the root move currently searched to the UCI ui.
func (u *UciHandler) SendCurrentRootMove(currMove Move, moveNumber int) {
	u.send(fmt.Sprintf("info currmove %s currmovenumber %d", currMove.StringUci(), moveNumber+1))
}

// SendResult sends the search result to the UCI ui after the search
// has ended.
func (u *UciHandler) SendResult(bestMove Move, ponderMove Move) {
	var result strings.Builder
	result.WriteString("bestmove ")
	if bestMove == MoveNone {
		result.WriteString("none")
	} else {
		result.WriteString(bestMove.StringUci())
	}
	if ponderMove != MoveNone {
		result.WriteString(" ponder ")
		result.WriteString(ponderMove.StringUci())
	}
	u.send(result.String())
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

func (u *UciHandler) loop() {
	for u.InIo.Scan() {
		if !u.handleReceivedCommand(u.InIo.Text()) {
			break
		}
	}
	log.Info("Quitting XiangqiGo")
}

// handleReceivedCommand processes a single UCI command line.
// Returns false when the program should quit.
func (u *UciHandler) handleReceivedCommand(cmd string) bool {
	if len(strings.TrimSpace(cmd)) == 0 {
		return true
	}
	u.uciLog.Infof("<< %s", cmd)
	tokens := strings.Fields(cmd)
	switch tokens[0] {
	case "uci":
		u.uciCommand()
	case "isready":
		u.isReadyCommand()
	case "setoption":
		u.setOptionCommand(tokens)
	case "ucinewgame":
		u.uciNewGameCommand()
	case "position":
		u.positionCommand(tokens)
	case "go":
		u.goCommand(tokens)
	case "stop":
		u.stopCommand()
	case "perft":
		u.perftCommand(tokens)
	case "d":
		u.send(u.myPosition.String())
	case "quit":
		u.stopCommand()
		return false
	default:
		u.SendInfoString(fmt.Sprintf("Unknown command: %s", tokens[0]))
		log.Warningf("Unknown command: %s", cmd)
	}
	return true
}

func (u *UciHandler) uciCommand() {
	u.send("id name XiangqiGo " + version.Version())
	u.send("id author Duc Hien Nguyen")
	u.send(out.Sprintf("option name Hash type spin default %d min 0 max %d",
		config.Settings.Search.TTSize, transpositiontable.MaxSizeInMB))
	u.send("option name Clear Hash type button")
	u.send("uciok")
}

func (u *UciHandler) isReadyCommand() {
	u.mySearch.IsReady()
}

func (u *UciHandler) setOptionCommand(tokens []string) {
	// we expect "setoption name <name> [value <value>]"
	if len(tokens) < 3 || tokens[1] != "name" {
		u.SendInfoString("setoption command malformed")
		return
	}
	name := tokens[2]
	switch name {
	case "Hash":
		if len(tokens) < 5 || tokens[3] != "value" {
			u.SendInfoString("setoption Hash requires a value")
			return
		}
		size, err := strconv.Atoi(tokens[4])
		if err != nil {
			u.SendInfoString(fmt.Sprintf("setoption Hash value invalid: %s", tokens[4]))
			return
		}
		config.Settings.Search.TTSize = size
		u.mySearch.ResizeCache()
	case "Clear":
		// "Clear Hash" - name is split into two tokens
		u.mySearch.ClearHash()
	default:
		u.SendInfoString(fmt.Sprintf("setoption name unknown: %s", name))
	}
}

func (u *UciHandler) uciNewGameCommand() {
	u.mySearch.NewGame()
	u.myPosition = position.NewPosition()
}

func (u *UciHandler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		u.SendInfoString("position command malformed - expecting startpos or fen")
		return
	}

	// build the position from startpos or fen
	var newPosition *position.Position
	movesIndex := 0
	switch tokens[1] {
	case "startpos":
		newPosition = position.NewPosition()
		movesIndex = 2
	case "fen":
		// the fen is everything up to the optional "moves" token
		fenEnd := len(tokens)
		for i := 2; i < len(tokens); i++ {
			if tokens[i] == "moves" {
				fenEnd = i
				break
			}
		}
		fen := strings.Join(tokens[2:fenEnd], " ")
		p, err := position.NewPositionFen(fen)
		if err != nil {
			// on an invalid fen the current position stays unchanged
			u.SendInfoString(fmt.Sprintf("Invalid fen: %s", err))
			log.Warningf("Invalid fen: %s (%s)", fen, err)
			return
		}
		newPosition = p
		movesIndex = fenEnd
	default:
		u.SendInfoString(fmt.Sprintf("position command malformed: %s", tokens[1]))
		return
	}

	// apply the move list if any
	if movesIndex < len(tokens) && tokens[movesIndex] == "moves" {
		for _, moveStr := range tokens[movesIndex+1:] {
			move := u.myMoveGen.GetMoveFromUci(newPosition, moveStr)
			if move == MoveNone || !newPosition.MakeMove(move.From(), move.To()) {
				u.SendInfoString(fmt.Sprintf("Invalid move: %s", moveStr))
				log.Warningf("Invalid move %s on %s", moveStr, newPosition.StringFen())
				return
			}
		}
	}

	u.myPosition = newPosition
	log.Debugf("Position set to: %s", u.myPosition.StringFen())
}

func (u *UciHandler) goCommand(tokens []string) {
	searchLimits, ok := u.readSearchLimits(tokens)
	if !ok {
		return
	}
	// start the search
	u.mySearch.StartSearch(*u.myPosition, *searchLimits)
}

func (u *UciHandler) stopCommand() {
	u.mySearch.StopSearch()
	u.myPerft.Stop()
}

func (u *UciHandler) perftCommand(tokens []string) {
	depth := 4 // default
	if len(tokens) > 1 {
		d, err := strconv.Atoi(tokens[1])
		if err != nil {
			u.SendInfoString(fmt.Sprintf("Can't perft on depth %s", tokens[1]))
			return
		}
		depth = d
	}
	nodes := u.myPerft.StartPerft(u.myPosition, depth, true)
	u.send(out.Sprintf("Perft depth %d: %d nodes", depth, nodes))
}

// readSearchLimits reads the go command tokens into search limits.
// Returns false when a token could not be parsed.
func (u *UciHandler) readSearchLimits(tokens []string) (*search.Limits, bool) {
	searchLimits := search.NewSearchLimits()

	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "infinite":
			searchLimits.Infinite = true
		case "movetime":
			i++
			ms, err := u.intToken(tokens, i)
			if err != nil {
				return nil, false
			}
			searchLimits.TimeControl = true
			searchLimits.MoveTime = time.Duration(ms) * time.Millisecond
		case "wtime", "rtime":
			i++
			ms, err := u.intToken(tokens, i)
			if err != nil {
				return nil, false
			}
			searchLimits.TimeControl = true
			searchLimits.RedTime = time.Duration(ms) * time.Millisecond
		case "btime":
			i++
			ms, err := u.intToken(tokens, i)
			if err != nil {
				return nil, false
			}
			searchLimits.TimeControl = true
			searchLimits.BlackTime = time.Duration(ms) * time.Millisecond
		case "winc", "rinc":
			i++
			ms, err := u.intToken(tokens, i)
			if err != nil {
				return nil, false
			}
			searchLimits.RedInc = time.Duration(ms) * time.Millisecond
		case "binc":
			i++
			ms, err := u.intToken(tokens, i)
			if err != nil {
				return nil, false
			}
			searchLimits.BlackInc = time.Duration(ms) * time.Millisecond
		case "movestogo":
			i++
			n, err := u.intToken(tokens, i)
			if err != nil {
				return nil, false
			}
			searchLimits.MovesToGo = n
		case "depth":
			i++
			n, err := u.intToken(tokens, i)
			if err != nil {
				return nil, false
			}
			searchLimits.Depth = n
		case "nodes":
			i++
			n, err := u.intToken(tokens, i)
			if err != nil {
				return nil, false
			}
			searchLimits.Nodes = uint64(n)
		default:
			u.SendInfoString(fmt.Sprintf("Unknown go subcommand: %s", tokens[i]))
			log.Warningf("Unknown go subcommand: %s", tokens[i])
		}
		i++
	}

	// sanity check - no limits at all defaults to infinite
	if !searchLimits.TimeControl && searchLimits.Depth == 0 &&
		searchLimits.Nodes == 0 && !searchLimits.Infinite {
		searchLimits.Infinite = true
	}

	return searchLimits, true
}

func (u *UciHandler) intToken(tokens []string, i int) (int, error) {
	if i >= len(tokens) {
		u.SendInfoString("go subcommand is missing its value")
		return 0, fmt.Errorf("missing token")
	}
	n, err := strconv.Atoi(tokens[i])
	if err != nil {
		u.SendInfoString(fmt.Sprintf("go subcommand value invalid: %s", tokens[i]))
		return 0, err
	}
	return n, nil
}

func (u *UciHandler) send(s string) {
	u.uciLog.Infof(">> %s", s)
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}
