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
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hduc-dev/XiangqiGo/internal/logging"
	"github.com/hduc-dev/XiangqiGo/internal/position"
	. "github.com/hduc-dev/XiangqiGo/internal/types"
)

var out = message.NewPrinter(language.German)

// Perft is class to test move generation of the engine.
type Perft struct {
	Nodes          uint64
	CheckCounter   uint64
	CaptureCounter uint64
	MateCounter    uint64

	stopFlag bool
}

// NewPerft creates a new empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop can be used when perft has been started in a goroutine
// to stop the currently running perft test.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerft runs a perft test from the given position to the given
// depth and returns the number of leaf nodes. Counters for captures,
// checks and mates are updated on the instance.
func (perft *Perft) StartPerft(p *position.Position, depth int, report bool) uint64 {
	perft.stopFlag = false
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CaptureCounter = 0
	perft.MateCounter = 0

	log := logging.GetLog()
	mg := make([]*Movegen, depth+1)
	for i := 0; i <= depth; i++ {
		mg[i] = NewMoveGen()
	}

	start := time.Now()
	perft.Nodes = perft.miniMax(p, mg, depth)
	elapsed := time.Since(start)

	if report {
		log.Info(out.Sprintf("Perft depth %d: %d nodes in %d ms (%d captures, %d checks, %d mates)",
			depth, perft.Nodes, elapsed.Milliseconds(),
			perft.CaptureCounter, perft.CheckCounter, perft.MateCounter))
	}
	return perft.Nodes
}

func (perft *Perft) miniMax(p *position.Position, mg []*Movegen, depth int) uint64 {
	if perft.stopFlag {
		return 0
	}
	if depth == 0 {
		return 1
	}
	var nodes uint64
	moves := mg[depth].GenerateLegalMoves(p, GenAll)
	for _, m := range *moves {
		next := *p
		capture := p.GetPiece(m.To()) != PieceNone
		if !next.MakeMove(m.From(), m.To()) {
			continue
		}
		if depth == 1 {
			if capture {
				perft.CaptureCounter++
			}
			if IsInCheck(&next, next.NextPlayer()) {
				perft.CheckCounter++
				if !mg[0].HasLegalMove(&next) {
					perft.MateCounter++
				}
			}
		}
		nodes += perft.miniMax(&next, mg, depth-1)
	}
	return nodes
}
