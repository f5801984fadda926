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

// Package uciInterface defines the interface the search uses to
// communicate with the UCI handler. It exists to break the circular
// import dependency between the uci package and the search package.
package uciInterface

import (
	"time"

	"github.com/hduc-dev/XiangqiGo/internal/moveslice"
	. "github.com/hduc-dev/XiangqiGo/internal/types"
)

// UciDriver is the interface against which the search sends its
// output to the UCI user interface.
type UciDriver interface {
	// SendReadyOk sends "readyok" to the UCI user interface.
	SendReadyOk()

	// SendInfoString sends an arbitrary info string to the UCI user interface.
	SendInfoString(info string)

	// SendIterationEndInfo sends the search info at the end of a
	// completed iterative deepening iteration.
	SendIterationEndInfo(depth int, seldepth int, value Value, nodes uint64, nps uint64, time time.Duration, pv moveslice.MoveSlice)

	// SendAspirationResearchInfo sends the search info when an
	// aspiration window failed low or high and the search re-searches.
	SendAspirationResearchInfo(depth int, seldepth int, value Value, bound string, nodes uint64, nps uint64, time time.Duration, pv moveslice.MoveSlice)

	// SendSearchUpdate sends a periodic update about search statistics.
	SendSearchUpdate(depth int, seldepth int, nodes uint64, nps uint64, time time.Duration, hashfull int)

	// SendCurrentRootMove sends the root move currently searched.
	SendCurrentRootMove(currMove Move, moveNumber int)

	// SendResult sends the final search result.
	SendResult(bestMove Move, ponderMove Move)
}
