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
	"fmt"
	"time"

	"github.com/hduc-dev/XiangqiGo/internal/moveslice"
	. "github.com/hduc-dev/XiangqiGo/internal/types"
)

// Result stores the result of a search. If the search was stopped
// before any iteration completed BestMove will be MoveNone.
type Result struct {
	BestMove    Move
	BestValue   Value
	PonderMove  Move
	SearchTime  time.Duration
	SearchDepth int
	ExtraDepth  int
	Pv          moveslice.MoveSlice
}

func (searchResult *Result) String() string {
	return fmt.Sprintf("best move = %s (%s), ponder move = %s, depth = %d(%d), time = %s, pv = %s",
		searchResult.BestMove.StringUci(), searchResult.BestValue.String(),
		searchResult.PonderMove.StringUci(), searchResult.SearchDepth,
		searchResult.ExtraDepth, searchResult.SearchTime, searchResult.Pv.StringUci())
}
