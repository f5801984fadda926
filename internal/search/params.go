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
	. "github.com/hduc-dev/XiangqiGo/internal/types"
)

// This file contains static pre-computed parameters of the search -
// margins and thresholds too fine grained to be part of the search
// configuration.

// futility pruning - margins per remaining depth. A quiet move at
// low depth is skipped when the static eval plus this margin does
// not reach alpha.
var fp = [4]Value{0, 100, 200, 300}

// razoring - margins per remaining depth. When even the static eval
// plus this margin stays below alpha a quiescence search verifies
// the fail low before the whole subtree is searched.
var razor = [4]Value{0, 200, 400, 800}

const (
	// razorDepth is the maximum remaining depth for razoring and
	// futility pruning
	razorDepth = 3

	// lmrMinMovesSearched number of moves searched at full depth
	// before late move reductions kick in
	lmrMinMovesSearched = 3

	// lmpMovesSearched number of moves after which clearly failing
	// moves terminate the move loop
	lmpMovesSearched = 8

	// lmpMargin distance below alpha for the late move pruning break
	lmpMargin = Value(200)

	// deltaMargin stand pat distance below alpha at which quiescence
	// gives up on the position
	deltaMargin = Value(200)

	// seeThreshold - later captures with a SEE below this are skipped
	seeThreshold = Value(-50)

	// maxAspirationResearches bounds the aspiration window widening
	// before falling back to a full window search
	maxAspirationResearches = 5
)
