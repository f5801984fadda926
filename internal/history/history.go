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

// Package history provides the data structure for the history
// heuristic of the search - a counter table indexed by the from and
// to square of quiet moves which caused cutoffs or raised alpha.
package history

import (
	. "github.com/hduc-dev/XiangqiGo/internal/types"
)

// History is a data structure updated during search to provide the
// move ordering with valuable information from earlier parts of
// the search tree. Counters may become negative when a move has
// repeatedly failed to improve alpha.
type History struct {
	Count [SquareLength][SquareLength]int64
}

// NewHistory creates a new History instance.
func NewHistory() *History {
	return &History{}
}

// Get returns the history counter for the given move.
func (h *History) Get(m Move) int64 {
	return h.Count[m.From()][m.To()]
}

// Inc adds the given amount to the history counter of the move.
func (h *History) Inc(m Move, amount int64) {
	h.Count[m.From()][m.To()] += amount
}
