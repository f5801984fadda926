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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hduc-dev/XiangqiGo/internal/position"
)

// known leaf node counts for the Xiangqi start position.
var perftResults = []uint64{1, 44, 1_920, 79_666, 3_290_240}

func TestPerftStartPosition(t *testing.T) {
	maxDepth := 3
	if !testing.Short() {
		maxDepth = 4
	}
	perft := NewPerft()
	for depth := 1; depth <= maxDepth; depth++ {
		p := position.NewPosition()
		nodes := perft.StartPerft(p, depth, true)
		assert.Equal(t, perftResults[depth], nodes, "perft depth %d", depth)
	}
}
