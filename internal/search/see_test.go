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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hduc-dev/XiangqiGo/internal/position"
	. "github.com/hduc-dev/XiangqiGo/internal/types"
)

func TestSeeWinningCapture(t *testing.T) {
	// soldier takes chariot - the full chariot value is won
	p, err := position.NewPositionFen("4k4/9/9/3r5/3P5/9/9/9/9/4K4 r - - 0 1")
	require.NoError(t, err)
	m := CreateMove(SquareOf(4, 3), SquareOf(3, 3))
	assert.Equal(t, Chariot.SeeValue(), see(p, m))
}

func TestSeeLosingCapture(t *testing.T) {
	// chariot takes soldier - the assumed recapture costs the
	// difference between chariot and soldier
	p, err := position.NewPositionFen("4k4/9/9/3p5/9/9/9/9/9/3RK4 r - - 0 1")
	require.NoError(t, err)
	m := CreateMove(SquareOf(9, 3), SquareOf(3, 3))
	assert.Equal(t, Soldier.SeeValue()-Chariot.SeeValue(), see(p, m))
	assert.True(t, see(p, m) < seeThreshold)
}

func TestSeeEqualCapture(t *testing.T) {
	// chariot takes chariot - equal trade returns the victim value
	p, err := position.NewPositionFen("4k4/9/9/3r5/9/9/9/9/9/3RK4 r - - 0 1")
	require.NoError(t, err)
	m := CreateMove(SquareOf(9, 3), SquareOf(3, 3))
	assert.Equal(t, Chariot.SeeValue(), see(p, m))
}

func TestSeeNonCapture(t *testing.T) {
	p := position.NewPosition()
	m := CreateMove(SquareOf(7, 1), SquareOf(7, 4))
	assert.Equal(t, Value(0), see(p, m))
}
