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

package evaluator

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hduc-dev/XiangqiGo/internal/config"
	"github.com/hduc-dev/XiangqiGo/internal/position"
	. "github.com/hduc-dev/XiangqiGo/internal/types"
)

func TestMain(m *testing.M) {
	config.Setup()
	code := m.Run()
	os.Exit(code)
}

func TestEvaluateStartPosition(t *testing.T) {
	e := NewEvaluator()
	p := position.NewPosition()

	// the start position is mirror symmetric - material, positional
	// values and king safety cancel out. What remains is the mobility
	// bonus of the side to move (44 moves x 5) and the latent face
	// off penalty of the generals sharing the e-file (-50).
	value := e.Evaluate(p)
	assert.Equal(t, Value(44*5-50), value)
}

func TestEvaluateSideToMovePerspective(t *testing.T) {
	e := NewEvaluator()

	// a position with an extra red chariot is good for Red...
	p, err := position.NewPositionFen("4k4/9/9/9/9/9/9/9/9/3KR4 r - - 0 1")
	require.NoError(t, err)
	redView := e.Evaluate(p)
	assert.True(t, redView > 0, "red view should be positive: %d", redView)

	// ...and bad for Black when it is Black's turn
	p2, err := position.NewPositionFen("4k4/9/9/9/9/9/9/9/9/3KR4 b - - 0 1")
	require.NoError(t, err)
	blackView := e.Evaluate(p2)
	assert.True(t, blackView < 0, "black view should be negative: %d", blackView)
}

func TestEvaluateFlyingGeneral(t *testing.T) {
	e := NewEvaluator()

	// unobstructed facing generals are rejected with the losing
	// sentinel for the side to move
	p, err := position.NewPositionFen("4k4/9/9/9/9/9/9/9/9/4K4 r - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, -ValueFlyingGeneral, e.Evaluate(p))

	p2, err := position.NewPositionFen("4k4/9/9/9/9/9/9/9/9/4K4 b - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, -ValueFlyingGeneral, e.Evaluate(p2))
}

func TestEvaluateFaceOffPenalty(t *testing.T) {
	e := NewEvaluator()

	// generals on the same file with a screen carry the -50 penalty
	// on the Red side of the ledger
	same, err := position.NewPositionFen("4k4/9/9/9/4p4/9/9/9/9/4K4 r - - 0 1")
	require.NoError(t, err)
	offset, err := position.NewPositionFen("4k4/9/9/9/4p4/9/9/9/9/3K5 r - - 0 1")
	require.NoError(t, err)

	// the positions differ in the red general's file only - the
	// face off penalty makes the aligned position worse for Red
	assert.True(t, e.Evaluate(same) < e.Evaluate(offset))
}

func TestEvaluateEndgameSoldierBonus(t *testing.T) {
	e := NewEvaluator()

	// 3 pieces on the board - endgame. The red soldier gains the
	// endgame bonus on top of material and positional value, so from
	// Black's perspective the position is clearly negative.
	endgame, err := position.NewPositionFen("4k4/9/9/9/4P4/9/9/9/9/3K5 b - - 0 1")
	require.NoError(t, err)
	blackView := e.Evaluate(endgame)
	assert.True(t, blackView < 0, "black view should be negative: %d", blackView)

	// soldier material 30 + positional 18 + endgame 10 = 58, minus
	// Black's mobility of 2 legal king moves x 5 = 48 for Red - the
	// third king move would face the red general and is illegal
	assert.Equal(t, Value(-48), blackView)
}

func TestEvaluateKingSafety(t *testing.T) {
	e := NewEvaluator()

	// advisors and elephants in the palace zone improve the score
	guarded, err := position.NewPositionFen("4k4/9/9/9/9/9/9/9/4A4/3KA4 r - - 0 1")
	require.NoError(t, err)
	bare, err := position.NewPositionFen("4k4/9/9/9/9/9/9/9/9/3K5 r - - 0 1")
	require.NoError(t, err)

	// the guarded position carries two protectors (+30) plus their
	// material - strictly better for Red
	assert.True(t, e.Evaluate(guarded) > e.Evaluate(bare))

	// a general pushed out of its back rank is penalized - compare
	// the king safety term directly to avoid mobility noise
	advanced, err := position.NewPositionFen("4k4/9/9/9/9/9/9/3K5/9/9 r - - 0 1")
	require.NoError(t, err)
	assert.True(t, e.kingSafety(advanced, Red) < e.kingSafety(bare, Red))
	assert.Equal(t, Value(-20), e.kingSafety(advanced, Red))
}
