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

package types

import "fmt"

// Value is a type for the evaluation and search values of positions
// and moves.
type Value int32

// Value constants. Search values are always from the perspective of
// the side to move.
const (
	ValueDraw Value = 0

	// ValueInf is the infinity bound of the search window
	ValueInf Value = 50_000
	ValueMax Value = ValueInf
	ValueMin Value = -ValueInf

	// ValueNA marks a not yet computed value
	ValueNA Value = -ValueInf - 1

	// ValueCheckMate is the base value for mate scores. A mate found
	// at ply p scores ValueCheckMate - p so shorter mates score higher.
	ValueCheckMate          Value = 49_000
	ValueCheckMateThreshold Value = ValueCheckMate - 1_000

	// ValueFlyingGeneral is the rejection value the evaluator returns
	// for positions with unobstructed facing generals.
	ValueFlyingGeneral Value = 50_000
)

// IsValid checks if the value is a usable search value.
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsCheckMateValue returns true if the value is a mate score
// (considering the maximum search depth).
func (v Value) IsCheckMateValue() bool {
	a := v
	if a < 0 {
		a = -a
	}
	return a > ValueCheckMateThreshold && a <= ValueCheckMate
}

// String returns the value in UCI score notation - "cp x" for
// normal values and "mate x" for mate scores.
func (v Value) String() string {
	if v == ValueNA {
		return "N/A"
	}
	if v.IsCheckMateValue() {
		plies := int(ValueCheckMate) - int(abs32(int32(v)))
		moves := (plies + 1) / 2
		if v < 0 {
			moves = -moves
		}
		return fmt.Sprintf("mate %d", moves)
	}
	return fmt.Sprintf("cp %d", v)
}

func abs32(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}
