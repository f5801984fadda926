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

// Color is a type for the two players of a Xiangqi game.
type Color uint8

// Colors of the Xiangqi pieces. Red moves first.
const (
	Red   Color = 0
	Black Color = 1

	// ColorLength number of colors
	ColorLength = 2
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid checks if c is a valid color.
func (c Color) IsValid() bool {
	return c < 2
}

// MoveDirection returns the rank delta in which the soldiers of
// this color advance. Red sits on the high ranks (7-9) and moves
// towards rank 0, Black the other way around.
func (c Color) MoveDirection() int {
	if c == Red {
		return -1
	}
	return 1
}

// String returns the FEN field representation of the color.
func (c Color) String() string {
	switch c {
	case Red:
		return "r"
	case Black:
		return "b"
	default:
		return "-"
	}
}

// Name returns a human readable name for the color.
func (c Color) Name() string {
	switch c {
	case Red:
		return "Red"
	case Black:
		return "Black"
	default:
		return "unknown"
	}
}
