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

// Move is a 64-bit unsigned int type for encoding Xiangqi moves as
// a primitive data type. The low 14 bits encode the move itself,
// the high 32 bits carry a sort value used for move ordering.
//  MoveNone Move = 0
//  BITMAP 64-bit
//  |-value (32) -------------------|-unused (18)-|-from (7)-|-to (7)-|
// Squares use 7 bits each as the board has 90 squares.
type Move uint64

const (
	// MoveNone is the empty, non valid move
	MoveNone Move = 0

	toMask     = 0x7F
	fromShift  = 7
	fromMask   = 0x7F << fromShift
	moveMask   = 0x3FFF
	valueShift = 32
)

// CreateMove returns an encoded Move instance.
func CreateMove(from Square, to Square) Move {
	return Move(to) | Move(from)<<fromShift
}

// CreateMoveValue returns an encoded Move instance including a sort value.
func CreateMoveValue(from Square, to Square, value Value) Move {
	return CreateMove(from, to) | Move(uint64(uint32(int32(value)))<<valueShift)
}

// From returns the from-Square of the move.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the to-Square of the move.
func (m Move) To() Square {
	return Square(m & toMask)
}

// MoveOf returns the move without any sort value (low 14 bits).
func (m Move) MoveOf() Move {
	return m & moveMask
}

// ValueOf returns the sort value of the move.
func (m Move) ValueOf() Value {
	return Value(int32(m >> valueShift))
}

// SetValue encodes the given sort value into the high 32 bits of
// the move and returns the result.
func (m *Move) SetValue(v Value) Move {
	*m = m.MoveOf() | Move(uint64(uint32(int32(v)))<<valueShift)
	return *m
}

// IsValid checks if the move encodes two distinct valid squares.
func (m Move) IsValid() bool {
	return m.MoveOf() != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// StringUci returns the move in the 4 character wire format,
// e.g. "h2e2".
func (m Move) StringUci() string {
	if !m.IsValid() {
		return "none"
	}
	return m.From().String() + m.To().String()
}

// String returns a string representation of the move including its
// sort value.
func (m Move) String() string {
	return fmt.Sprintf("%s (%d)", m.StringUci(), m.ValueOf())
}
