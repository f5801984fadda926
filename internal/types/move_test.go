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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMove(t *testing.T) {
	m := CreateMove(SquareOf(9, 4), SquareOf(8, 4))
	assert.Equal(t, SquareOf(9, 4), m.From())
	assert.Equal(t, SquareOf(8, 4), m.To())
	assert.Equal(t, "e0e1", m.StringUci())
	assert.True(t, m.IsValid())
	assert.False(t, MoveNone.IsValid())
}

func TestMoveValue(t *testing.T) {
	m := CreateMove(SquareOf(2, 1), SquareOf(2, 4))
	assert.Equal(t, Value(0), m.ValueOf())

	m.SetValue(Value(20_000))
	assert.Equal(t, Value(20_000), m.ValueOf())
	assert.Equal(t, SquareOf(2, 1), m.From())
	assert.Equal(t, SquareOf(2, 4), m.To())

	// negative sort values must survive the encoding
	m.SetValue(Value(-9_999))
	assert.Equal(t, Value(-9_999), m.ValueOf())
	assert.Equal(t, CreateMove(SquareOf(2, 1), SquareOf(2, 4)), m.MoveOf())

	m2 := CreateMoveValue(SquareOf(2, 1), SquareOf(2, 4), Value(-42))
	assert.Equal(t, Value(-42), m2.ValueOf())
	assert.Equal(t, m.MoveOf(), m2.MoveOf())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "cp 150", Value(150).String())
	assert.Equal(t, "mate 1", (ValueCheckMate - 1).String())
	assert.Equal(t, "mate 2", (ValueCheckMate - 3).String())
	assert.Equal(t, "mate -1", (-ValueCheckMate + 2).String())
	assert.True(t, (ValueCheckMate - 10).IsCheckMateValue())
	assert.False(t, Value(100).IsCheckMateValue())
}
