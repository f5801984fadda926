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

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/hduc-dev/XiangqiGo/internal/types"
)

func TestPushPop(t *testing.T) {
	ms := NewMoveSlice(8)
	assert.Equal(t, 0, ms.Len())

	m1 := CreateMove(SquareOf(7, 1), SquareOf(7, 4))
	m2 := CreateMove(SquareOf(9, 0), SquareOf(8, 0))
	ms.PushBack(m1)
	ms.PushBack(m2)

	assert.Equal(t, 2, ms.Len())
	assert.Equal(t, m1, ms.Front())
	assert.Equal(t, m2, ms.PopBack())
	assert.Equal(t, 1, ms.Len())
}

func TestSort(t *testing.T) {
	ms := NewMoveSlice(8)
	ms.PushBack(CreateMoveValue(SquareOf(0, 0), SquareOf(0, 1), Value(-100)))
	ms.PushBack(CreateMoveValue(SquareOf(0, 0), SquareOf(0, 2), Value(20_000)))
	ms.PushBack(CreateMoveValue(SquareOf(0, 0), SquareOf(0, 3), Value(0)))
	ms.PushBack(CreateMoveValue(SquareOf(0, 0), SquareOf(0, 4), Value(9_000)))

	ms.Sort()

	assert.Equal(t, Value(20_000), ms.At(0).ValueOf())
	assert.Equal(t, Value(9_000), ms.At(1).ValueOf())
	assert.Equal(t, Value(0), ms.At(2).ValueOf())
	assert.Equal(t, Value(-100), ms.At(3).ValueOf())
}

func TestSortIsStable(t *testing.T) {
	ms := NewMoveSlice(8)
	m1 := CreateMoveValue(SquareOf(0, 0), SquareOf(0, 1), Value(10))
	m2 := CreateMoveValue(SquareOf(0, 0), SquareOf(0, 2), Value(10))
	m3 := CreateMoveValue(SquareOf(0, 0), SquareOf(0, 3), Value(50))
	ms.PushBack(m1)
	ms.PushBack(m2)
	ms.PushBack(m3)

	ms.Sort()

	assert.Equal(t, m3, ms.At(0))
	assert.Equal(t, m1, ms.At(1))
	assert.Equal(t, m2, ms.At(2))
}

func TestContainsAndFilter(t *testing.T) {
	ms := NewMoveSlice(8)
	m1 := CreateMove(SquareOf(7, 1), SquareOf(7, 4))
	m2 := CreateMove(SquareOf(9, 0), SquareOf(8, 0))
	ms.PushBack(m1)
	ms.PushBack(m2)

	// Contains ignores the sort value
	valued := m1
	valued.SetValue(Value(999))
	assert.True(t, ms.Contains(valued))

	ms.Filter(func(i int) bool { return ms.At(i) == m2 })
	assert.Equal(t, 1, ms.Len())
	assert.Equal(t, m2, ms.Front())
}

func TestStringUci(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(CreateMove(SquareOf(7, 1), SquareOf(7, 4)))
	ms.PushBack(CreateMove(SquareOf(2, 1), SquareOf(2, 4)))
	assert.Equal(t, "b2e2 b7e7", ms.StringUci())
}
