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

package transpositiontable

import (
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hduc-dev/XiangqiGo/internal/config"
	. "github.com/hduc-dev/XiangqiGo/internal/types"
)

func TestMain(m *testing.M) {
	config.Setup()
	code := m.Run()
	os.Exit(code)
}

func TestEntrySize(t *testing.T) {
	assert.EqualValues(t, TtEntrySize, unsafe.Sizeof(TtEntry{}))
}

func TestNewTtTable(t *testing.T) {
	tt := NewTtTable(2)
	assert.EqualValues(t, 0, tt.Len())
	// 2 MB fit 131.072 entries of 16 byte
	assert.EqualValues(t, 131_072, tt.maxNumberOfEntries)

	// size 0 stores nothing
	tt0 := NewTtTable(0)
	tt0.Put(Key(42), CreateMove(SquareOf(0, 0), SquareOf(0, 1)), 5, Value(100), EXACT)
	assert.EqualValues(t, 0, tt0.Len())
	assert.Nil(t, tt0.Probe(Key(42)))
}

func TestPutAndProbe(t *testing.T) {
	tt := NewTtTable(2)
	move := CreateMove(SquareOf(7, 1), SquareOf(7, 4))

	tt.Put(Key(111), move, 4, Value(123), EXACT)
	assert.EqualValues(t, 1, tt.Len())

	e := tt.Probe(Key(111))
	require.NotNil(t, e)
	assert.Equal(t, move.MoveOf(), e.Move())
	assert.Equal(t, Value(123), e.Value())
	assert.Equal(t, int8(4), e.Depth())
	assert.Equal(t, EXACT, e.Vtype())

	// miss for an unknown key
	assert.Nil(t, tt.Probe(Key(222)))
}

func TestUpdateSameKey(t *testing.T) {
	tt := NewTtTable(2)
	move := CreateMove(SquareOf(7, 1), SquareOf(7, 4))
	move2 := CreateMove(SquareOf(9, 0), SquareOf(8, 0))

	tt.Put(Key(111), move, 4, Value(123), EXACT)
	tt.Put(Key(111), move2, 6, Value(200), BETA)

	e := tt.Probe(Key(111))
	require.NotNil(t, e)
	assert.Equal(t, move2.MoveOf(), e.Move())
	assert.Equal(t, Value(200), e.Value())
	assert.Equal(t, int8(6), e.Depth())
	assert.Equal(t, BETA, e.Vtype())
	assert.EqualValues(t, 1, tt.Len())

	// an update with MoveNone preserves the stored move
	tt.Put(Key(111), MoveNone, 7, Value(210), EXACT)
	e = tt.Probe(Key(111))
	require.NotNil(t, e)
	assert.Equal(t, move2.MoveOf(), e.Move())
	assert.Equal(t, Value(210), e.Value())
}

func TestCollisionReplacement(t *testing.T) {
	tt := NewTtTable(2)
	move := CreateMove(SquareOf(7, 1), SquareOf(7, 4))

	// two keys hashing to the same bucket - maxNumberOfEntries apart
	key1 := Key(5)
	key2 := Key(5 + tt.maxNumberOfEntries)

	tt.Put(key1, move, 6, Value(100), EXACT)

	// a shallower search does not replace the deeper entry
	tt.Put(key2, move, 4, Value(50), EXACT)
	assert.NotNil(t, tt.GetEntry(key1))
	assert.Nil(t, tt.GetEntry(key2))

	// a deeper search does
	tt.Put(key2, move, 8, Value(50), EXACT)
	assert.Nil(t, tt.GetEntry(key1))
	assert.NotNil(t, tt.GetEntry(key2))
}

func TestAgeing(t *testing.T) {
	tt := NewTtTable(2)
	move := CreateMove(SquareOf(7, 1), SquareOf(7, 4))

	tt.Put(Key(111), move, 4, Value(123), EXACT)
	e := tt.GetEntry(Key(111))
	require.NotNil(t, e)
	assert.EqualValues(t, 1, e.Age())

	tt.AgeEntries()
	assert.EqualValues(t, 2, e.Age())

	// probing rejuvenates the entry
	tt.Probe(Key(111))
	assert.EqualValues(t, 1, e.Age())
}

func TestClear(t *testing.T) {
	tt := NewTtTable(2)
	move := CreateMove(SquareOf(7, 1), SquareOf(7, 4))
	tt.Put(Key(111), move, 4, Value(123), EXACT)
	require.EqualValues(t, 1, tt.Len())

	tt.Clear()
	assert.EqualValues(t, 0, tt.Len())
	assert.Nil(t, tt.Probe(Key(111)))
}

func TestNegativeAndMateValues(t *testing.T) {
	tt := NewTtTable(2)
	move := CreateMove(SquareOf(7, 1), SquareOf(7, 4))

	// the entry must hold the full value range including mate scores
	tt.Put(Key(1), move, 12, -ValueCheckMate+3, ALPHA)
	e := tt.Probe(Key(1))
	require.NotNil(t, e)
	assert.Equal(t, -ValueCheckMate+3, e.Value())
	assert.Equal(t, ALPHA, e.Vtype())
}
