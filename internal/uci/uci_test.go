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

package uci

import (
	"bufio"
	"bytes"
	"os"
	"strings"
	"testing"

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

func TestUciCommand(t *testing.T) {
	u := NewUciHandler()
	response := u.Command("uci")
	assert.Contains(t, response, "id name XiangqiGo")
	assert.Contains(t, response, "uciok")
}

func TestIsReadyCommand(t *testing.T) {
	u := NewUciHandler()
	response := u.Command("isready")
	assert.Contains(t, response, "readyok")
}

func TestPositionCommandStartpos(t *testing.T) {
	u := NewUciHandler()
	u.Command("position startpos")
	assert.Equal(t, StartFen, u.myPosition.StringFen())
}

func TestPositionCommandWithMoves(t *testing.T) {
	u := NewUciHandler()
	u.Command("position startpos moves b2e2 h9g7")

	// red cannon arrived on e2 = (7,4), black horse on g7 = (2,6)
	assert.Equal(t, MakePiece(Red, Cannon), u.myPosition.GetPiece(SquareOf(7, 4)))
	assert.Equal(t, MakePiece(Black, Horse), u.myPosition.GetPiece(SquareOf(2, 6)))
	assert.Equal(t, Red, u.myPosition.NextPlayer())
}

func TestPositionCommandFen(t *testing.T) {
	u := NewUciHandler()
	fen := "4k4/R8/8R/9/9/9/9/9/9/3K5 r - - 0 1"
	u.Command("position fen " + fen)
	assert.Equal(t, fen, u.myPosition.StringFen())
}

func TestPositionCommandInvalidFen(t *testing.T) {
	u := NewUciHandler()
	before := u.myPosition.StringFen()

	response := u.Command("position fen not/a/valid/fen r - - 0 1")

	// the position stays unchanged and an info string is reported
	assert.Contains(t, response, "info string")
	assert.Equal(t, before, u.myPosition.StringFen())
}

func TestPositionCommandInvalidMove(t *testing.T) {
	u := NewUciHandler()
	before := u.myPosition.StringFen()

	response := u.Command("position startpos moves a0a9")

	assert.Contains(t, response, "Invalid move")
	assert.Equal(t, before, u.myPosition.StringFen())
}

func TestGoMoveTime(t *testing.T) {
	u := NewUciHandler()
	buffer := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buffer)

	u.handleReceivedCommand("position startpos")
	u.handleReceivedCommand("go movetime 200")
	u.mySearch.WaitWhileSearching()

	response := buffer.String()
	require.Contains(t, response, "bestmove")

	// the reported best move must be 4 wire characters
	for _, line := range strings.Split(response, "\n") {
		if strings.HasPrefix(line, "bestmove") {
			fields := strings.Fields(line)
			require.True(t, len(fields) >= 2)
			assert.Len(t, fields[1], 4)
		}
	}
}

func TestStopWithoutSearch(t *testing.T) {
	u := NewUciHandler()
	// must not block or crash
	u.Command("stop")
}

func TestUnknownCommand(t *testing.T) {
	u := NewUciHandler()
	response := u.Command("foobar")
	assert.Contains(t, response, "Unknown command")
}

func TestDisplayCommand(t *testing.T) {
	u := NewUciHandler()
	response := u.Command("d")
	assert.Contains(t, response, "river")
	assert.Contains(t, response, "Next Player: Red")
}

func TestQuitCommand(t *testing.T) {
	u := NewUciHandler()
	assert.False(t, u.handleReceivedCommand("quit"))
}
