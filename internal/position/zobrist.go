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

package position

import (
	"math/rand"

	. "github.com/hduc-dev/XiangqiGo/internal/types"
)

// The Zobrist tables are process wide - initialized once at startup
// and read only afterwards. The position key is the XOR of the keys
// of all occupied squares XORed with the side-to-move key when Red
// is to move. Keys are deterministic within a process.
var (
	zobristPieces  [ColorLength][PieceTypeLength][SquareLength]Key
	zobristRedMove Key
)

func init() {
	// fixed seed to keep keys reproducible for debugging
	r := rand.New(rand.NewSource(1_070_372))
	for c := 0; c < ColorLength; c++ {
		for pt := 0; pt < PieceTypeLength; pt++ {
			for sq := 0; sq < SquareLength; sq++ {
				zobristPieces[c][pt][sq] = Key(r.Uint64())
			}
		}
	}
	zobristRedMove = Key(r.Uint64())
}
