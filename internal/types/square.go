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

// Square is a type for all squares of the 10x9 Xiangqi board.
// Squares are numbered rank by rank - square = rank*9 + file.
// Rank 0 is the Black back rank at the top of the board, rank 9
// the Red back rank at the bottom. The river runs between ranks
// 4 and 5.
type Square int8

// SqNone is the marker for a non existing square.
const (
	SqNone Square = 90

	// SquareLength number of squares on the board
	SquareLength = 90

	// RankLength number of ranks, FileLength number of files
	RankLength = 10
	FileLength = 9
)

// SquareOf returns the square for the given rank and file.
// Input must be in range - this is not checked.
func SquareOf(rank int, file int) Square {
	return Square(rank*FileLength + file)
}

// SquareFromCoords returns the square for the given rank and file
// or SqNone if the coordinates are off the board.
func SquareFromCoords(rank int, file int) Square {
	if rank < 0 || rank >= RankLength || file < 0 || file >= FileLength {
		return SqNone
	}
	return SquareOf(rank, file)
}

// RankOf returns the rank of the square (0-9).
func (sq Square) RankOf() int {
	return int(sq) / FileLength
}

// FileOf returns the file of the square (0-8).
func (sq Square) FileOf() int {
	return int(sq) % FileLength
}

// IsValid checks if the square is a valid square on the board.
func (sq Square) IsValid() bool {
	return sq >= 0 && sq < SquareLength
}

// InPalace checks if the square lies within the 3x3 palace of the
// given color. The Red palace covers ranks 7-9, the Black palace
// ranks 0-2, both on files 3-5.
func (sq Square) InPalace(c Color) bool {
	f := sq.FileOf()
	if f < 3 || f > 5 {
		return false
	}
	r := sq.RankOf()
	if c == Red {
		return r >= 7
	}
	return r <= 2
}

// OnOwnSide checks if the square lies on the given color's own
// side of the river. Red's side is rank >= 5, Black's rank <= 4.
func (sq Square) OnOwnSide(c Color) bool {
	if c == Red {
		return sq.RankOf() >= 5
	}
	return sq.RankOf() <= 4
}

// String returns the wire format of the square - a file letter
// 'a'-'i' followed by a rank digit. The rank digit counts from the
// Red back rank so internal rank 9 is digit 0.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.FileOf()), byte('0' + (9 - sq.RankOf()))})
}

// SquareFromString parses the 2 character wire format of a square
// and returns SqNone if it can't be parsed.
func SquareFromString(s string) Square {
	if len(s) < 2 {
		return SqNone
	}
	if s[0] < 'a' || s[0] > 'i' || s[1] < '0' || s[1] > '9' {
		return SqNone
	}
	file := int(s[0] - 'a')
	rank := 9 - int(s[1]-'0')
	return SquareOf(rank, file)
}
