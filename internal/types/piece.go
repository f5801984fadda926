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

// Piece is a set of constants for pieces of both colors.
// Encoded as 4 bits - 1 bit color, 3 bits piece type.
type Piece int8

// PieceNone is the empty square.
const (
	PieceNone Piece = 0

	// PieceLength number of piece encodings
	PieceLength = 16
)

// MakePiece creates the piece given by color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int8(c)<<3 + int8(pt))
}

// ColorOf returns the color of the piece.
// Result is undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type of the piece.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ValueOf returns the material value of the piece's type.
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

// PieceFromChar returns the piece corresponding to the given FEN
// character. Upper case letters are Red, lower case Black. The
// letters B/b and N/n are accepted as aliases for Elephant and
// Horse. Returns PieceNone for an unknown character.
func PieceFromChar(c byte) Piece {
	color := Red
	if c >= 'a' && c <= 'z' {
		color = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'K':
		return MakePiece(color, General)
	case 'A':
		return MakePiece(color, Advisor)
	case 'E', 'B':
		return MakePiece(color, Elephant)
	case 'H', 'N':
		return MakePiece(color, Horse)
	case 'R':
		return MakePiece(color, Chariot)
	case 'C':
		return MakePiece(color, Cannon)
	case 'P':
		return MakePiece(color, Soldier)
	default:
		return PieceNone
	}
}

// Char returns the FEN letter of the piece - upper case for Red,
// lower case for Black, a dash for the empty square.
func (p Piece) Char() byte {
	if p == PieceNone {
		return '-'
	}
	c := p.TypeOf().Char()
	if p.ColorOf() == Black {
		c += 'a' - 'A'
	}
	return c
}

// String returns the FEN letter of the piece as a string.
func (p Piece) String() string {
	return string(p.Char())
}
