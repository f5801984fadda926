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

// PieceType is a set of constants for the seven Xiangqi piece types.
type PieceType int8

// Xiangqi piece types.
const (
	PtNone   PieceType = 0
	General  PieceType = 1
	Advisor  PieceType = 2
	Elephant PieceType = 3
	Horse    PieceType = 4
	Chariot  PieceType = 5
	Cannon   PieceType = 6
	Soldier  PieceType = 7

	// PieceTypeLength number of piece types
	PieceTypeLength = 8
)

// material values of the piece types in centipawn-like units.
var pieceTypeValue = [PieceTypeLength]Value{0, 6000, 120, 120, 270, 600, 285, 30}

// values used by the static exchange evaluation. These deliberately
// differ from the material values to weigh exchange sequences.
var pieceTypeSeeValue = [PieceTypeLength]Value{0, 10_000, 450, 450, 450, 650, 900, 100}

// single character used for each piece type in FEN and board output.
var pieceTypeChar = [PieceTypeLength]byte{'-', 'K', 'A', 'E', 'H', 'R', 'C', 'P'}

// IsValid checks whether the piece type is a real piece type (not PtNone).
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PieceTypeLength
}

// ValueOf returns the material value of the piece type.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

// SeeValue returns the exchange value of the piece type used by SEE.
func (pt PieceType) SeeValue() Value {
	return pieceTypeSeeValue[pt]
}

// Char returns the upper case FEN letter of the piece type.
func (pt PieceType) Char() byte {
	return pieceTypeChar[pt]
}

// String returns the upper case FEN letter of the piece type as a string.
func (pt PieceType) String() string {
	return string(pieceTypeChar[pt])
}
