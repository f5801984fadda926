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

package config

// searchConfiguration is a data structure to hold the configuration of an
// instance of a search.
type searchConfiguration struct {
	// Quiescence search
	UseQuiescence bool
	UseQSStandpat bool
	UseSEE        bool

	// Move ordering
	UseTTMove  bool
	UseKiller  bool
	UseHistory bool
	UseIID     bool
	IIDDepth   int

	// Transposition Table
	UseTT      bool
	TTSize     int
	UseTTValue bool

	// Iterative deepening
	UseAspiration    bool
	AspirationDepth  int
	AspirationWindow int

	// Extensions
	UseCheckExt bool

	// Prunings
	UseRazoring bool
	UseFP       bool
	UseLmr      bool
	LmrDepth    int
	LmrMoves    int
	UseLmp      bool
	UseDelta    bool
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Search.UseQuiescence = true
	Settings.Search.UseQSStandpat = true
	Settings.Search.UseSEE = true

	Settings.Search.UseTTMove = true
	Settings.Search.UseKiller = true
	Settings.Search.UseHistory = true
	Settings.Search.UseIID = true
	Settings.Search.IIDDepth = 5

	Settings.Search.UseTT = true
	Settings.Search.TTSize = 64
	Settings.Search.UseTTValue = true

	Settings.Search.UseAspiration = true
	Settings.Search.AspirationDepth = 4
	Settings.Search.AspirationWindow = 50

	Settings.Search.UseCheckExt = true

	Settings.Search.UseRazoring = true
	Settings.Search.UseFP = true
	Settings.Search.UseLmr = true
	Settings.Search.LmrDepth = 3
	Settings.Search.LmrMoves = 3
	Settings.Search.UseLmp = true
	Settings.Search.UseDelta = true
}
