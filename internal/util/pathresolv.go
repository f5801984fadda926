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

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveFile resolves a path to a file and tries to find the file in a
// specific set of places, returning an absolute path to it.
// Path needs to be a file or a not-found error will be returned.
// The order of the search:
//  - if path is absolute it will be returned as is and an error if
//    the file does not exist
//  - if path is not absolute we try
//    - relative to the working directory
//    - relative to the executable
//    - relative to the user home directory
func ResolveFile(file string) (string, error) {
	file = filepath.Clean(file)

	if filepath.IsAbs(file) {
		if fileExists(file) {
			return file, nil
		}
		return file, fmt.Errorf("file could not be found: %s", file)
	}

	for _, dir := range searchDirs() {
		if fileExists(filepath.Join(dir, file)) {
			return filepath.Clean(filepath.Join(dir, file)), nil
		}
	}

	return file, fmt.Errorf("file could not be found: %s", file)
}

// ResolveFolder resolves a path to a folder the same way ResolveFile
// resolves files. The folder will not be created.
func ResolveFolder(folder string) (string, error) {
	folder = filepath.Clean(folder)

	if filepath.IsAbs(folder) {
		if folderExists(folder) {
			return folder, nil
		}
		return folder, fmt.Errorf("folder could not be found: %s", folder)
	}

	for _, dir := range searchDirs() {
		if folderExists(filepath.Join(dir, folder)) {
			return filepath.Clean(filepath.Join(dir, folder)), nil
		}
	}

	return folder, fmt.Errorf("folder could not be found: %s", folder)
}

// searchDirs returns the directories relative paths are resolved
// against, in search order.
func searchDirs() []string {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	if dir, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, dir)
	}
	return dirs
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func folderExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
