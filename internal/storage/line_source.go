package storage

import (
	"bufio"
	"os"
)

// FileLineSource iterates the lines of one open data file.
// Line numbers are 1-based and count data lines in source order.
type FileLineSource struct {
	file    *os.File
	scanner *bufio.Scanner
	lineNo  int
}

func newFileLineSource(f *os.File) *FileLineSource {
	return &FileLineSource{
		file:    f,
		scanner: bufio.NewScanner(f),
	}
}

// Next returns the next line and its number, or ok=false at end of
// input or on error. Trailing carriage returns are stripped so files
// written on Windows decode the same way.
func (ls *FileLineSource) Next() (string, int, bool) {
	if !ls.scanner.Scan() {
		return "", 0, false
	}
	ls.lineNo++
	line := ls.scanner.Text()
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line, ls.lineNo, true
}

// Err reports whether iteration stopped on an I/O error
func (ls *FileLineSource) Err() error {
	return ls.scanner.Err()
}

// Close releases the underlying file handle
func (ls *FileLineSource) Close() error {
	return ls.file.Close()
}
