package testhelpers

import (
	"io"
	"strings"
)

// Lines is a scripted player. Each ReadLine returns the next line and io.EOF once the script is exhausted.
type Lines struct {
	lines []string
	read  int
}

func NewLines(lines ...string) *Lines {
	return &Lines{lines: lines, read: 0}
}

func (l *Lines) ReadLine() (string, error) {
	if l.read >= len(l.lines) {
		return "", io.EOF
	}
	line := l.lines[l.read]
	l.read++
	return line, nil
}

// Remaining returns how many lines have not been read yet.
func (l *Lines) Remaining() int {
	return len(l.lines) - l.read
}

// Input joins lines into the text a player would type on stdin.
func Input(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}
