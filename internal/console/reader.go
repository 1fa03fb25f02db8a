package console

import (
	"bufio"
	"github.com/myrjola/theoffice/internal/errors"
	"io"
	"strings"
)

// maxLineBytes is how much of a line is kept. The rest of an overlong line is read and discarded so that the next
// prompt starts on the next line.
const maxLineBytes = 4096

// lineReader reads newline terminated input. The trailing newline and carriage return are stripped.
type lineReader struct {
	reader *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{reader: bufio.NewReader(r)}
}

// ReadLine returns the next line, cut to maxLineBytes, or io.EOF when the input is exhausted.
func (r *lineReader) ReadLine() (string, error) {
	var (
		line []byte
		read bool
	)
	for {
		chunk, isPrefix, err := r.reader.ReadLine()
		if errors.Is(err, io.EOF) {
			if !read {
				return "", io.EOF
			}
			break
		}
		if err != nil {
			return "", errors.Wrap(err, "read line")
		}
		read = true
		if keep := maxLineBytes - len(line); keep > 0 {
			line = append(line, chunk[:min(len(chunk), keep)]...)
		}
		if !isPrefix {
			break
		}
	}
	return strings.TrimRight(string(line), "\r"), nil
}
