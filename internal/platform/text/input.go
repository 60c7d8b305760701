package text

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

var errNotInteger = errors.New("not an integer")

// tokenReader yields whitespace-separated tokens across lines, so "3 4" and "3\n4"
// read the same.
type tokenReader struct {
	r       *bufio.Reader
	pending []string
}

func newTokenReader(r io.Reader) *tokenReader {
	return &tokenReader{r: bufio.NewReader(r)}
}

// next returns the next token, reading more lines as needed.
func (t *tokenReader) next() (string, error) {
	for len(t.pending) == 0 {
		line, err := t.r.ReadString('\n')
		t.pending = strings.Fields(line)
		if err != nil {
			if len(t.pending) > 0 {
				break
			}
			return "", err
		}
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]
	return tok, nil
}

// nextInt reads one integer token. On a malformed token the rest of the line is
// dropped and errNotInteger returned.
func (t *tokenReader) nextInt() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		t.dropLine()
		return 0, errNotInteger
	}
	return n, nil
}

// dropLine discards whatever is left of the current line.
func (t *tokenReader) dropLine() {
	t.pending = nil
}
