package terminal

import (
	"bufio"
	"context"
	"io"

	"github.com/doeshing/procsh/internal/ports"
)

// Reader reads newline-terminated lines from an input stream. The returned
// line keeps its newline; a final unterminated line comes back with io.EOF.
type Reader struct {
	in *bufio.Reader
}

// NewReader wraps in with a growable buffer.
func NewReader(in io.Reader) *Reader {
	return &Reader{in: bufio.NewReader(in)}
}

// ReadLine implements ports.LineReader.
func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return r.in.ReadString('\n')
}

var _ ports.LineReader = (*Reader)(nil)
