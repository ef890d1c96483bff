// Package tokenizer splits an input line into command tokens.
//
// Splitting happens on unquoted blanks (space and tab). Single quotes keep
// their content literally, double quotes group their content but still
// resolve backslash escapes. Escapes follow C conventions, so an escaped
// space is a literal space and never a delimiter.
//
// Malformed escapes and unclosed quotes never abort tokenization: the
// offending text is kept literally and the problem is reported through the
// returned error, which is informational only.
package tokenizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/doeshing/procsh/internal/domain"
)

var (
	ErrEscape        = errors.New("invalid escape")
	ErrUnclosedQuote = errors.New("unclosed quote")
)

type scanState int

const (
	stateOutside scanState = iota
	stateSingleQuote
	stateDoubleQuote
)

// scanner works on bytes: every special character is ASCII and UTF-8
// continuation bytes never collide with them, so multi-byte text and raw
// \xHH bytes pass through untouched.
type scanner struct {
	src     string
	pos     int
	cur     strings.Builder
	started bool
	args    domain.CommandLine
	errs    []error
}

// Tokenize converts one input line into a CommandLine. A trailing newline is
// ignored. An empty or blank line yields CommandLine{""}. The returned
// CommandLine is always usable, even when err is non-nil.
func Tokenize(line string) (domain.CommandLine, error) {
	s := &scanner{src: strings.TrimRight(line, "\r\n")}
	state := stateOutside

	for s.pos < len(s.src) {
		c := s.src[s.pos]
		s.pos++

		switch state {
		case stateOutside:
			switch {
			case isBlank(c):
				s.flush()
			case c == '\'':
				state = stateSingleQuote
				s.started = true
			case c == '"':
				state = stateDoubleQuote
				s.started = true
			case c == '\\':
				s.escape()
			default:
				s.add(c)
			}

		case stateSingleQuote:
			if c == '\'' {
				state = stateOutside
			} else {
				s.add(c)
			}

		case stateDoubleQuote:
			switch c {
			case '"':
				state = stateOutside
			case '\\':
				s.escape()
			default:
				s.add(c)
			}
		}
	}

	switch state {
	case stateSingleQuote:
		s.errs = append(s.errs, fmt.Errorf("%w: missing closing '", ErrUnclosedQuote))
	case stateDoubleQuote:
		s.errs = append(s.errs, fmt.Errorf("%w: missing closing \"", ErrUnclosedQuote))
	}
	s.flush()

	if len(s.args) == 0 {
		s.args = domain.CommandLine{""}
	}
	return s.args, errors.Join(s.errs...)
}

func (s *scanner) add(c byte) {
	s.cur.WriteByte(c)
	s.started = true
}

func (s *scanner) flush() {
	if !s.started {
		return
	}
	s.args = append(s.args, s.cur.String())
	s.cur.Reset()
	s.started = false
}

// escape resolves the sequence following a backslash. s.pos points just
// past the backslash.
func (s *scanner) escape() {
	if s.pos >= len(s.src) {
		s.errs = append(s.errs, fmt.Errorf("%w: trailing backslash", ErrEscape))
		s.add('\\')
		return
	}

	c := s.src[s.pos]
	s.pos++

	if v, ok := simpleEscapes[c]; ok {
		s.add(v)
		return
	}

	switch {
	case c >= '0' && c <= '7':
		v := int(c - '0')
		for i := 0; i < 2 && s.pos < len(s.src) && isOctal(s.src[s.pos]); i++ {
			v = v*8 + int(s.src[s.pos]-'0')
			s.pos++
		}
		if v > 0xff {
			s.errs = append(s.errs, fmt.Errorf("%w: octal value out of range", ErrEscape))
		}
		s.add(byte(v))

	case c == 'x':
		v, n := 0, 0
		for n < 2 && s.pos < len(s.src) && isHex(s.src[s.pos]) {
			v = v*16 + hexValue(s.src[s.pos])
			s.pos++
			n++
		}
		if n == 0 {
			s.errs = append(s.errs, fmt.Errorf("%w: \\x used with no following hex digits", ErrEscape))
			s.add('\\')
			s.add('x')
			return
		}
		s.add(byte(v))

	default:
		s.errs = append(s.errs, fmt.Errorf("%w: unknown escape sequence \\%c", ErrEscape, c))
		s.add('\\')
		s.add(c)
	}
}

var simpleEscapes = map[byte]byte{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'v':  '\v',
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	' ':  ' ',
	'?':  '?',
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}
