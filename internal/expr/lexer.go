package expr

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var rangePattern = regexp.MustCompile(`^\s*([BS])(\d+)\s*:\s*([BS])(\d+)\s*$`)

// lexer hands out one token per call to next; the token stream is never
// materialized.
type lexer struct {
	input string
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

// next returns the following token, or a token of type tokenNone once the
// input is exhausted.
func (l *lexer) next() (Token, error) {
	l.skipSpace()
	if l.pos >= len(l.input) {
		return Token{typ: tokenNone, pos: l.pos}, nil
	}

	start := l.pos
	c := l.input[l.pos]
	switch {
	case isDigit(c) || c == '.':
		return l.lexNumber()
	case c == 'V':
		l.pos++
		return Token{typ: tokenVariable, pos: start}, nil
	case c == 'B' || c == 'S':
		return l.lexByte()
	case c == '[':
		return l.lexRange()
	case c == '(':
		l.pos++
		return Token{typ: tokenLeftParen, pos: start}, nil
	case c == ')':
		l.pos++
		return Token{typ: tokenRightParen, pos: start}, nil
	case strings.IndexByte("+-*/&|^", c) >= 0:
		l.pos++
		return Token{typ: tokenOperator, pos: start, op: c}, nil
	case c == '<' || c == '>':
		if l.pos+1 >= len(l.input) || l.input[l.pos+1] != c {
			return Token{}, newError(ErrTokenize, start, "expected %c%c", c, c)
		}
		l.pos += 2
		return Token{typ: tokenOperator, pos: start, op: c}, nil
	default:
		r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
		return Token{}, newError(ErrTokenize, start, "invalid character %q", r)
	}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			l.pos++
		default:
			return
		}
	}
}

func (l *lexer) lexNumber() (Token, error) {
	start := l.pos
	for l.pos < len(l.input) && (isDigit(l.input[l.pos]) || l.input[l.pos] == '.') {
		l.pos++
	}

	text := l.input[start:l.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, newError(ErrTokenize, start, "malformed number %q", text)
	}

	return Token{typ: tokenNumber, pos: start, number: v}, nil
}

func (l *lexer) lexByte() (Token, error) {
	start := l.pos
	kind := ByteKind(l.input[l.pos])
	l.pos++

	index, ok := l.lexIndex()
	if !ok {
		return Token{}, newError(ErrTokenize, start, "missing byte index after %c", kind)
	}

	tok := Token{typ: tokenByte, pos: start, kind: kind, index: index, bit: -1}
	if l.pos < len(l.input) && l.input[l.pos] == ':' {
		l.pos++
		if l.pos >= len(l.input) || l.input[l.pos] < '0' || l.input[l.pos] > '7' {
			return Token{}, newError(ErrTokenize, l.pos, "bit must be a digit 0..7")
		}
		tok.bit = int(l.input[l.pos] - '0')
		l.pos++
	}

	return tok, nil
}

func (l *lexer) lexIndex() (int, bool) {
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	if start == l.pos {
		return 0, false
	}

	index, err := strconv.Atoi(l.input[start:l.pos])
	if err != nil {
		return 0, false
	}
	return index, true
}

func (l *lexer) lexRange() (Token, error) {
	start := l.pos
	closing := strings.IndexByte(l.input[start:], ']')
	if closing < 0 {
		return Token{}, newError(ErrTokenize, start, "unterminated range")
	}

	body := l.input[start+1 : start+closing]
	l.pos = start + closing + 1

	m := rangePattern.FindStringSubmatch(body)
	if m == nil {
		return Token{}, newError(ErrTokenize, start, "invalid range syntax %q", "["+body+"]")
	}

	first, err := strconv.Atoi(m[2])
	if err != nil {
		return Token{}, newError(ErrTokenize, start, "invalid range start %q", m[2])
	}
	last, err := strconv.Atoi(m[4])
	if err != nil {
		return Token{}, newError(ErrTokenize, start, "invalid range end %q", m[4])
	}

	return Token{typ: tokenRange, pos: start, kind: ByteKind(m[1][0]), index: first, end: last, bit: -1}, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
