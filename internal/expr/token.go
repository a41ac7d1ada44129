package expr

import "fmt"

type tokenType int

const (
	tokenNone tokenType = iota
	tokenNumber
	tokenVariable
	tokenByte
	tokenRange
	tokenOperator
	tokenLeftParen
	tokenRightParen
)

// ByteKind selects how a referenced byte is interpreted.
type ByteKind byte

const (
	Unsigned ByteKind = 'B'
	Signed   ByteKind = 'S'
)

// operator symbols; shifts are stored as a single '<' or '>'.
const (
	opOr         = '|'
	opXor        = '^'
	opAnd        = '&'
	opShiftLeft  = '<'
	opShiftRight = '>'
	opAdd        = '+'
	opSub        = '-'
	opMul        = '*'
	opDiv        = '/'
	opLeftParen  = '('
)

// Token is one lexical element of an expression. Only the fields relevant
// to typ are set.
type Token struct {
	typ    tokenType
	pos    int
	number float64
	kind   ByteKind
	index  int
	end    int
	bit    int // -1 when no bit is selected
	op     byte
}

func (t Token) String() string {
	switch t.typ {
	case tokenNumber:
		return fmt.Sprintf("%g", t.number)
	case tokenVariable:
		return "V"
	case tokenByte:
		if t.bit >= 0 {
			return fmt.Sprintf("%c%d:%d", t.kind, t.index, t.bit)
		}
		return fmt.Sprintf("%c%d", t.kind, t.index)
	case tokenRange:
		return fmt.Sprintf("[%c%d:%c%d]", t.kind, t.index, t.kind, t.end)
	case tokenOperator:
		switch t.op {
		case opShiftLeft:
			return "<<"
		case opShiftRight:
			return ">>"
		}
		return string(t.op)
	case tokenLeftParen:
		return "("
	case tokenRightParen:
		return ")"
	default:
		return "<none>"
	}
}

func precedence(op byte) int {
	switch op {
	case opOr, opXor:
		return 1
	case opAnd:
		return 2
	case opShiftLeft, opShiftRight:
		return 3
	case opAdd, opSub:
		return 4
	case opMul, opDiv:
		return 5
	default:
		return 0
	}
}
