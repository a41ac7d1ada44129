package expr

import (
	"math"

	"github.com/bnema/obdlog/internal/domain"
)

// Result is the value of an expression and the buffer indices it read, in
// the order they were first read.
type Result struct {
	Value    float64 `json:"result"`
	Accessed []int   `json:"accessedIndices"`
}

type pendingOp struct {
	op  byte
	pos int
}

type evaluator struct {
	lex      *lexer
	buf      domain.ByteBuffer
	v        float64
	operands []float64
	ops      []pendingOp
	accessed []int
	seen     map[int]struct{}
}

// Evaluate runs expression against buf with v bound to V. It stops at the
// first failure and returns an *Error wrapping one of the package sentinels.
func Evaluate(expression string, buf domain.ByteBuffer, v float64) (Result, error) {
	e := &evaluator{
		lex:  newLexer(expression),
		buf:  buf,
		v:    v,
		seen: map[int]struct{}{},
	}

	value, err := e.run()
	if err != nil {
		return Result{}, err
	}

	accessed := e.accessed
	if accessed == nil {
		accessed = []int{}
	}
	return Result{Value: value, Accessed: accessed}, nil
}

// Check tokenizes expression without evaluating it.
func Check(expression string) error {
	l := newLexer(expression)
	for {
		tok, err := l.next()
		if err != nil {
			return err
		}
		if tok.typ == tokenNone {
			return nil
		}
	}
}

func (e *evaluator) run() (float64, error) {
	for {
		tok, err := e.lex.next()
		if err != nil {
			return 0, err
		}

		switch tok.typ {
		case tokenNone:
			return e.finish()
		case tokenNumber:
			e.push(tok.number)
		case tokenVariable:
			e.push(e.v)
		case tokenByte:
			v, err := e.readByte(tok)
			if err != nil {
				return 0, err
			}
			e.push(v)
		case tokenRange:
			v, err := e.readRange(tok)
			if err != nil {
				return 0, err
			}
			e.push(v)
		case tokenLeftParen:
			e.ops = append(e.ops, pendingOp{op: opLeftParen, pos: tok.pos})
		case tokenRightParen:
			for len(e.ops) > 0 && e.topOp().op != opLeftParen {
				if err := e.apply(); err != nil {
					return 0, err
				}
			}
			if len(e.ops) == 0 {
				return 0, newError(ErrUnbalancedParen, tok.pos, "unmatched ')'")
			}
			e.ops = e.ops[:len(e.ops)-1]
		case tokenOperator:
			for len(e.ops) > 0 && precedence(e.topOp().op) >= precedence(tok.op) {
				if err := e.apply(); err != nil {
					return 0, err
				}
			}
			e.ops = append(e.ops, pendingOp{op: tok.op, pos: tok.pos})
		}
	}
}

func (e *evaluator) finish() (float64, error) {
	for len(e.ops) > 0 {
		if top := e.topOp(); top.op == opLeftParen {
			return 0, newError(ErrUnbalancedParen, top.pos, "unmatched '('")
		}
		if err := e.apply(); err != nil {
			return 0, err
		}
	}

	if len(e.operands) != 1 {
		return 0, newError(ErrMalformedResult, e.lex.pos, "expected one value, have %d", len(e.operands))
	}
	return e.operands[0], nil
}

func (e *evaluator) push(v float64) {
	e.operands = append(e.operands, v)
}

func (e *evaluator) topOp() pendingOp {
	return e.ops[len(e.ops)-1]
}

func (e *evaluator) apply() error {
	top := e.topOp()
	e.ops = e.ops[:len(e.ops)-1]

	if len(e.operands) < 2 {
		return newError(ErrStackUnderflow, top.pos, "operator %s needs two operands", opString(top.op))
	}
	right := e.operands[len(e.operands)-1]
	left := e.operands[len(e.operands)-2]
	e.operands = e.operands[:len(e.operands)-2]

	var result float64
	switch top.op {
	case opAdd:
		result = left + right
	case opSub:
		result = left - right
	case opMul:
		result = left * right
	case opDiv:
		if right == 0 {
			return newError(ErrArithmetic, top.pos, "division by zero")
		}
		result = left / right
	case opAnd:
		result = float64(toInt32(left) & toInt32(right))
	case opOr:
		result = float64(toInt32(left) | toInt32(right))
	case opXor:
		result = float64(toInt32(left) ^ toInt32(right))
	case opShiftLeft:
		result = float64(toInt32(left) << shiftCount(right))
	case opShiftRight:
		result = float64(toInt32(left) >> shiftCount(right))
	}

	e.push(result)
	return nil
}

// toInt32 drops the fractional part of v and wraps it into 32-bit two's
// complement. NaN and infinities become 0.
func toInt32(v float64) int32 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	m := math.Mod(math.Trunc(v), 1<<32)
	if m < 0 {
		m += 1 << 32
	}
	return int32(uint32(m))
}

func shiftCount(v float64) uint32 {
	return uint32(toInt32(v)) & 31
}

func opString(op byte) string {
	return Token{typ: tokenOperator, op: op}.String()
}
