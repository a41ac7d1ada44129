package application

import (
	"github.com/bnema/obdlog/internal/domain"
	"github.com/bnema/obdlog/internal/expr"
)

// Evaluation is an expression evaluated against one PID response.
type Evaluation struct {
	PID        string
	Response   []string
	Buffer     domain.ByteBuffer
	Expression string
	Variable   float64
	Result     expr.Result
}

// Accessed reports whether the expression read the byte at index.
func (e Evaluation) Accessed(index int) bool {
	for _, accessed := range e.Result.Accessed {
		if accessed == index {
			return true
		}
	}
	return false
}

type FormulaResult struct {
	Formula    domain.Formula
	Evaluation *Evaluation
	Err        error
}

type CaptureResult struct {
	Transcript string
	Session    domain.Session
}
