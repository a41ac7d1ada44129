package domain

import "errors"

var (
	ErrFileRead        = errors.New("read transcript file")
	ErrNoPIDData       = errors.New("no valid PID response data")
	ErrPIDNotFound     = errors.New("pid not found")
	ErrEmptyExpression = errors.New("empty expression")
	ErrFormulaNotFound = errors.New("formula not found")
)
