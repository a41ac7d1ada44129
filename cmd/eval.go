package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/obdlog/internal/adapters/render/report"
	"github.com/bnema/obdlog/internal/application"
	"github.com/bnema/obdlog/internal/domain"
	"github.com/bnema/obdlog/internal/expr"
	"github.com/spf13/cobra"
)

type evalOutput struct {
	PID        string   `json:"pid"`
	Expression string   `json:"expression"`
	Variable   float64  `json:"variable"`
	Result     float64  `json:"result"`
	Accessed   []int    `json:"accessedIndices"`
	Bytes      []string `json:"bytes"`
}

// evalError carries a user-facing message while keeping the cause
// reachable through errors.Is.
type evalError struct {
	message string
	err     error
}

func (e *evalError) Error() string {
	return e.message
}

func (e *evalError) Unwrap() error {
	return e.err
}

func newEvalCmd(app *app) *cobra.Command {
	var (
		pid      string
		variable float64
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "eval <file> <expression>",
		Short: "Evaluate a byte expression against a PID response",
		Long: `Evaluate a byte expression against the second-to-last PID response of a
session log, or against the response to --pid.

  B<i>        unsigned byte i        S<i>      signed byte i
  B<i>:<bit>  bit 0..7 of byte i     V         the --var value
  [B<s>:B<e>] big-endian range of up to 8 bytes, [S..] sign-extends
  + - * / & | ^ << >> and parentheses`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("var") {
				variable = app.config.GetFloat64(evalVariableKey)
			}

			evaluation, err := app.service.Evaluate(cmd.Context(), application.EvaluateCommand{
				Path:       args[0],
				PID:        pid,
				Expression: args[1],
				Variable:   variable,
			})
			if err != nil {
				return &evalError{message: describeEvalError(err), err: err}
			}

			if asJSON {
				return writeJSON(cmd, evalOutput{
					PID:        evaluation.PID,
					Expression: evaluation.Expression,
					Variable:   evaluation.Variable,
					Result:     evaluation.Result.Value,
					Accessed:   evaluation.Result.Accessed,
					Bytes:      evaluation.Buffer.Hex(),
				})
			}

			return writeRendered(cmd, func() (string, error) { return report.RenderEvaluation(evaluation) })
		},
	}

	cmd.Flags().StringVar(&pid, "pid", "", "Evaluate against this PID request instead of the second-to-last one")
	cmd.Flags().Float64Var(&variable, "var", 0, "Value bound to V")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}

// describeEvalError turns an evaluation failure into a message that names
// the kind of problem.
func describeEvalError(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyExpression):
		return "expression is empty: try something like B0 * 2"
	case errors.Is(err, domain.ErrNoPIDData):
		return "no valid PID response data: the log needs at least two PID requests, or pass --pid"
	case errors.Is(err, domain.ErrPIDNotFound), errors.Is(err, domain.ErrFileRead):
		return err.Error()
	}

	var exprErr *expr.Error
	if !errors.As(err, &exprErr) {
		return err.Error()
	}

	switch {
	case errors.Is(exprErr, expr.ErrTokenize):
		return fmt.Sprintf("syntax error at position %d: %s", exprErr.Pos, exprErr.Detail)
	case errors.Is(exprErr, expr.ErrRangeTooLarge):
		return fmt.Sprintf("invalid byte range at position %d: %s (at most 8 bytes, end not before start)", exprErr.Pos, exprErr.Detail)
	case errors.Is(exprErr, expr.ErrIndexOutOfBounds):
		return fmt.Sprintf("byte index out of bounds at position %d: %s", exprErr.Pos, exprErr.Detail)
	case errors.Is(exprErr, expr.ErrArithmetic):
		return fmt.Sprintf("arithmetic error at position %d: %s", exprErr.Pos, exprErr.Detail)
	case errors.Is(exprErr, expr.ErrStackUnderflow):
		return fmt.Sprintf("operator at position %d is missing an operand", exprErr.Pos)
	case errors.Is(exprErr, expr.ErrUnbalancedParen):
		return fmt.Sprintf("unbalanced parenthesis at position %d", exprErr.Pos)
	case errors.Is(exprErr, expr.ErrMalformedResult):
		return fmt.Sprintf("expression does not reduce to a single value: %s", exprErr.Detail)
	default:
		return exprErr.Error()
	}
}
