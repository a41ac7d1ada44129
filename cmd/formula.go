package cmd

import (
	"fmt"

	"github.com/bnema/obdlog/internal/adapters/render/report"
	"github.com/bnema/obdlog/internal/application"
	"github.com/bnema/obdlog/internal/domain"
	"github.com/spf13/cobra"
)

type formulaRunOutput struct {
	Name     string   `json:"name"`
	PID      string   `json:"pid,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Result   *float64 `json:"result,omitempty"`
	Accessed []int    `json:"accessedIndices,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func newFormulaCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formula",
		Short: "Manage saved formulas",
	}

	cmd.AddCommand(
		newFormulaAddCmd(app),
		newFormulaListCmd(app),
		newFormulaRemoveCmd(app),
		newFormulaRunCmd(app),
		newFormulaImportCmd(app),
	)

	return cmd
}

func newFormulaAddCmd(app *app) *cobra.Command {
	var formula domain.Formula

	cmd := &cobra.Command{
		Use:   "add <name> <expression>",
		Short: "Save a formula, replacing any formula with the same name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			formula.Name = args[0]
			formula.Expression = args[1]

			saved, err := app.formulas.Save(cmd.Context(), formula)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved formula %s\n", saved.Name)
			return err
		},
	}

	cmd.Flags().StringVar(&formula.PID, "pid", "", "PID request the formula reads (default: second-to-last PID)")
	cmd.Flags().Float64Var(&formula.Variable, "var", 0, "Value bound to V")
	cmd.Flags().StringVar(&formula.Unit, "unit", "", "Unit shown next to the result")
	cmd.Flags().StringVar(&formula.Description, "description", "", "Free-text description")

	return cmd
}

func newFormulaListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved formulas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formulas, err := app.formulas.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, formulas)
			}

			return writeRendered(cmd, func() (string, error) { return report.RenderFormulas(formulas) })
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print formulas as JSON")

	return cmd
}

func newFormulaRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a saved formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.formulas.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed formula %s\n", args[0])
			return err
		},
	}
}

func newFormulaRunCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "run <file> [name...]",
		Short: "Evaluate saved formulas against a session log",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := app.formulas.Run(cmd.Context(), application.RunFormulasCommand{
				Path:  args[0],
				Names: args[1:],
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, formulaRunOutputs(results))
			}

			return writeRendered(cmd, func() (string, error) { return report.RenderFormulaResults(results) })
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")

	return cmd
}

func newFormulaImportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <pack.yaml>",
		Short: "Import every formula from a YAML formula pack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imported, err := app.formulas.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d formulas\n", len(imported))
			return err
		},
	}
}

func formulaRunOutputs(results []application.FormulaResult) []formulaRunOutput {
	outputs := make([]formulaRunOutput, 0, len(results))
	for _, result := range results {
		output := formulaRunOutput{
			Name: result.Formula.Name,
			PID:  result.Formula.PID,
			Unit: result.Formula.Unit,
		}
		if result.Err != nil {
			output.Error = describeEvalError(result.Err)
		} else {
			value := result.Evaluation.Result.Value
			output.Result = &value
			output.PID = result.Evaluation.PID
			output.Accessed = result.Evaluation.Result.Accessed
		}
		outputs = append(outputs, output)
	}
	return outputs
}
