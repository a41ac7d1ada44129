package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/obdlog/internal/domain"
	"github.com/bnema/obdlog/internal/expr"
	"github.com/bnema/obdlog/internal/ports"
)

type FormulaService struct {
	service  *Service
	formulas ports.FormulaRepository
	packs    ports.FormulaPackLoader
}

func NewFormulaService(service *Service, formulas ports.FormulaRepository, packs ports.FormulaPackLoader) *FormulaService {
	return &FormulaService{service: service, formulas: formulas, packs: packs}
}

// Save normalizes and validates formula, including tokenizing its
// expression, before storing it.
func (s *FormulaService) Save(ctx context.Context, formula domain.Formula) (domain.Formula, error) {
	formula.Normalize()
	if err := validateFormula(formula); err != nil {
		return domain.Formula{}, err
	}

	if err := s.formulas.Save(ctx, formula); err != nil {
		return domain.Formula{}, fmt.Errorf("save formula: %w", err)
	}

	return formula, nil
}

func (s *FormulaService) List(ctx context.Context) ([]domain.Formula, error) {
	formulas, err := s.formulas.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list formulas: %w", err)
	}
	return formulas, nil
}

func (s *FormulaService) Remove(ctx context.Context, name string) error {
	if err := s.formulas.Delete(ctx, name); err != nil {
		return fmt.Errorf("remove formula: %w", err)
	}
	return nil
}

// Import loads a formula pack and saves every entry. Nothing is saved when
// any entry is invalid.
func (s *FormulaService) Import(ctx context.Context, path string) ([]domain.Formula, error) {
	formulas, err := s.packs.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load formula pack: %w", err)
	}

	var invalid error
	for i := range formulas {
		formulas[i].Normalize()
		if err := validateFormula(formulas[i]); err != nil {
			invalid = errors.Join(invalid, err)
		}
	}
	if invalid != nil {
		return nil, invalid
	}

	for _, formula := range formulas {
		if err := s.formulas.Save(ctx, formula); err != nil {
			return nil, fmt.Errorf("save formula %s: %w", formula.Name, err)
		}
	}

	return formulas, nil
}

// Run evaluates saved formulas against one transcript. A failing formula is
// reported in its result and does not stop the others.
func (s *FormulaService) Run(ctx context.Context, cmd RunFormulasCommand) ([]FormulaResult, error) {
	formulas, err := s.selectFormulas(ctx, cmd.Names)
	if err != nil {
		return nil, err
	}

	session, err := s.service.Analyze(ctx, cmd.Path)
	if err != nil {
		return nil, err
	}

	results := make([]FormulaResult, 0, len(formulas))
	for _, formula := range formulas {
		result := FormulaResult{Formula: formula}
		evaluation, err := s.service.evaluateSession(session, formula.PID, formula.Expression, formula.Variable)
		if err != nil {
			result.Err = err
		} else {
			result.Evaluation = &evaluation
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *FormulaService) selectFormulas(ctx context.Context, names []string) ([]domain.Formula, error) {
	if len(names) == 0 {
		return s.List(ctx)
	}

	formulas := make([]domain.Formula, 0, len(names))
	for _, name := range names {
		formula, err := s.formulas.GetByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("get formula: %w", err)
		}
		formulas = append(formulas, formula)
	}
	return formulas, nil
}

func validateFormula(formula domain.Formula) error {
	if err := formula.Validate(); err != nil {
		return fmt.Errorf("invalid formula %q: %w", formula.Name, err)
	}
	if err := expr.Check(formula.Expression); err != nil {
		return fmt.Errorf("invalid formula %q: %w", formula.Name, err)
	}
	return nil
}
