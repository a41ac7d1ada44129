package ports

import (
	"context"

	"github.com/bnema/obdlog/internal/domain"
)

type FormulaRepository interface {
	GetByName(ctx context.Context, name string) (domain.Formula, error)
	List(ctx context.Context) ([]domain.Formula, error)
	Save(ctx context.Context, formula domain.Formula) error
	Delete(ctx context.Context, name string) error
}

// FormulaPackLoader reads a set of formulas shipped as a single file.
type FormulaPackLoader interface {
	Load(ctx context.Context, path string) ([]domain.Formula, error)
}
