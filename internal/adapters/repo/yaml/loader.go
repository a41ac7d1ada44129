// Package yaml loads formula packs: YAML documents that bundle formulas
// for a vehicle or adapter so they can be imported in one step.
package yaml

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bnema/obdlog/internal/domain"
	"github.com/bnema/obdlog/internal/ports"
	"gopkg.in/yaml.v3"
)

type packSchema struct {
	Name     string          `yaml:"name,omitempty"`
	Vehicle  string          `yaml:"vehicle,omitempty"`
	Formulas []formulaSchema `yaml:"formulas"`
}

type formulaSchema struct {
	Name        string  `yaml:"name"`
	Expression  string  `yaml:"expression"`
	PID         string  `yaml:"pid,omitempty"`
	Variable    float64 `yaml:"variable,omitempty"`
	Unit        string  `yaml:"unit,omitempty"`
	Description string  `yaml:"description,omitempty"`
}

type Loader struct{}

var _ ports.FormulaPackLoader = (*Loader)(nil)

func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes every formula in the pack at path. Unknown keys are rejected
// so typos in hand-written packs do not silently drop fields.
func (l *Loader) Load(ctx context.Context, path string) ([]domain.Formula, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open formula pack: %w", err)
	}
	defer f.Close()

	return decode(f)
}

func decode(r io.Reader) ([]domain.Formula, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var pack packSchema
	if err := decoder.Decode(&pack); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decode formula pack: empty document")
		}
		return nil, fmt.Errorf("decode formula pack: %w", err)
	}

	formulas := make([]domain.Formula, 0, len(pack.Formulas))
	for i, entry := range pack.Formulas {
		formula := domain.Formula{
			Name:        entry.Name,
			Expression:  entry.Expression,
			PID:         entry.PID,
			Variable:    entry.Variable,
			Unit:        entry.Unit,
			Description: entry.Description,
		}
		formula.Normalize()
		if err := formula.Validate(); err != nil {
			return nil, fmt.Errorf("formula pack entry %d: %w", i, err)
		}
		formulas = append(formulas, formula)
	}

	return formulas, nil
}
